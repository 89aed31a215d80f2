package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/beka-birhanu/mazesolver/solver"
	"github.com/joho/godotenv"
)

var ErrInvalidEnv = errors.New("invalid environment variable")

// Defaults used when neither the environment nor a flag sets a value.
const (
	DefaultMaxSteps        = 1000000
	DefaultDelay           = 10 * time.Millisecond
	DefaultWidth           = 80
	DefaultHeight          = 24
	DefaultMongoDB         = "mazesolver"
	DefaultMongoCollection = "runs"
	DefaultLeaderboardSize = 10
	DefaultLeaderboardTTL  = 7 * 24 * time.Hour
	DefaultDecorGlyphs     = "*~"
)

// Config holds the application's configuration values.
type Config struct {
	Algorithm       string        // Registry name of the solving policy
	MaxSteps        int           // Step budget for one run
	Width           int           // Viewport width; 0 means detect from the terminal
	Height          int           // Viewport height; 0 means detect from the terminal
	Delay           time.Duration // Pause between rendered frames
	Coloured        bool          // Colour the walker, start and exit
	Render          bool          // Draw frames while solving
	MongoURI        string        // Run history store; empty disables it
	MongoDB         string        // Database holding run history
	MongoCollection string        // Collection holding run history
	RedisAddr       string        // Leaderboard store; empty disables it
	RedisPassword   string        // Password for the leaderboard store
	RedisDB         int           // Database number for the leaderboard store
	LeaderboardSize int           // Entries kept per maze and algorithm
	LeaderboardTTL  time.Duration // Idle lifetime of a leaderboard
	DecorDensity    float32       // Share of generated rooms that get a decoration; 0 disables it
	DecorGlyphs     string        // Decorations scattered over generated mazes
}

// Load reads a .env file when one is present and builds the configuration
// from the environment, falling back to defaults.
func Load(filenames ...string) (Config, error) {
	// A missing .env file is normal; the environment alone is enough.
	_ = godotenv.Load(filenames...)

	var err error
	cfg := Config{
		Algorithm:       getEnvWithDefault("MAZE_ALGORITHM", solver.DefaultAlgorithm),
		MongoURI:        getEnvWithDefault("MONGO_URI", ""),
		MongoDB:         getEnvWithDefault("MONGO_DB", DefaultMongoDB),
		MongoCollection: getEnvWithDefault("MONGO_COLLECTION", DefaultMongoCollection),
		RedisAddr:       getEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword:   getEnvWithDefault("REDIS_PASSWORD", ""),
		DecorGlyphs:     getEnvWithDefault("MAZE_DECOR_GLYPHS", DefaultDecorGlyphs),
	}

	if cfg.MaxSteps, err = getEnvAsInt("MAZE_STEPS", DefaultMaxSteps); err != nil {
		return Config{}, err
	}
	if cfg.Width, err = getEnvAsInt("MAZE_WIDTH", 0); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = getEnvAsInt("MAZE_HEIGHT", 0); err != nil {
		return Config{}, err
	}
	delayMs, err := getEnvAsInt("MAZE_DELAY_MS", int(DefaultDelay/time.Millisecond))
	if err != nil {
		return Config{}, err
	}
	cfg.Delay = time.Duration(delayMs) * time.Millisecond
	if cfg.Coloured, err = getEnvAsBool("MAZE_COLOURED", false); err != nil {
		return Config{}, err
	}
	if cfg.Render, err = getEnvAsBool("MAZE_RENDER", true); err != nil {
		return Config{}, err
	}
	if cfg.RedisDB, err = getEnvAsInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.LeaderboardSize, err = getEnvAsInt("LEADERBOARD_SIZE", DefaultLeaderboardSize); err != nil {
		return Config{}, err
	}
	ttl, err := getEnvAsInt("LEADERBOARD_TTL_SECONDS", int(DefaultLeaderboardTTL/time.Second))
	if err != nil {
		return Config{}, err
	}
	cfg.LeaderboardTTL = time.Duration(ttl) * time.Second
	if cfg.DecorDensity, err = getEnvAsFloat("MAZE_DECOR_DENSITY", 0); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// Validate rejects values no run can use.
func (c Config) Validate() error {
	switch {
	case c.MaxSteps <= 0:
		return fmt.Errorf("%w: step budget must be positive", ErrInvalidEnv)
	case c.Width < 0 || c.Height < 0:
		return fmt.Errorf("%w: viewport dimensions must not be negative", ErrInvalidEnv)
	case c.Delay < 0:
		return fmt.Errorf("%w: delay must not be negative", ErrInvalidEnv)
	case c.LeaderboardSize <= 0:
		return fmt.Errorf("%w: leaderboard size must be positive", ErrInvalidEnv)
	case c.DecorDensity < 0 || c.DecorDensity > 1:
		return fmt.Errorf("%w: decoration density must be between 0 and 1", ErrInvalidEnv)
	}
	return nil
}

// getEnvAsInt retrieves an integer environment variable or returns a default value if not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidEnv, key, err)
	}
	return value, nil
}

// getEnvAsFloat retrieves a float environment variable or returns a default value if not set.
func getEnvAsFloat(key string, defaultValue float32) (float32, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(valueStr, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number: %v", ErrInvalidEnv, key, err)
	}
	return float32(value), nil
}

// getEnvAsBool retrieves a boolean environment variable or returns a default value if not set.
func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean: %v", ErrInvalidEnv, key, err)
	}
	return value, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
