package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/beka-birhanu/mazesolver/config"
	"github.com/beka-birhanu/mazesolver/generate"
	"github.com/beka-birhanu/mazesolver/infrastruture/repo"
	"github.com/beka-birhanu/mazesolver/infrastruture/sortedstorage"
	"github.com/beka-birhanu/mazesolver/logger"
	"github.com/beka-birhanu/mazesolver/maze"
	"github.com/beka-birhanu/mazesolver/render"
	"github.com/beka-birhanu/mazesolver/service"
	"github.com/beka-birhanu/mazesolver/service/i"
	"github.com/beka-birhanu/mazesolver/solver"
	"github.com/beka-birhanu/mazesolver/walker"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/ssh/terminal"
)

const connectTimeout = 5 * time.Second

// Global variables for dependencies
var (
	args        runArgs
	mongoClient *mongo.Client
	redisClient *redis.Client
	policy      walker.Policy
	mz          *maze.Maze
	mazeName    string
	renderer    i.Renderer
	recorders   []i.RunRecorder
	history     i.RunRepo
	board       i.Leaderboard
	appLogger   i.Logger
)

func initArgs() {
	cfg, err := config.Load()
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading configuration: %v", err))
		os.Exit(1)
	}

	args, err = parseArgs(os.Args, cfg)
	switch {
	case errors.Is(err, errHelp):
		usage(os.Stdout)
		os.Exit(0)
	case errors.Is(err, errNoMazeFile):
		usage(os.Stderr)
		os.Exit(1)
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initPolicy() {
	var err error
	policy, err = solver.Lookup(args.Algorithm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "algorithm '%s' not found, available algorithms:\n", args.Algorithm)
		_ = solver.Usage(os.Stderr, "   - ")
		os.Exit(1)
	}
}

func initMaze() {
	if args.GenWidth > 0 {
		var err error
		if mz, mazeName, err = generatedMaze(args, nil); err != nil {
			appLogger.Error(fmt.Sprintf("Generating maze: %v", err))
			os.Exit(1)
		}
		return
	}

	m, warnings, err := maze.ReadFile(args.MazeFile)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Error while reading maze file: %v", err))
		os.Exit(1)
	}
	for _, w := range warnings {
		appLogger.Warning(w.String())
	}
	if warnings.Any() && !prompt(os.Stdin, os.Stdout, "There were some errors in the maze file, are you sure you want to continue?") {
		os.Exit(0)
	}
	mz, mazeName = m, args.MazeFile
}

// generatedMaze builds the maze asked for with -g, decorated when the
// configuration sets a decoration density.
func generatedMaze(ra runArgs, rng *rand.Rand) (*maze.Maze, string, error) {
	g, err := generate.New(ra.GenWidth, ra.GenHeight, rng)
	if err != nil {
		return nil, "", err
	}
	if ra.DecorDensity > 0 {
		model := generate.DecorModel{Glyphs: []rune(ra.DecorGlyphs), Density: ra.DecorDensity}
		if err := g.Decorate(model); err != nil {
			return nil, "", err
		}
	}

	m, err := g.Maze()
	if err != nil {
		return nil, "", err
	}
	return m, fmt.Sprintf("generated-%dx%d", ra.GenWidth, ra.GenHeight), nil
}

func initRenderer() {
	if !args.Render {
		return
	}

	width, height := args.Width, args.Height
	if width == 0 || height == 0 {
		cols, rows, err := terminal.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			appLogger.Warning(fmt.Sprintf("Detecting terminal size: %v", err))
			cols, rows = config.DefaultWidth, config.DefaultHeight
		}
		width, height = pick(width, cols), pick(height, rows)
	}

	r, err := render.New(os.Stdout, render.Config{
		Coloured: args.Coloured,
		Width:    width,
		Height:   height,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating renderer: %v", err))
		os.Exit(1)
	}
	renderer = r
}

// pick keeps an explicit dimension and falls back to a detected one.
func pick(explicit, detected int) int {
	if explicit > 0 {
		return explicit
	}
	return detected
}

func initMongo(ctx context.Context) {
	if args.MongoURI == "" {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(args.MongoURI))
	if err != nil {
		appLogger.Warning(fmt.Sprintf("Failed to connect to MongoDB, run history disabled: %v", err))
		return
	}
	if err = client.Ping(ctx, nil); err != nil {
		appLogger.Warning(fmt.Sprintf("MongoDB ping failed, run history disabled: %v", err))
		_ = client.Disconnect(context.Background())
		return
	}
	mongoClient = client

	runRepo := repo.NewRunRepo(mongoClient, args.MongoDB, args.MongoCollection)
	if err := runRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Warning(fmt.Sprintf("Creating run indexes: %v", err))
	}
	history = runRepo
	recorders = append(recorders, runRepo)
	appLogger.Info("Run history initialized")
}

func initRedis(ctx context.Context) {
	if args.RedisAddr == "" {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client := redis.NewClient(&redis.Options{
		Addr:     args.RedisAddr,
		Password: args.RedisPassword,
		DB:       args.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		appLogger.Warning(fmt.Sprintf("Redis ping failed, leaderboard disabled: %v", err))
		_ = client.Close()
		return
	}
	redisClient = client

	lb := sortedstorage.NewRedisLeaderboard(redisClient, "", int64(args.LeaderboardSize), args.LeaderboardTTL)
	board = lb
	recorders = append(recorders, lb)
	appLogger.Info("Leaderboard initialized")
}

func closeStores() {
	if mongoClient != nil {
		_ = mongoClient.Disconnect(context.Background())
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
}

// solve connects the optional recorders, runs the solver and returns the
// process exit code.
func solve(ctx context.Context) int {
	initMongo(ctx)
	initRedis(ctx)
	defer closeStores()

	s, err := service.NewSolver(mz, policy, &service.Options{
		MaxSteps:  args.MaxSteps,
		Delay:     args.Delay,
		Renderer:  renderer,
		Recorders: recorders,
		Logger:    appLogger,
		MazeName:  mazeName,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solver: %v", err))
		return 1
	}

	run, err := s.Run(ctx)
	if err != nil {
		return 1
	}
	if run.Found {
		fmt.Printf("Found exit after %d steps\n", run.Steps)
	}
	if err := report(ctx, os.Stdout, run, history, board, int64(args.LeaderboardSize)); err != nil {
		appLogger.Warning(err.Error())
	}
	return 0
}

// showRun prints the run picked with -r and returns the process exit code.
func showRun(ctx context.Context) int {
	initMongo(ctx)
	defer closeStores()

	if history == nil {
		appLogger.Error("Run history is not available, set MONGO_URI")
		return 1
	}
	run, err := history.ByID(ctx, args.ShowRun)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Fetching run %s: %v", args.ShowRun, err))
		return 1
	}
	describeRun(os.Stdout, run)
	return 0
}

func main() {
	// Frames go to stdout, so log lines go to stderr.
	appLogger, _ = logger.New("MAZESOLVER", config.ColorCyan, os.Stderr)

	initArgs()
	if args.ShowRun != uuid.Nil {
		os.Exit(showRun(context.Background()))
	}
	initPolicy()
	initMaze()
	initRenderer()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := solve(ctx)
	stop()
	os.Exit(code)
}
