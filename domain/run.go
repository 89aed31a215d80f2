package domain

import (
	"time"

	"github.com/google/uuid"
)

// Run summarises one attempt of a policy at a maze.
type Run struct {
	ID              uuid.UUID     `bson:"_id"`             // Unique identifier of the run
	MazeName        string        `bson:"mazeName"`        // File the maze was read from
	MazeFingerprint string        `bson:"mazeFingerprint"` // Hash of the maze's canonical text
	Algorithm       string        `bson:"algorithm"`       // Registry name of the policy
	Steps           int64         `bson:"steps"`           // Steps taken until the run ended
	Moves           int64         `bson:"moves"`           // Steps that changed the position
	MaxSteps        int           `bson:"maxSteps"`        // Step budget
	Found           bool          `bson:"found"`           // Whether the exit was reached
	StartedAt       time.Time     `bson:"startedAt"`       // When the first step was taken
	Duration        time.Duration `bson:"duration"`        // Wall-clock time of the run
}

// NewRun creates a run record with a fresh id.
func NewRun(mazeName, fingerprint, algorithm string, maxSteps int) *Run {
	return &Run{
		ID:              uuid.New(),
		MazeName:        mazeName,
		MazeFingerprint: fingerprint,
		Algorithm:       algorithm,
		MaxSteps:        maxSteps,
		StartedAt:       time.Now(),
	}
}
