package i

import (
	"context"

	dmn "github.com/beka-birhanu/mazesolver/domain"
	"github.com/google/uuid"
)

// RunRecorder receives the summary of every finished run.
type RunRecorder interface {
	// Record stores the run. Implementations must not keep a reference to it.
	Record(ctx context.Context, run *dmn.Run) error
}

// RunRepo defines the interface for run history persistence operations.
type RunRepo interface {
	RunRecorder

	// ByID retrieves a run by its unique ID.
	// Returns an error if the run is not found or in case of an unexpected error.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Run, error)

	// ByMaze retrieves up to limit runs of the maze with the given fingerprint,
	// fewest steps first.
	ByMaze(ctx context.Context, fingerprint string, limit int64) ([]*dmn.Run, error)
}

// LeaderboardEntry is one ranked run.
type LeaderboardEntry struct {
	RunID uuid.UUID
	Steps int64
}

// Leaderboard ranks successful runs per maze and algorithm.
type Leaderboard interface {
	RunRecorder

	// Top returns up to n entries for the maze and algorithm, fewest steps first.
	Top(ctx context.Context, fingerprint, algorithm string, n int64) ([]LeaderboardEntry, error)

	// Count returns how many runs the board for the maze and algorithm holds.
	Count(ctx context.Context, fingerprint, algorithm string) (int64, error)
}
