package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	dmn "github.com/beka-birhanu/mazesolver/domain"
	"github.com/beka-birhanu/mazesolver/service/i"
)

const thisRun = "  (this run)"

// report prints where a finished run stands among the recorded runs of its
// maze. Either store may be nil. A failing store does not hide the other.
func report(ctx context.Context, w io.Writer, run *dmn.Run, history i.RunRepo, board i.Leaderboard, n int64) error {
	var errs []error
	if history != nil {
		if err := reportHistory(ctx, w, run, history, n); err != nil {
			errs = append(errs, fmt.Errorf("reading run history: %w", err))
		}
	}
	if board != nil && run.Found {
		if err := reportBoard(ctx, w, run, board, n); err != nil {
			errs = append(errs, fmt.Errorf("reading leaderboard: %w", err))
		}
	}
	return errors.Join(errs...)
}

func reportHistory(ctx context.Context, w io.Writer, run *dmn.Run, history i.RunRepo, n int64) error {
	runs, err := history.ByMaze(ctx, run.MazeFingerprint, n)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Best runs of %s:\n", run.MazeName)
	for rank, r := range runs {
		mark := ""
		if r.ID == run.ID {
			mark = thisRun
		}
		fmt.Fprintf(w, "%4d. %-14s %s%s\n", rank+1, r.Algorithm, outcome(r), mark)
	}
	return nil
}

func reportBoard(ctx context.Context, w io.Writer, run *dmn.Run, board i.Leaderboard, n int64) error {
	total, err := board.Count(ctx, run.MazeFingerprint, run.Algorithm)
	if err != nil {
		return err
	}
	top, err := board.Top(ctx, run.MazeFingerprint, run.Algorithm, n)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Leaderboard for %s (%d entries):\n", run.Algorithm, total)
	for rank, e := range top {
		mark := ""
		if e.RunID == run.ID {
			mark = thisRun
		}
		fmt.Fprintf(w, "%4d. %d steps  %s%s\n", rank+1, e.Steps, e.RunID, mark)
	}
	return nil
}

func outcome(r *dmn.Run) string {
	if r.Found {
		return fmt.Sprintf("found exit after %d steps", r.Steps)
	}
	return fmt.Sprintf("gave up after %d steps", r.Steps)
}

// describeRun prints one recorded run.
func describeRun(w io.Writer, run *dmn.Run) {
	fmt.Fprintf(w, "Run %s\n", run.ID)
	fmt.Fprintf(w, "  maze:      %s (%s)\n", run.MazeName, run.MazeFingerprint)
	fmt.Fprintf(w, "  algorithm: %s\n", run.Algorithm)
	fmt.Fprintf(w, "  result:    %s of %d, %d moves\n", outcome(run), run.MaxSteps, run.Moves)
	fmt.Fprintf(w, "  started:   %s\n", run.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "  duration:  %s\n", run.Duration)
}
