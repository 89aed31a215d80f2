package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/mazesolver/domain"
	"github.com/beka-birhanu/mazesolver/maze"
	"github.com/beka-birhanu/mazesolver/service/i"
	"github.com/beka-birhanu/mazesolver/walker"
)

const (
	defaultMaxSteps = 1000000
	defaultMazeName = "maze"
	recordTimeout   = 2 * time.Second
)

var (
	ErrNilMaze   = errors.New("solver needs a maze")
	ErrNilPolicy = errors.New("solver needs a policy")
	ErrRender    = errors.New("error while rendering")
)

type Options struct {
	MaxSteps  int             // Step budget; non-positive means the default
	Delay     time.Duration   // Pause after every rendered frame
	Renderer  i.Renderer      // Optional; nil runs without drawing
	Recorders []i.RunRecorder // Receive the run summary once the run ends
	Logger    i.Logger        // Optional; nil discards log lines
	MazeName  string          // Label stored with the run
}

// Solver drives one walker through one maze.
type Solver struct {
	maze   *maze.Maze
	policy walker.Policy
	opts   Options
	logger i.Logger
}

func NewSolver(m *maze.Maze, policy walker.Policy, opts *Options) (*Solver, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	if policy == nil {
		return nil, ErrNilPolicy
	}

	// Defaults go into a copy; the caller's options stay untouched.
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.MaxSteps <= 0 {
		o.MaxSteps = defaultMaxSteps
	}
	if o.Delay < 0 {
		o.Delay = 0
	}
	if o.MazeName == "" {
		o.MazeName = defaultMazeName
	}

	logger := o.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	return &Solver{
		maze:   m,
		policy: policy,
		opts:   o,
		logger: logger,
	}, nil
}

// Run steps the walker until it reaches the exit, the step budget runs out, or
// ctx is done. Each iteration steps, checks for the exit, renders and then
// waits. The returned run is filled in even when an error ends the run early.
func (s *Solver) Run(ctx context.Context) (*dmn.Run, error) {
	run := dmn.NewRun(s.opts.MazeName, s.maze.Fingerprint(), s.policy.Name(), s.opts.MaxSteps)

	w, err := walker.New(s.maze, s.policy)
	if err != nil {
		return run, fmt.Errorf("initialising %s: %w", s.policy.Name(), err)
	}

	s.logger.Info(fmt.Sprintf("Solving %s with %s: id=%s budget=%d", run.MazeName, run.Algorithm, run.ID, run.MaxSteps))
	err = s.walk(ctx, w, run)
	run.Steps = w.Steps()
	run.Moves = w.Moves()
	run.Found = w.AtExit(s.maze)
	run.Duration = time.Since(run.StartedAt)
	w.Close()

	if err != nil {
		s.logger.Error(fmt.Sprintf("Run %s stopped after %d steps: %v", run.ID, run.Steps, err))
		return run, err
	}

	if run.Found {
		s.logger.Info(fmt.Sprintf("Found exit after %d steps", run.Steps))
	} else {
		s.logger.Info(fmt.Sprintf("No exit found within %d steps", run.MaxSteps))
	}
	s.record(ctx, run)
	return run, nil
}

func (s *Solver) walk(ctx context.Context, w *walker.Walker, run *dmn.Run) error {
	if s.opts.Renderer != nil {
		if err := s.opts.Renderer.Clear(); err != nil {
			return fmt.Errorf("%w: %w", ErrRender, err)
		}
	}

	var timer *time.Timer
	if s.opts.Renderer != nil && s.opts.Delay > 0 {
		timer = time.NewTimer(s.opts.Delay)
		defer timer.Stop()
	}

	for count := 0; count < run.MaxSteps; count++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		w.Step(s.maze)
		if w.AtExit(s.maze) {
			return nil
		}

		if s.opts.Renderer == nil {
			continue
		}
		if err := s.opts.Renderer.Render(s.maze, w); err != nil {
			return fmt.Errorf("%w: %w", ErrRender, err)
		}

		if timer == nil {
			continue
		}
		timer.Reset(s.opts.Delay)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}

// record hands the run to every recorder. Failures are logged and otherwise
// ignored so a finished run is never lost to a storage outage.
func (s *Solver) record(ctx context.Context, run *dmn.Run) {
	for _, r := range s.opts.Recorders {
		rctx, cancel := context.WithTimeout(ctx, recordTimeout)
		if err := r.Record(rctx, run); err != nil {
			s.logger.Warning(fmt.Sprintf("Failed to record run %s: %v", run.ID, err))
		}
		cancel()
	}
}

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}
