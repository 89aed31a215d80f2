package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/beka-birhanu/mazesolver/config"
	"github.com/beka-birhanu/mazesolver/solver"
	"github.com/google/uuid"
)

const optString = "ha:cd:s:x:y:ng:r:"

var (
	errHelp       = errors.New("help requested")
	errNoMazeFile = errors.New("no maze file given")
)

// runArgs is the configuration after command line flags are applied.
type runArgs struct {
	config.Config
	MazeFile  string    // Path of the maze to solve
	GenWidth  int       // Rooms per row of a generated maze; 0 reads MazeFile instead
	GenHeight int       // Rooms per column of a generated maze
	ShowRun   uuid.UUID // Recorded run to print instead of solving
}

// parseArgs applies the command line on top of cfg. Options come before the
// maze file.
func parseArgs(args []string, cfg config.Config) (runArgs, error) {
	ra := runArgs{Config: cfg}

	opts, optind, err := getopt.Getopts(args, optString)
	if err != nil {
		return ra, err
	}

	for _, opt := range opts {
		switch opt.Option {
		case 'h':
			return ra, errHelp
		case 'a':
			ra.Algorithm = opt.Value
		case 'c':
			ra.Coloured = true
		case 'n':
			ra.Render = false
		case 'd':
			ms, err := nonNegativeInt(opt)
			if err != nil {
				return ra, err
			}
			ra.Delay = time.Duration(ms) * time.Millisecond
		case 's':
			if ra.MaxSteps, err = positiveInt(opt); err != nil {
				return ra, err
			}
		case 'x':
			if ra.Width, err = positiveInt(opt); err != nil {
				return ra, err
			}
		case 'y':
			if ra.Height, err = positiveInt(opt); err != nil {
				return ra, err
			}
		case 'g':
			if ra.GenWidth, ra.GenHeight, err = parseDimensions(opt.Value); err != nil {
				return ra, err
			}
		case 'r':
			if ra.ShowRun, err = uuid.Parse(opt.Value); err != nil {
				return ra, fmt.Errorf("-r expects a run id: %w", err)
			}
		}
	}

	if optind < len(args) {
		ra.MazeFile = args[optind]
	}
	if ra.MazeFile == "" && ra.GenWidth == 0 && ra.ShowRun == uuid.Nil {
		return ra, errNoMazeFile
	}
	return ra, nil
}

func positiveInt(opt getopt.Option) (int, error) {
	n, err := strconv.Atoi(opt.Value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("-%c expects a positive integer", opt.Option)
	}
	return n, nil
}

func nonNegativeInt(opt getopt.Option) (int, error) {
	n, err := strconv.Atoi(opt.Value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("-%c expects a positive integer or 0", opt.Option)
	}
	return n, nil
}

// parseDimensions reads "WIDTHxHEIGHT".
func parseDimensions(s string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if ok {
		width, errW := strconv.Atoi(w)
		height, errH := strconv.Atoi(h)
		if errW == nil && errH == nil && width > 0 && height > 0 {
			return width, height, nil
		}
	}
	return 0, 0, fmt.Errorf("-g expects WIDTHxHEIGHT, got %q", s)
}

func usage(w io.Writer) {
	fmt.Fprint(w, "mazesolver, reads a maze from a file and tries solving it\n"+
		"            shows the progress real-time\n"+
		"\n"+
		"usage: mazesolver [-h|-a ALGORITHM|-c|-d DELAY|-s STEPS|-x WIDTH|-y HEIGHT|-n|-g WxH|-r RUN_ID] [MAZE_FILE]\n\n"+
		"    -h             print the help page\n"+
		"    -a ALGORITHM   set the algorithm to use\n"+
		"    -c             use coloured output\n"+
		"    -d DELAY       sets the delay between frames in milliseconds\n"+
		"    -s MAX_STEPS   sets the maximum steps the algorithm takes\n"+
		"    -x WIDTH       sets the width of the screen\n"+
		"    -y HEIGHT      sets the height of the screen\n"+
		"    -n             enables no render mode\n"+
		"    -g WxH         solve a generated maze of W by H rooms instead of a file\n"+
		"    -r RUN_ID      print a recorded run and exit\n")

	fmt.Fprint(w, "\nThe following algorithms are available:\n")
	_ = solver.Usage(w, "   - ")
	fmt.Fprint(w, "\nSpecify a solver with the '-a' flag\n")
	fmt.Fprintf(w, "By default '%s' is used\n", solver.DefaultAlgorithm)
}

// prompt asks a yes/no question until it reads y, Y, n or N. End of input
// counts as no.
func prompt(in io.Reader, out io.Writer, msg string) bool {
	fmt.Fprintf(out, "%s y/Y/n/N:\n", msg)
	r := bufio.NewReader(in)
	for {
		b, err := r.ReadByte()
		if err != nil {
			return false
		}
		switch b {
		case 'y', 'Y':
			return true
		case 'n', 'N':
			return false
		}
	}
}
