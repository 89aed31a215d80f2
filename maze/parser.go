package maze

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/beka-birhanu/mazesolver/geometry"
)

// BlockSize is the size of the blocks a maze source is read in.
const BlockSize = 1024

// ReadFile opens and parses the maze file at path.
func ReadFile(path string) (*Maze, Warnings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening maze file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a maze from r and validates it.
//
// A fatal error aborts parsing and no maze is returned. Duplicate start or exit
// tiles do not abort parsing; they are reported in the returned Warnings and the
// last one seen in reading order is kept.
func Parse(r io.Reader) (*Maze, Warnings, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, nil, err
	}
	return build(lines)
}

// readLines reads r in fixed-size blocks and splits the stream into lines.
// Lines may span any number of blocks.
func readLines(r io.Reader) ([][]byte, error) {
	var (
		lines [][]byte
		line  []byte
		block = make([]byte, BlockSize)
	)

	for {
		n, err := r.Read(block)
		chunk := block[:n]
		for len(chunk) > 0 {
			i := bytes.IndexByte(chunk, '\n')
			if i < 0 {
				line = append(line, chunk...)
				break
			}
			line = append(line, chunk[:i]...)
			lines = append(lines, bytes.TrimSuffix(line, []byte{'\r'}))
			line = nil
			chunk = chunk[i+1:]
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading maze: %w", err)
		}
	}

	if len(line) > 0 {
		lines = append(lines, bytes.TrimSuffix(line, []byte{'\r'}))
	}

	// Blank lines at the end of the file are not part of the grid.
	for len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}

	return lines, nil
}

// build validates the lines and turns them into a Maze.
func build(lines [][]byte) (*Maze, Warnings, error) {
	if len(lines) == 0 {
		return nil, nil, ErrEmpty
	}

	var (
		m        = &Maze{rows: len(lines), grid: make([][]Tile, 0, len(lines))}
		warnings Warnings
		hasStart bool
		hasExit  bool
	)

	for y, raw := range lines {
		row, err := decodeRow(raw, y+1)
		if err != nil {
			return nil, nil, err
		}

		if y == 0 {
			if len(row) == 0 {
				return nil, nil, &ParseError{Line: 1, Err: ErrEmpty}
			}
			m.cols = len(row)
		} else if len(row) != m.cols {
			return nil, nil, &ParseError{
				Line: y + 1,
				Err:  fmt.Errorf("%w: got %d, want %d", ErrRaggedRow, len(row), m.cols),
			}
		}

		for x, t := range row {
			p := geometry.Point{X: x, Y: y}
			switch t {
			case Start:
				if hasStart {
					warnings = append(warnings, Warning{Tile: Start, At: p, Previous: m.start})
				}
				m.start, hasStart = p, true
			case Exit:
				if hasExit {
					warnings = append(warnings, Warning{Tile: Exit, At: p, Previous: m.exit})
				}
				m.exit, hasExit = p, true
			}
		}

		m.grid = append(m.grid, row)
	}

	if err := m.checkBorder(); err != nil {
		return nil, nil, err
	}
	if !hasStart {
		return nil, nil, ErrNoStart
	}
	if !hasExit {
		return nil, nil, ErrNoExit
	}

	return m, warnings, nil
}

// decodeRow converts one line of UTF-8 text into tiles.
func decodeRow(raw []byte, line int) ([]Tile, error) {
	row := make([]Tile, 0, len(raw))
	for len(raw) > 0 {
		r, size := utf8.DecodeRune(raw)
		if (r == utf8.RuneError && size <= 1) || !validTile(r) {
			return nil, &ParseError{
				Line:   line,
				Column: len(row) + 1,
				Err:    fmt.Errorf("%w %q", ErrInvalidTile, r),
			}
		}
		row = append(row, Tile(r))
		raw = raw[size:]
	}
	return row, nil
}

// validTile reports whether r may appear in a maze.
func validTile(r rune) bool {
	switch Tile(r) {
	case Wall, Start, Exit, Open:
		return true
	}
	return unicode.IsPrint(r)
}

// checkBorder verifies that every tile on the outer edge is a wall.
func (m *Maze) checkBorder() error {
	for y, row := range m.grid {
		for x, t := range row {
			onBorder := y == 0 || y == m.rows-1 || x == 0 || x == m.cols-1
			if onBorder && t != Wall {
				return &ParseError{Line: y + 1, Column: x + 1, Err: ErrOpenBorder}
			}
		}
	}
	return nil
}
