/*
Package render draws a maze and its walker on an ANSI terminal.

Each frame moves the cursor home and redraws the part of the maze that fits in
the configured window, centred on a focus point. Wall tiles are drawn with
box-drawing glyphs chosen from their wall neighbours.
*/
package render

import (
	"bytes"
	"errors"
	"io"

	"github.com/beka-birhanu/mazesolver/config"
	"github.com/beka-birhanu/mazesolver/geometry"
	"github.com/beka-birhanu/mazesolver/maze"
	"github.com/beka-birhanu/mazesolver/walker"
)

const (
	SeqClear      = "\x1b[1;1H\x1b[2J"
	SeqCursorHome = "\x1b[1;1H"

	WalkerGlyph = "@"
)

var (
	ErrInvalidArgument = errors.New("one or more arguments are invalid")
	ErrNoFocus         = errors.New("viewport focus is not defined")
)

// FocusFunc returns the point the viewport is centred on. It is called once
// per frame and reports false when no focus is available.
type FocusFunc func() (geometry.Point, bool)

// Follow keeps the viewport on w's current position.
func Follow(w *walker.Walker) FocusFunc {
	return func() (geometry.Point, bool) {
		if w == nil {
			return geometry.Point{}, false
		}
		return w.Position(), true
	}
}

// Fixed keeps the viewport on p.
func Fixed(p geometry.Point) FocusFunc {
	return func() (geometry.Point, bool) {
		return p, true
	}
}

// Config holds renderer settings.
type Config struct {
	Coloured bool      // Draw walker, start and exit in colour
	Width    int       // Viewport width in columns
	Height   int       // Viewport height in rows
	Focus    FocusFunc // Viewport centre; nil follows the rendered walker
}

// Renderer writes frames to a terminal.
type Renderer struct {
	out io.Writer
	cfg Config
}

// New creates a renderer writing to out.
func New(out io.Writer, cfg Config) (*Renderer, error) {
	if out == nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrInvalidArgument
	}
	return &Renderer{out: out, cfg: cfg}, nil
}

// Config returns the renderer settings.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Clear wipes the terminal and homes the cursor.
func (r *Renderer) Clear() error {
	_, err := io.WriteString(r.out, SeqClear)
	return err
}

// Viewport computes the window that the next frame of m would show around w.
func (r *Renderer) Viewport(m *maze.Maze, w *walker.Walker) (Viewport, error) {
	if m == nil {
		return Viewport{}, ErrInvalidArgument
	}

	focus := r.cfg.Focus
	if focus == nil {
		focus = Follow(w)
	}
	p, ok := focus()
	if !ok {
		return Viewport{}, ErrNoFocus
	}
	return ComputeViewport(m.Cols(), m.Rows(), p, r.cfg.Width, r.cfg.Height), nil
}

// Render draws one frame. The cursor is homed even when the arguments are
// rejected, and a frame is written in a single call.
func (r *Renderer) Render(m *maze.Maze, w *walker.Walker) error {
	if m == nil || w == nil {
		if _, err := io.WriteString(r.out, SeqCursorHome); err != nil {
			return err
		}
		return ErrInvalidArgument
	}

	vp, err := r.Viewport(m, w)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.Grow((vp.Width()*3+1)*vp.Height() + len(SeqCursorHome))
	buf.WriteString(SeqCursorHome)
	for y := vp.TL.Y; y < vp.BR.Y; y++ {
		for x := vp.TL.X; x < vp.BR.X; x++ {
			r.writeTile(&buf, m, w, geometry.Point{X: x, Y: y})
		}
		buf.WriteByte('\n')
	}
	_, err = r.out.Write(buf.Bytes())
	return err
}

func (r *Renderer) writeTile(buf *bytes.Buffer, m *maze.Maze, w *walker.Walker, p geometry.Point) {
	if p.Equals(w.Position()) {
		r.writeColoured(buf, config.ColorBlue, WalkerGlyph)
		return
	}

	switch tile := m.At(p); tile {
	case maze.Wall:
		buf.WriteString(WallGlyph(WallMask(m, p)))
	case maze.Start:
		r.writeColoured(buf, config.ColorGreen, tile.String())
	case maze.Exit:
		r.writeColoured(buf, config.ColorRed, tile.String())
	default:
		buf.WriteRune(rune(tile))
	}
}

func (r *Renderer) writeColoured(buf *bytes.Buffer, colour, s string) {
	if !r.cfg.Coloured {
		buf.WriteString(s)
		return
	}
	buf.WriteString(colour)
	buf.WriteString(s)
	buf.WriteString(config.ColorReset)
}
