// Package screen flushes rendered buffers to a tcell screen.
//
// The screen keeps the last buffer it drew and writes only the cells that
// changed since then. The first draw, and any draw after the viewport changes
// size or Sync is called, clears the terminal and repaints everything.
package screen

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilekit/buffer"
	"github.com/lixenwraith/tilekit/geom"
	"github.com/lixenwraith/tilekit/widget"
)

// Screen draws buffers onto a tcell screen
type Screen struct {
	ts     tcell.Screen
	mode   ColorMode
	prev   *buffer.Buffer
	logger *log.Logger
}

// Option configures a Screen
type Option func(*Screen)

// WithLogger routes draw diagnostics to l
func WithLogger(l *log.Logger) Option {
	return func(s *Screen) {
		if l != nil {
			s.logger = l
		}
	}
}

// New wraps an initialized tcell screen
func New(ts tcell.Screen, mode ColorMode, opts ...Option) *Screen {
	s := &Screen{
		ts:     ts,
		mode:   mode,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates and initializes the terminal screen
func Open(mode ColorMode, opts ...Option) (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := ts.Init(); err != nil {
		return nil, err
	}
	return New(ts, mode, opts...), nil
}

// Close restores the terminal
func (s *Screen) Close() {
	s.ts.Fini()
}

// Mode returns the color mode used for conversion
func (s *Screen) Mode() ColorMode {
	return s.mode
}

// Size returns the viewport as a geometry at the origin, shrunk to the
// buffer cell limit on very large terminals
func (s *Screen) Size() geom.Geometry {
	w, h := s.ts.Size()
	return geom.Fit(h, w)
}

// Draw writes the cells of buf that differ from the last drawn buffer and
// shows the result. Returns the number of cells written.
func (s *Screen) Draw(buf *buffer.Buffer) int {
	var updates []buffer.CellUpdate
	full := s.prev == nil || s.prev.Area != buf.Area
	if full {
		s.ts.Clear()
		updates = buffer.NewBuffer(buf.Area).Diff(buf)
	} else {
		updates = s.prev.Diff(buf)
	}

	for _, u := range updates {
		s.setCell(u.X, u.Y, u.Cell)
	}
	s.ts.Show()
	// The caller may keep writing into buf
	s.prev = buf.Clone()

	s.logger.Debug("draw", "updates", len(updates), "full", full, "area", buf.Area)
	return len(updates)
}

// DrawFrame renders one frame covering the viewport and draws it
func (s *Screen) DrawFrame(render func(*widget.Frame)) *buffer.Buffer {
	buf := widget.Draw(s.Size(), render)
	s.Draw(buf)
	return buf
}

// Sync forces the next draw to repaint every cell
func (s *Screen) Sync() {
	s.prev = nil
}

// Run redraws on every resize until ctx is done or the user presses q, Esc or Ctrl-C
func (s *Screen) Run(ctx context.Context, render func(*widget.Frame)) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go s.ts.ChannelEvents(events, quit)
	defer close(quit)

	s.DrawFrame(render)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.ts.Sync()
				s.Sync()
				s.DrawFrame(render)
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
			}
		}
	}
}

// setCell writes one cell, the first rune as primary and the rest combining
func (s *Screen) setCell(x, y uint16, cell buffer.Cell) {
	runes := []rune(cell.Symbol)
	if len(runes) == 0 {
		runes = []rune{' '}
	}
	s.ts.SetContent(int(x), int(y), runes[0], runes[1:], ToTcellStyle(cell, s.mode))
}
