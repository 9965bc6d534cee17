package widgets

import (
	"math"

	"github.com/lixenwraith/tilekit/buffer"
	"github.com/lixenwraith/tilekit/geom"
	"github.com/lixenwraith/tilekit/style"
	"github.com/lixenwraith/tilekit/widget"
)

var _ widget.StatefulWidget[*ScrollbarState] = Scrollbar{}

// ScrollDirection is a one step scroll
type ScrollDirection uint8

const (
	ScrollForward ScrollDirection = iota
	ScrollBackward
)

// ScrollbarState is the scroll position the caller keeps between renders
type ScrollbarState struct {
	ContentLength int // Total scrollable length, nothing renders at 0
	Position      int // Current position in [0, ContentLength)
	// ViewportContentLength sizes the thumb; 0 uses the track length
	ViewportContentLength int
}

// NewScrollbarState creates a state at position 0
func NewScrollbarState(contentLength int) *ScrollbarState {
	return &ScrollbarState{ContentLength: contentLength}
}

// Prev moves one step back, stopping at 0
func (s *ScrollbarState) Prev() {
	s.Position = max(s.Position-1, 0)
}

// Next moves one step forward, stopping at the last position
func (s *ScrollbarState) Next() {
	s.Position = min(s.Position+1, max(s.ContentLength-1, 0))
}

func (s *ScrollbarState) First() {
	s.Position = 0
}

func (s *ScrollbarState) Last() {
	s.Position = max(s.ContentLength-1, 0)
}

// Scroll moves one step in d
func (s *ScrollbarState) Scroll(d ScrollDirection) {
	if d == ScrollBackward {
		s.Prev()
		return
	}
	s.Next()
}

// ScrollbarOrientation selects the edge the scrollbar is drawn on
type ScrollbarOrientation uint8

const (
	VerticalRight ScrollbarOrientation = iota
	VerticalLeft
	HorizontalBottom
	HorizontalTop
)

func (o ScrollbarOrientation) String() string {
	switch o {
	case VerticalLeft:
		return "VerticalLeft"
	case HorizontalBottom:
		return "HorizontalBottom"
	case HorizontalTop:
		return "HorizontalTop"
	}
	return "VerticalRight"
}

func (o ScrollbarOrientation) vertical() bool {
	return o == VerticalRight || o == VerticalLeft
}

// ScrollbarSymbols is the glyph set of a scrollbar
type ScrollbarSymbols struct {
	Track string
	Thumb string
	Begin string
	End   string
}

// Stock symbol sets
var (
	ScrollbarVertical         = ScrollbarSymbols{Track: "│", Thumb: "█", Begin: "↑", End: "↓"}
	ScrollbarHorizontal       = ScrollbarSymbols{Track: "─", Thumb: "█", Begin: "←", End: "→"}
	ScrollbarDoubleVertical   = ScrollbarSymbols{Track: "║", Thumb: "█", Begin: "▲", End: "▼"}
	ScrollbarDoubleHorizontal = ScrollbarSymbols{Track: "═", Thumb: "█", Begin: "◄", End: "►"}
)

// Scrollbar draws a track with a thumb sized and placed from ScrollbarState.
// An empty track, begin or end symbol leaves those cells untouched.
type Scrollbar struct {
	orientation ScrollbarOrientation
	symbols     ScrollbarSymbols
	thumbStyle  style.Style
	trackStyle  style.Style
	beginStyle  style.Style
	endStyle    style.Style
}

// NewScrollbar creates a scrollbar with the double line set for its orientation
func NewScrollbar(o ScrollbarOrientation) Scrollbar {
	sb := Scrollbar{orientation: o, symbols: ScrollbarDoubleVertical}
	return sb.WithOrientation(o)
}

// WithOrientation moves the scrollbar and switches to the double line set
// matching the new axis, keeping disabled symbols disabled
func (s Scrollbar) WithOrientation(o ScrollbarOrientation) Scrollbar {
	s.orientation = o
	if o.vertical() {
		return s.WithSymbols(ScrollbarDoubleVertical)
	}
	return s.WithSymbols(ScrollbarDoubleHorizontal)
}

// WithSymbols replaces the glyphs; disabled track, begin and end stay disabled
func (s Scrollbar) WithSymbols(set ScrollbarSymbols) Scrollbar {
	s.symbols.Thumb = set.Thumb
	if s.symbols.Track != "" {
		s.symbols.Track = set.Track
	}
	if s.symbols.Begin != "" {
		s.symbols.Begin = set.Begin
	}
	if s.symbols.End != "" {
		s.symbols.End = set.End
	}
	return s
}

func (s Scrollbar) WithThumbSymbol(sym string) Scrollbar {
	s.symbols.Thumb = sym
	return s
}

// WithTrackSymbol sets the track glyph; "" disables it
func (s Scrollbar) WithTrackSymbol(sym string) Scrollbar {
	s.symbols.Track = sym
	return s
}

// WithBeginSymbol sets the leading arrow; "" disables it and gives its cell to the track
func (s Scrollbar) WithBeginSymbol(sym string) Scrollbar {
	s.symbols.Begin = sym
	return s
}

// WithEndSymbol sets the trailing arrow; "" disables it and gives its cell to the track
func (s Scrollbar) WithEndSymbol(sym string) Scrollbar {
	s.symbols.End = sym
	return s
}

func (s Scrollbar) WithThumbStyle(st style.Style) Scrollbar {
	s.thumbStyle = st
	return s
}

func (s Scrollbar) WithTrackStyle(st style.Style) Scrollbar {
	s.trackStyle = st
	return s
}

func (s Scrollbar) WithBeginStyle(st style.Style) Scrollbar {
	s.beginStyle = st
	return s
}

func (s Scrollbar) WithEndStyle(st style.Style) Scrollbar {
	s.endStyle = st
	return s
}

// WithStyle sets all four part styles
func (s Scrollbar) WithStyle(st style.Style) Scrollbar {
	s.thumbStyle, s.trackStyle, s.beginStyle, s.endStyle = st, st, st, st
	return s
}

// Render draws the scrollbar along one edge of area
func (s Scrollbar) Render(area geom.Geometry, buf *buffer.Buffer, state *ScrollbarState) {
	area = area.Intersection(buf.Area)
	if area.IsEmpty() || state.ContentLength <= 0 {
		return
	}

	start, end, axis := s.trackBounds(s.trackArea(area))
	if end <= start {
		return
	}
	thumbStart, thumbEnd := s.thumbBounds(state, start, end)

	for i := start; i < end; i++ {
		sym, st := s.symbols.Track, s.trackStyle
		if i >= thumbStart && i < thumbEnd {
			sym, st = s.symbols.Thumb, s.thumbStyle
		} else if sym == "" {
			continue
		}
		s.set(buf, i, axis, sym, st)
	}

	if s.symbols.Begin != "" {
		s.set(buf, start-1, axis, s.symbols.Begin, s.beginStyle)
	}
	if s.symbols.End != "" {
		s.set(buf, end, axis, s.symbols.End, s.endStyle)
	}
}

func (s Scrollbar) set(buf *buffer.Buffer, pos, axis uint16, sym string, st style.Style) {
	if s.orientation.vertical() {
		buf.SetString(axis, pos, sym, st)
		return
	}
	buf.SetString(pos, axis, sym, st)
}

// trackArea removes the arrow cells from area
func (s Scrollbar) trackArea(area geom.Geometry) geom.Geometry {
	vertical := s.orientation.vertical()
	if s.symbols.Begin != "" {
		if vertical {
			area.Y++
			area.Rows = subSat(area.Rows, 1)
		} else {
			area.X++
			area.Cols = subSat(area.Cols, 1)
		}
	}
	if s.symbols.End != "" {
		if vertical {
			area.Rows = subSat(area.Rows, 1)
		} else {
			area.Cols = subSat(area.Cols, 1)
		}
	}
	return area
}

// trackBounds returns the track range along the scroll axis and the fixed
// coordinate on the other axis
func (s Scrollbar) trackBounds(track geom.Geometry) (start, end, axis uint16) {
	switch s.orientation {
	case VerticalLeft:
		return track.Top(), track.Bottom(), track.Left()
	case HorizontalBottom:
		return track.Left(), track.Right(), subSat(track.Bottom(), 1)
	case HorizontalTop:
		return track.Left(), track.Right(), track.Top()
	}
	return track.Top(), track.Bottom(), subSat(track.Right(), 1)
}

// thumbBounds sizes the thumb by the visible share of the content and places
// it by the position share, rounding half away from zero
func (s Scrollbar) thumbBounds(state *ScrollbarState, start, end uint16) (uint16, uint16) {
	trackLen := int(end - start)
	content := float64(state.ContentLength)
	viewport := float64(state.ViewportContentLength)
	if state.ViewportContentLength <= 0 {
		viewport = float64(trackLen)
	}

	ratio := min(max(float64(state.Position)/content, 0), 1)
	thumb := int(math.Round(viewport / content * float64(trackLen)))
	thumb = min(max(thumb, 1), trackLen)

	thumbStart := start + uint16(math.Round(ratio*float64(trackLen-thumb)))
	return thumbStart, thumbStart + uint16(thumb)
}
