// Package widget defines the render contract between widgets and a buffer.
//
// Rendering is immediate mode: every pass allocates a buffer, renders the
// widget tree into it, and hands it to the output stage. Widgets write only
// inside the area they are given and keep no reference to the buffer.
package widget

import (
	"github.com/lixenwraith/tilekit/buffer"
	"github.com/lixenwraith/tilekit/geom"
)

// Widget paints itself into area of buf
type Widget interface {
	Render(area geom.Geometry, buf *buffer.Buffer)
}

// StatefulWidget is a widget whose state (selection, scroll offset) is owned
// by the caller and threaded through each render
type StatefulWidget[S any] interface {
	Render(area geom.Geometry, buf *buffer.Buffer, state S)
}

// Func adapts a plain function to Widget
type Func func(area geom.Geometry, buf *buffer.Buffer)

// Render calls f
func (f Func) Render(area geom.Geometry, buf *buffer.Buffer) {
	f(area, buf)
}

// Frame is one render pass over a buffer
type Frame struct {
	buf  *buffer.Buffer
	area geom.Geometry
}

// NewFrame wraps buf for a render pass covering its whole area
func NewFrame(buf *buffer.Buffer) *Frame {
	return &Frame{buf: buf, area: buf.Area}
}

// Size returns the viewport area
func (f *Frame) Size() geom.Geometry {
	return f.area
}

// Buffer returns the buffer being rendered into
func (f *Frame) Buffer() *buffer.Buffer {
	return f.buf
}

// RenderWidget renders w into area, clipped to the viewport
func (f *Frame) RenderWidget(w Widget, area geom.Geometry) {
	w.Render(area.Intersection(f.area), f.buf)
}

// RenderStateful renders a stateful widget into area, clipped to the viewport
func RenderStateful[S any](f *Frame, w StatefulWidget[S], area geom.Geometry, state S) {
	w.Render(area.Intersection(f.area), f.buf, state)
}

// Draw runs one render pass into a fresh blank buffer covering area
func Draw(area geom.Geometry, render func(*Frame)) *buffer.Buffer {
	buf := buffer.NewBuffer(area)
	render(NewFrame(buf))
	return buf
}
