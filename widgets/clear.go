package widgets

import (
	"github.com/lixenwraith/tilekit/buffer"
	"github.com/lixenwraith/tilekit/geom"
	"github.com/lixenwraith/tilekit/widget"
)

var _ widget.Widget = Clear{}

// Clear resets every cell of its area, typically before drawing a popup over
// earlier content
type Clear struct{}

func (Clear) Render(area geom.Geometry, buf *buffer.Buffer) {
	area = area.Intersection(buf.Area)
	for y := area.Top(); y < area.Bottom(); y++ {
		for x := area.Left(); x < area.Right(); x++ {
			buf.Get(x, y).Reset()
		}
	}
}
