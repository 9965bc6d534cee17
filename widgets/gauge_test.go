package widgets

import (
	"testing"

	"github.com/lixenwraith/tilekit/buffer"
	"github.com/lixenwraith/tilekit/geom"
	"github.com/lixenwraith/tilekit/style"
)

func TestGaugeRender(t *testing.T) {
	tests := []struct {
		name  string
		gauge Gauge
		want  string
	}{
		{"half", NewGauge().WithRatio(0.5), "███50%░░░░"},
		{"quarter with half cell", NewGauge().WithPercent(25), "██▌25%░░░░"},
		{"empty", NewGauge(), "░░░░0%░░░░"},
		{"full", NewGauge().WithRatio(1), "███100%███"},
		{"clamped above", NewGauge().WithRatio(3), "███100%███"},
		{"custom label", NewGauge().WithRatio(0.5).WithLabel("ok"), "████ok░░░░"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			area := geom.New(1, 10)
			buf := buffer.NewBuffer(area)
			tt.gauge.Render(area, buf)
			assertRows(t, buf, tt.want)
		})
	}
}

func TestGaugeInBlock(t *testing.T) {
	area := geom.New(3, 6)
	buf := buffer.NewBuffer(area)
	NewGauge().WithRatio(1).WithLabel("").WithBlock(Bordered()).Render(area, buf)
	assertRows(t, buf, "┌────┐", "│████│", "└────┘")
}

func TestGaugeStyle(t *testing.T) {
	area := geom.New(1, 4)
	buf := buffer.NewBuffer(area)
	NewGauge().WithRatio(0.5).WithGaugeStyle(style.New().Fg(style.Green)).Render(area, buf)

	for x := uint16(0); x < 4; x++ {
		if c := buf.Get(x, 0); c.Fg != style.Green {
			t.Errorf("Expected gauge style at %d, got %v", x, c.Fg)
		}
	}
}
