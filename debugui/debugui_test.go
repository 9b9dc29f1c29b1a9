package debugui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInspectorSystem(t *testing.T) {
	s := NewInspectorSystem(nil, 0)
	assert.Len(t, s.frameHistory, 1)

	s = NewInspectorSystem(nil, 4)
	assert.Len(t, s.frameHistory, 4)
	assert.Zero(t, s.AverageFrameTime())
}

func TestAverageFrameTime(t *testing.T) {
	s := NewInspectorSystem(nil, 4)
	copy(s.frameHistory, []float32{10, 20, 30, 40})
	assert.InDelta(t, 25.0, s.AverageFrameTime(), 0.001)
}
