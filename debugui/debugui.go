// Package debugui draws a Dear ImGui inspector over a running game: its
// state, score, pieces and how long each scheduler system takes per frame.
package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/tetris"
)

// InputState tracks whether ImGui is consuming mouse or keyboard input.
// Shells should skip their own key handling while WantCaptureKeyboard is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// InspectorSystem refreshes InputState and defers the inspector window into
// the frame's command flush, so it renders inside the ImGui frame.
type InspectorSystem struct {
	Scheduler *frame.Scheduler
	Input     InputState

	frameHistory []float32
	frameIndex   int
}

// NewInspectorSystem keeps historyFrames frame times for the timing graph.
func NewInspectorSystem(scheduler *frame.Scheduler, historyFrames int) *InspectorSystem {
	if historyFrames < 1 {
		historyFrames = 1
	}
	return &InspectorSystem{
		Scheduler:    scheduler,
		frameHistory: make([]float32, historyFrames),
	}
}

func (s *InspectorSystem) Execute(f *frame.UpdateFrame) {
	io := imgui.CurrentIO()
	s.Input.WantCaptureMouse = io.WantCaptureMouse()
	s.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	if len(s.frameHistory) > 0 {
		s.frameHistory[s.frameIndex] = float32(f.DeltaTime) * 1000.0
		s.frameIndex = (s.frameIndex + 1) % len(s.frameHistory)
	}

	game := f.Game
	f.Commands.Defer(func() {
		s.render(game)
	})
}

func (s *InspectorSystem) render(g *tetris.Game) {
	if !imgui.BeginV("Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("State: %s", g.State()))
	imgui.Text(fmt.Sprintf("Score: %d", g.Score()))
	imgui.Text(fmt.Sprintf("Pieces: %d", g.Pieces()))
	imgui.Text(fmt.Sprintf("Steps: %d", g.Steps()))
	imgui.Text(fmt.Sprintf("Soft drop: %v (%s)", g.SoftDrop(), g.GravityDelay()))

	imgui.Separator()
	falling := g.Falling()
	imgui.Text(fmt.Sprintf("Falling: %s %s at (%d, %d)", falling.Shape.Kind, falling.Color, falling.Location.X, falling.Location.Y))
	for p := range falling.Iter().All() {
		imgui.BulletText(fmt.Sprintf("(%d, %d)", p.X, p.Y))
	}
	next := g.Next()
	imgui.Text(fmt.Sprintf("Next: %s %s", next.Shape.Kind, next.Color))

	if len(s.frameHistory) > 0 {
		imgui.Separator()
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms", s.AverageFrameTime()))
		imgui.PlotLinesFloatPtr("##frametime", &s.frameHistory[0], int32(len(s.frameHistory)))
	}

	if s.Scheduler != nil && imgui.TreeNodeStr("Systems") {
		renderSystems(s.Scheduler.GetStats())
		imgui.TreePop()
	}

	imgui.End()
}

// AverageFrameTime returns the mean of the recorded frame times in
// milliseconds.
func (s *InspectorSystem) AverageFrameTime() float32 {
	if len(s.frameHistory) == 0 {
		return 0
	}
	var total float32
	for _, ft := range s.frameHistory {
		total += ft
	}
	return total / float32(len(s.frameHistory))
}

func renderSystems(stats *frame.SchedulerStats) {
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableSetupColumn("Last")
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(sys.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(sys.MaxDuration.String())
			imgui.TableNextColumn()
			imgui.Text(sys.LastDuration.String())
		}

		imgui.EndTable()
	}
}
