package main

import (
	"cmp"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/blockfall/frame"
)

type Report struct {
	// Configuration
	Games     int
	Seed      uint64
	Width     int
	Height    int
	MaxFrames int
	FrameStep time.Duration

	// Results
	TotalFrames    int64
	TotalTime      time.Duration
	Lost           int
	Pieces         int
	Lines          int
	Score          Stats[int]
	GameFrames     Stats[int]
	UpdateTime     Stats[time.Duration]
	Systems        []SystemRow
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats

	systemIndex map[string]int
}

// SystemRow aggregates one system's timing over every game.
type SystemRow struct {
	Name       string
	Executions int64
	Avg        time.Duration
	Max        time.Duration

	total time.Duration
}

type Stats[T ~int | ~int64] struct {
	Min     T
	Max     T
	Avg     T
	Samples []T
}

func (s *Stats[T]) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total T
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / T(len(s.Samples))
}

// AddSystems folds one game's scheduler stats into the per-system rows.
func (r *Report) AddSystems(stats *frame.SchedulerStats) {
	if r.systemIndex == nil {
		r.systemIndex = make(map[string]int)
	}
	for _, sys := range stats.Systems {
		i, ok := r.systemIndex[sys.Name]
		if !ok {
			i = len(r.Systems)
			r.systemIndex[sys.Name] = i
			r.Systems = append(r.Systems, SystemRow{Name: sys.Name})
		}
		row := &r.Systems[i]
		row.Executions += sys.ExecutionCount
		row.total += sys.TotalDuration
		row.Max = max(row.Max, sys.MaxDuration)
		if row.Executions > 0 {
			row.Avg = row.total / time.Duration(row.Executions)
		}
	}
}

func (r *Report) Finalize() {
	r.Score.Finalize()
	r.GameFrames.Finalize()
	r.UpdateTime.Finalize()
	slices.SortStableFunc(r.Systems, func(a, b SystemRow) int {
		return cmp.Compare(b.total, a.total)
	})
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Soak Report

## Configuration
- **Games:** {{.Games}}
- **Base Seed:** {{.Seed}}
- **Board:** {{.Width}}x{{.Height}}
- **Max Frames per Game:** {{.MaxFrames}}
- **Frame Step:** {{.FrameStep}}

## Results
- **Total Frames:** {{.TotalFrames}}
- **Wall Time:** {{.TotalTime}}
- **Games Lost:** {{.Lost}} / {{.Games}}
- **Pieces Grounded:** {{.Pieces}}
- **Lines Cleared:** {{.Lines}}
- **Score:** avg {{.Score.Avg}}, min {{.Score.Min}}, max {{.Score.Max}}
- **Frames per Game:** avg {{.GameFrames.Avg}}, min {{.GameFrames.Min}}, max {{.GameFrames.Max}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Systems
| System | Executions | Avg | Max |
|---|---|---|---|
{{- range .Systems}}
| {{.Name}} | {{.Executions}} | {{.Avg}} | {{.Max}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
