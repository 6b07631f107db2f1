package core

import "fmt"

// IdleID labels timeline intervals during which no process was running.
const IdleID = -1

// Interval is one contiguous stretch of the execution timeline: either a
// process running or the CPU sitting idle. Start < End always holds.
type Interval struct {
	ProcessID int
	Start     int
	End       int
}

func (iv Interval) Idle() bool {
	return iv.ProcessID == IdleID
}

func (iv Interval) Duration() int {
	return iv.End - iv.Start
}

// Label renders the interval owner the way the gantt output names it.
func (iv Interval) Label() string {
	if iv.Idle() {
		return "IDLE"
	}
	return fmt.Sprintf("P%d", iv.ProcessID)
}

// Timeline is an ordered sequence of intervals with non-decreasing start
// times and no overlap between non-idle intervals.
type Timeline []Interval

// Span is the total simulated duration from first start to last end.
func (t Timeline) Span() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].End - t[0].Start
}

func (t Timeline) IdleTime() int {
	idle := 0
	for _, iv := range t {
		if iv.Idle() {
			idle += iv.Duration()
		}
	}
	return idle
}

func (t Timeline) BusyTime() int {
	return t.Span() - t.IdleTime()
}

// Utilization is the busy share of the timeline span, in [0, 1].
func (t Timeline) Utilization() float64 {
	span := t.Span()
	if span <= 0 {
		return 0
	}
	return float64(t.BusyTime()) / float64(span)
}
