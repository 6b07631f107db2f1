package core

import "fmt"

// State is the lifecycle state of a simulated process. Transitions are
// driven exclusively by the engine that owns the process copy.
type State int

const (
	StateNotArrived State = iota
	StateReady
	StateRunning
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateNotArrived:
		return "NOT_ARRIVED"
	case StateReady:
		return "READY"
	case StateRunning:
		return "RUNNING"
	case StateFinished:
		return "FINISHED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Process holds the static description and the mutable simulation state of
// one process. ID, BurstTime, Priority and ArrivalTime are immutable after
// creation; everything else is written by the engine as virtual time
// advances. Lower Priority value means higher scheduling priority.
type Process struct {
	ID          int
	BurstTime   int
	Priority    int
	ArrivalTime int

	RemainingTime  int
	WaitingTime    int
	TurnaroundTime int
	CompletionTime int

	// ResponseTime is only valid once FirstResponse is set; it is written
	// exactly once, at the first dispatch.
	ResponseTime  int
	FirstResponse bool

	// Diagnostics maintained by the preemptive engines.
	MaxWaitingTime  int
	CPUTimeAcquired int
	Age             int
	LastRunningTime int

	State State
}

func NewProcess(id, burstTime, priority, arrivalTime int) *Process {
	return &Process{
		ID:            id,
		BurstTime:     burstTime,
		Priority:      priority,
		ArrivalTime:   arrivalTime,
		RemainingTime: burstTime,
		State:         StateNotArrived,
	}
}

// Clone returns an independent copy. Engines operate only on clones so the
// caller's records survive repeated runs untouched.
func (p *Process) Clone() *Process {
	clone := *p
	return &clone
}

func CloneAll(processes []*Process) []*Process {
	clones := make([]*Process, len(processes))
	for i, p := range processes {
		clones[i] = p.Clone()
	}
	return clones
}

// Execute grants the process up to slice units of CPU time and returns the
// amount actually used, capped at the remaining time.
func (p *Process) Execute(slice int) int {
	if p.RemainingTime <= 0 {
		return 0
	}
	used := slice
	if p.RemainingTime < used {
		used = p.RemainingTime
	}
	p.CPUTimeAcquired += used
	p.RemainingTime -= used
	p.State = StateRunning
	return used
}

// MarkResponded records the response time at the first dispatch. Later
// calls are no-ops.
func (p *Process) MarkResponded(now int) {
	if p.FirstResponse {
		return
	}
	p.ResponseTime = now - p.ArrivalTime
	p.FirstResponse = true
}

// Complete marks the process finished at the given virtual time and
// derives the final metrics.
func (p *Process) Complete(now int) {
	p.State = StateFinished
	p.CompletionTime = now
	p.TurnaroundTime = now - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
	p.RemainingTime = 0
}

func (p *Process) Finished() bool {
	return p.State == StateFinished
}

// RecordWait updates the waiting diagnostics when the process is picked up
// again after a quantum. The gap is measured from the end of its previous
// slice; a process that has never run carries no gap yet. Aging is
// diagnostic only and never reorders dispatch.
func (p *Process) RecordWait(now, agingFactor int) {
	if p.CPUTimeAcquired == 0 {
		return
	}
	gap := now - p.LastRunningTime
	if gap > p.MaxWaitingTime {
		p.MaxWaitingTime = gap
	}
	if agingFactor > 0 && gap >= agingFactor {
		p.Age++
	}
}
