package schedulers

import (
	"cmp"
	"fmt"
	"sort"

	"github.com/addrummond/heap"

	"cpu-scheduler/internal/core"
)

// selectionKey ranks a ready process for the non-preemptive engines. The
// lowest key wins the next dispatch; components are compared left to
// right, so tie-breaks live in the later slots.
type selectionKey func(p *core.Process) [3]int

type candidate struct {
	key  [3]int
	proc *core.Process
}

func (a *candidate) Cmp(b *candidate) int {
	for i := range a.key {
		if c := cmp.Compare(a.key[i], b.key[i]); c != 0 {
			return c
		}
	}
	return 0
}

func sortByArrival(processes []*core.Process) {
	sort.SliceStable(processes, func(i, j int) bool {
		if processes[i].ArrivalTime != processes[j].ArrivalTime {
			return processes[i].ArrivalTime < processes[j].ArrivalTime
		}
		return processes[i].ID < processes[j].ID
	})
}

// runNonPreemptive drives FCFS, SJF and priority scheduling: one shared
// decision loop over a min-heap of arrived candidates, parameterized by
// the selection key. Each dispatched process runs its full burst; when
// nothing has arrived the clock jumps to the next arrival and the gap is
// recorded as a single idle interval. describe, when set, augments the
// dispatch log line.
func runNonPreemptive(processes []*core.Process, key selectionKey, describe func(p *core.Process) string) (core.Timeline, []string, error) {
	if len(processes) == 0 {
		return nil, nil, nil
	}

	sortByArrival(processes)
	currentTime := processes[0].ArrivalTime

	var ready heap.Heap[candidate, heap.Min]
	next := 0 // next process, in arrival order, not yet admitted

	var timeline core.Timeline
	var executionLog []string

	for finished := 0; finished < len(processes); {
		for next < len(processes) && processes[next].ArrivalTime <= currentTime {
			p := processes[next]
			p.State = core.StateReady
			heap.PushOrderable(&ready, candidate{key: key(p), proc: p})
			next++
		}

		c, ok := heap.PopOrderable(&ready)
		if !ok {
			nextArrival := processes[next].ArrivalTime
			timeline = append(timeline, core.Interval{ProcessID: core.IdleID, Start: currentTime, End: nextArrival})
			executionLog = append(executionLog, fmt.Sprintf("Time %d: CPU idle until %d", currentTime, nextArrival))
			currentTime = nextArrival
			continue
		}

		p := c.proc
		if p.RemainingTime < 0 {
			return nil, nil, core.ErrNegativeRemaining(p.ID, p.RemainingTime)
		}

		p.MarkResponded(currentTime)
		p.LastRunningTime = currentTime

		entry := fmt.Sprintf("Time %d: Starting Process %d", currentTime, p.ID)
		if describe != nil {
			entry += describe(p)
		}
		executionLog = append(executionLog, entry)

		used := p.Execute(p.BurstTime)
		timeline = append(timeline, core.Interval{ProcessID: p.ID, Start: currentTime, End: currentTime + used})
		currentTime += used

		p.Complete(currentTime)
		executionLog = append(executionLog, fmt.Sprintf("Time %d: Completed Process %d", currentTime, p.ID))
		finished++
	}

	return timeline, executionLog, nil
}
