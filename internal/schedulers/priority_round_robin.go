package schedulers

import (
	"cmp"
	"fmt"
	"log"

	"github.com/addrummond/heap"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// rrCandidate orders the priority round-robin ready structure: priority
// first, then admission sequence. Equal priorities therefore rotate FIFO,
// and a requeued process falls behind peers admitted during its slice.
type rrCandidate struct {
	priority int
	seq      int
	proc     *core.Process
}

func (a *rrCandidate) Cmp(b *rrCandidate) int {
	if c := cmp.Compare(a.priority, b.priority); c != 0 {
		return c
	}
	return cmp.Compare(a.seq, b.seq)
}

// SchedulePriorityRoundRobin runs the quantum rotation with a
// priority-ordered ready structure. A newly arriving higher-priority
// process moves to the front before the next dispatch decision, but a
// slice already underway is never interrupted. agingFactor bounds the
// wait gap after which the diagnostic age counter increments; aging never
// reorders dispatch.
func SchedulePriorityRoundRobin(request *requests.ScheduleRequests, timeQuantum, agingFactor int) (responses.ScheduleResponse, error) {
	log.Println("running priority round robin algorithm with timeQuantum =", timeQuantum, "agingFactor =", agingFactor)

	if timeQuantum < 1 {
		return responses.ScheduleResponse{}, core.ErrNonPositiveQuantum(timeQuantum)
	}
	processes, err := admitRequest(request)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	timeline, executionLog, err := runPriorityRoundRobin(processes, timeQuantum, agingFactor)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	return generateResponse(AlgorithmPriorityRoundRobin, processes, timeline, executionLog)
}

func runPriorityRoundRobin(processes []*core.Process, timeQuantum, agingFactor int) (core.Timeline, []string, error) {
	if len(processes) == 0 {
		return nil, nil, nil
	}

	sortByArrival(processes)
	currentTime := processes[0].ArrivalTime

	var ready heap.Heap[rrCandidate, heap.Min]
	queued := make(map[int]bool, len(processes))
	seq := 0

	push := func(p *core.Process) {
		seq++
		p.State = core.StateReady
		heap.PushOrderable(&ready, rrCandidate{priority: p.Priority, seq: seq, proc: p})
		queued[p.ID] = true
	}

	// Admission happens only here: before a dispatch decision and at a
	// quantum boundary, never mid-slice.
	admit := func(skip *core.Process) {
		for _, p := range processes {
			if p.ArrivalTime > currentTime {
				break
			}
			if p.Finished() || queued[p.ID] || p == skip {
				continue
			}
			push(p)
		}
	}

	var timeline core.Timeline
	var executionLog []string

	for finished := 0; finished < len(processes); {
		admit(nil)

		c, ok := heap.PopOrderable(&ready)
		if !ok {
			timeline = append(timeline, core.Interval{ProcessID: core.IdleID, Start: currentTime, End: currentTime + 1})
			executionLog = append(executionLog, fmt.Sprintf("Time %d: CPU idle", currentTime))
			currentTime++
			continue
		}

		p := c.proc
		queued[p.ID] = false
		if p.RemainingTime < 0 {
			return nil, nil, core.ErrNegativeRemaining(p.ID, p.RemainingTime)
		}

		p.RecordWait(currentTime, agingFactor)
		p.MarkResponded(currentTime)

		execTime := timeQuantum
		if p.RemainingTime < execTime {
			execTime = p.RemainingTime
		}
		executionLog = append(executionLog, fmt.Sprintf("Time %d: Running Process %d (remaining: %d, priority: %d, quantum: %d)",
			currentTime, p.ID, p.RemainingTime, p.Priority, timeQuantum))
		timeline = append(timeline, core.Interval{ProcessID: p.ID, Start: currentTime, End: currentTime + execTime})

		p.Execute(execTime)
		currentTime += execTime
		p.LastRunningTime = currentTime

		admit(p)

		if p.RemainingTime == 0 {
			p.Complete(currentTime)
			executionLog = append(executionLog, fmt.Sprintf("Time %d: Completed Process %d", currentTime, p.ID))
			finished++
		} else {
			push(p)
		}
	}

	return timeline, executionLog, nil
}
