package schedulers

import (
	"fmt"
	"log"

	"github.com/gammazero/deque"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// ScheduleRoundRobin runs the preemptive fixed-quantum rotation. The
// quantum must be positive.
func ScheduleRoundRobin(request *requests.ScheduleRequests, timeQuantum int) (responses.ScheduleResponse, error) {
	log.Println("running round robin algorithm with timeQuantum =", timeQuantum)

	if timeQuantum < 1 {
		return responses.ScheduleResponse{}, core.ErrNonPositiveQuantum(timeQuantum)
	}
	processes, err := admitRequest(request)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	timeline, executionLog, err := runRoundRobin(processes, timeQuantum)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	return generateResponse(AlgorithmRoundRobin, processes, timeline, executionLog)
}

// runRoundRobin rotates a FIFO ready queue with a fixed quantum. Arrivals
// are admitted in arrival order at two points only: before each dispatch
// decision and after each slice, the latter ahead of the just-run process
// so a requeued process never jumps newly-arrived peers. Fairness follows
// from the FIFO re-append: no ready process can be skipped indefinitely.
func runRoundRobin(processes []*core.Process, timeQuantum int) (core.Timeline, []string, error) {
	if len(processes) == 0 {
		return nil, nil, nil
	}

	sortByArrival(processes)
	currentTime := processes[0].ArrivalTime

	var ready deque.Deque[*core.Process]
	queued := make(map[int]bool, len(processes))

	// admit appends every arrived, unfinished, unqueued process except
	// skip, in arrival order (processes is sorted by arrival).
	admit := func(skip *core.Process) {
		for _, p := range processes {
			if p.ArrivalTime > currentTime {
				break
			}
			if p.Finished() || queued[p.ID] || p == skip {
				continue
			}
			p.State = core.StateReady
			ready.PushBack(p)
			queued[p.ID] = true
		}
	}

	var timeline core.Timeline
	var executionLog []string

	for finished := 0; finished < len(processes); {
		admit(nil)

		if ready.Len() == 0 {
			timeline = append(timeline, core.Interval{ProcessID: core.IdleID, Start: currentTime, End: currentTime + 1})
			executionLog = append(executionLog, fmt.Sprintf("Time %d: CPU idle", currentTime))
			currentTime++
			continue
		}

		p := ready.PopFront()
		queued[p.ID] = false
		if p.RemainingTime < 0 {
			return nil, nil, core.ErrNegativeRemaining(p.ID, p.RemainingTime)
		}

		p.MarkResponded(currentTime)

		execTime := timeQuantum
		if p.RemainingTime < execTime {
			execTime = p.RemainingTime
		}
		executionLog = append(executionLog, fmt.Sprintf("Time %d: Running Process %d for %d units", currentTime, p.ID, execTime))
		timeline = append(timeline, core.Interval{ProcessID: p.ID, Start: currentTime, End: currentTime + execTime})

		p.Execute(execTime)
		currentTime += execTime
		p.LastRunningTime = currentTime

		// Processes that arrived during the slice enter the queue before
		// the just-run process is requeued.
		admit(p)

		if p.RemainingTime == 0 {
			p.Complete(currentTime)
			executionLog = append(executionLog, fmt.Sprintf("Time %d: Completed Process %d", currentTime, p.ID))
			finished++
		} else {
			p.State = core.StateReady
			ready.PushBack(p)
			queued[p.ID] = true
		}
	}

	return timeline, executionLog, nil
}
