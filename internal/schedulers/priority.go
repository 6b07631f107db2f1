package schedulers

import (
	"fmt"
	"log"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// SchedulePriority picks, at each decision point, the arrived process with
// the lowest priority value; ties broken by arrival time, then id.
// Non-preemptive: once dispatched, a process runs to completion.
func SchedulePriority(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	log.Println("running priority algorithm ...")

	processes, err := admitRequest(request)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	timeline, executionLog, err := runNonPreemptive(processes, func(p *core.Process) [3]int {
		return [3]int{p.Priority, p.ArrivalTime, p.ID}
	}, func(p *core.Process) string {
		return fmt.Sprintf(" (priority: %d, burst time: %d)", p.Priority, p.BurstTime)
	})
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	return generateResponse(AlgorithmPriority, processes, timeline, executionLog)
}
