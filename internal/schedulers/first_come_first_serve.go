package schedulers

import (
	"log"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// ScheduleFirstComeFirstServe executes processes strictly in ascending
// arrival order, ties broken by id, never preempting.
func ScheduleFirstComeFirstServe(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	log.Println("running fcfs algorithm ...")

	processes, err := admitRequest(request)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	timeline, executionLog, err := runNonPreemptive(processes, func(p *core.Process) [3]int {
		return [3]int{p.ArrivalTime, p.ID, 0}
	}, nil)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	return generateResponse(AlgorithmFirstComeFirstServe, processes, timeline, executionLog)
}
