package schedulers

import (
	"fmt"
	"log"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// ScheduleShortestJobFirst picks, at each decision point, the arrived
// process with the smallest burst time; ties broken by arrival time, then
// id. Non-preemptive.
func ScheduleShortestJobFirst(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	log.Println("running sjf algorithm ...")

	processes, err := admitRequest(request)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	timeline, executionLog, err := runNonPreemptive(processes, func(p *core.Process) [3]int {
		return [3]int{p.BurstTime, p.ArrivalTime, p.ID}
	}, func(p *core.Process) string {
		return fmt.Sprintf(" (burst time: %d)", p.BurstTime)
	})
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	return generateResponse(AlgorithmShortestJobFirst, processes, timeline, executionLog)
}
