package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
)

const (
	AlgorithmFirstComeFirstServe = "fcfs"
	AlgorithmShortestJobFirst    = "sjf"
	AlgorithmPriority            = "priority"
	AlgorithmRoundRobin          = "rr"
	AlgorithmPriorityRoundRobin  = "rrp"
)

// Algorithms lists every engine, in the order the comparison endpoint
// reports them.
var Algorithms = []string{
	AlgorithmFirstComeFirstServe,
	AlgorithmShortestJobFirst,
	AlgorithmPriority,
	AlgorithmRoundRobin,
	AlgorithmPriorityRoundRobin,
}

// admitRequest validates the request and materializes a fresh process set
// for one engine run. Every run gets its own records, so engines may run
// concurrently on the same request without sharing mutable state.
func admitRequest(request *requests.ScheduleRequests) ([]*core.Process, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	processes := make([]*core.Process, 0, len(request.Jobs))
	for _, job := range request.Jobs {
		processes = append(processes, core.NewProcess(job.ProcessId, job.BurstTime, job.Priority, job.ArrivalTime))
	}
	return processes, nil
}
