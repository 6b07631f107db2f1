package schedulers

import (
	"sort"

	"github.com/google/uuid"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// generateResponse derives the per-process result table and aggregate
// statistics from a finished process set. A finished record that was never
// dispatched is an engine bug and aborts the run.
func generateResponse(algorithm string, processes []*core.Process, timeline core.Timeline, executionLog []string) (responses.ScheduleResponse, error) {
	details := make([]responses.ProcessResponse, 0, len(processes))

	sorted := append([]*core.Process(nil), processes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	totalExecutionTime := 0
	for _, p := range sorted {
		if p.Finished() && !p.FirstResponse {
			return responses.ScheduleResponse{}, core.ErrUnsetResponse(p.ID)
		}
		if p.CompletionTime > totalExecutionTime {
			totalExecutionTime = p.CompletionTime
		}
		details = append(details, responses.ProcessResponse{
			ProcessId:      p.ID,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			ArrivalTime:    p.ArrivalTime,
			WaitingTime:    p.WaitingTime,
			ResponseTime:   p.ResponseTime,
			TurnAroundTime: p.TurnaroundTime,
			CompletionTime: p.CompletionTime,
		})
	}

	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(details)

	throughput := 0.0
	if totalExecutionTime > 0 {
		throughput = float64(len(processes)) / float64(totalExecutionTime)
	}

	return responses.ScheduleResponse{
		RunId:                 uuid.NewString(),
		Algorithm:             algorithm,
		TotalTime:             totalExecutionTime,
		IdleTime:              timeline.IdleTime(),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		CpuUtilization:        timeline.Utilization(),
		CpuThroughput:         throughput,
		Timeline:              timelineEntries(timeline),
		ExecutionLog:          executionLog,
		Details:               details,
	}, nil
}

func timelineEntries(timeline core.Timeline) []responses.TimelineEntry {
	entries := make([]responses.TimelineEntry, 0, len(timeline))
	for _, interval := range timeline {
		entries = append(entries, responses.TimelineEntry{
			Label: interval.Label(),
			Start: interval.Start,
			End:   interval.End,
		})
	}
	return entries
}
