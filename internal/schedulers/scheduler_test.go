package schedulers

import (
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

func newRequest(jobs ...requests.Job) *requests.ScheduleRequests {
	return &requests.ScheduleRequests{Jobs: jobs}
}

func job(id, burst, priority, arrival int) requests.Job {
	return requests.Job{ProcessId: id, BurstTime: burst, Priority: priority, ArrivalTime: arrival}
}

func entry(label string, start, end int) responses.TimelineEntry {
	return responses.TimelineEntry{Label: label, Start: start, End: end}
}

func detailByID(response responses.ScheduleResponse, id int) responses.ProcessResponse {
	for _, d := range response.Details {
		if d.ProcessId == id {
			return d
		}
	}
	return responses.ProcessResponse{}
}
