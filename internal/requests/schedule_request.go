package requests

import "cpu-scheduler/internal/core"

type Job struct {
	ProcessId   int `json:"process_id"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
	ArrivalTime int `json:"arrival_time"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs"`

	// TimeQuantum and AgingFactor apply to the round-robin engines only;
	// zero means "use the configured default".
	TimeQuantum int `json:"time_quantum,omitempty"`
	AgingFactor int `json:"aging_factor,omitempty"`
}

// Validate checks the descriptor contract: positive unique ids, burst time
// of at least one unit, non-negative arrival. An empty job list is valid.
func (r *ScheduleRequests) Validate() error {
	seen := make(map[int]struct{}, len(r.Jobs))
	for _, job := range r.Jobs {
		if job.ProcessId <= 0 {
			return core.ErrInvalidJob("process id must be positive, got %d", job.ProcessId)
		}
		if job.BurstTime < 1 {
			return core.ErrInvalidJob("process %d: burst time must be at least 1, got %d", job.ProcessId, job.BurstTime)
		}
		if job.ArrivalTime < 0 {
			return core.ErrInvalidJob("process %d: arrival time must not be negative, got %d", job.ProcessId, job.ArrivalTime)
		}
		if _, dup := seen[job.ProcessId]; dup {
			return core.ErrInvalidJob("duplicate process id %d", job.ProcessId)
		}
		seen[job.ProcessId] = struct{}{}
	}
	return nil
}

type GenerateRequest struct {
	Count       int   `json:"count"`
	MinBurst    int   `json:"min_burst"`
	MaxBurst    int   `json:"max_burst"`
	MinPriority int   `json:"min_priority"`
	MaxPriority int   `json:"max_priority"`
	MaxArrival  int   `json:"max_arrival"`
	Seed        int64 `json:"seed"`
}
