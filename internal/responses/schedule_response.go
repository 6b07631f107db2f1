package responses

import "cpu-scheduler/internal/requests"

type TimelineEntry struct {
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	BurstTime      int `json:"burst_time"`
	Priority       int `json:"priority"`
	ArrivalTime    int `json:"arrival_time"`
	WaitingTime    int `json:"waiting_time"`
	ResponseTime   int `json:"response_time"`
	TurnAroundTime int `json:"turn_around_time"`
	CompletionTime int `json:"completion_time"`
}

type ScheduleResponse struct {
	RunId                 string            `json:"run_id"`
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Timeline              []TimelineEntry   `json:"timeline"`
	ExecutionLog          []string          `json:"execution_log"`
	Details               []ProcessResponse `json:"details"`
}

type GenerateResponse struct {
	Jobs []requests.Job `json:"jobs"`
}
