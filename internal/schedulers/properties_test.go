package schedulers

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

type engineFunc func(request *requests.ScheduleRequests) (responses.ScheduleResponse, error)

func engineTable() map[string]engineFunc {
	return map[string]engineFunc{
		AlgorithmFirstComeFirstServe: ScheduleFirstComeFirstServe,
		AlgorithmShortestJobFirst:    ScheduleShortestJobFirst,
		AlgorithmPriority:            SchedulePriority,
		AlgorithmRoundRobin: func(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
			return ScheduleRoundRobin(request, request.TimeQuantum)
		},
		AlgorithmPriorityRoundRobin: func(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
			return SchedulePriorityRoundRobin(request, request.TimeQuantum, request.AgingFactor)
		},
	}
}

func drawRequest(t *rapid.T) *requests.ScheduleRequests {
	count := rapid.IntRange(1, 6).Draw(t, "count")
	jobs := make([]requests.Job, 0, count)
	for i := 1; i <= count; i++ {
		jobs = append(jobs, requests.Job{
			ProcessId:   i,
			BurstTime:   rapid.IntRange(1, 8).Draw(t, fmt.Sprintf("burst%d", i)),
			Priority:    rapid.IntRange(1, 5).Draw(t, fmt.Sprintf("priority%d", i)),
			ArrivalTime: rapid.IntRange(0, 15).Draw(t, fmt.Sprintf("arrival%d", i)),
		})
	}
	return &requests.ScheduleRequests{
		Jobs:        jobs,
		TimeQuantum: rapid.IntRange(1, 4).Draw(t, "quantum"),
		AgingFactor: rapid.IntRange(0, 5).Draw(t, "aging"),
	}
}

// Every engine conserves time: the timeline is contiguous from the first
// arrival to the last completion, and the per-process identities
// turnaround = waiting + burst = completion - arrival always hold.
func TestProperty_TimeConservationAndIdentities(t *testing.T) {
	for name, engine := range engineTable() {
		t.Run(name, func(t *testing.T) {
			rapid.Check(t, func(rt *rapid.T) {
				request := drawRequest(rt)
				response, err := engine(request)
				require.NoError(rt, err)

				firstArrival := request.Jobs[0].ArrivalTime
				for _, j := range request.Jobs {
					if j.ArrivalTime < firstArrival {
						firstArrival = j.ArrivalTime
					}
				}
				maxCompletion := 0
				for _, d := range response.Details {
					if d.CompletionTime > maxCompletion {
						maxCompletion = d.CompletionTime
					}
				}

				require.NotEmpty(rt, response.Timeline)
				require.Equal(rt, firstArrival, response.Timeline[0].Start)
				require.Equal(rt, maxCompletion, response.Timeline[len(response.Timeline)-1].End)

				total := 0
				for i, e := range response.Timeline {
					require.Less(rt, e.Start, e.End)
					if i > 0 {
						require.Equal(rt, response.Timeline[i-1].End, e.Start)
					}
					total += e.End - e.Start
				}
				require.Equal(rt, maxCompletion-firstArrival, total)

				require.Len(rt, response.Details, len(request.Jobs))
				for _, d := range response.Details {
					require.Equal(rt, d.WaitingTime+d.BurstTime, d.TurnAroundTime)
					require.Equal(rt, d.CompletionTime-d.ArrivalTime, d.TurnAroundTime)
					require.GreaterOrEqual(rt, d.ResponseTime, 0)
					require.GreaterOrEqual(rt, d.WaitingTime, 0)
				}
			})
		})
	}
}

// Engines are deterministic: two runs over the same descriptors yield the
// same timeline and statistics (run ids differ by design).
func TestProperty_Idempotence(t *testing.T) {
	for name, engine := range engineTable() {
		t.Run(name, func(t *testing.T) {
			rapid.Check(t, func(rt *rapid.T) {
				request := drawRequest(rt)

				first, err := engine(request)
				require.NoError(rt, err)
				second, err := engine(request)
				require.NoError(rt, err)

				require.Equal(rt, first.Timeline, second.Timeline)
				require.Equal(rt, first.Details, second.Details)
				require.Equal(rt, first.ExecutionLog, second.ExecutionLog)
				require.Equal(rt, first.TotalTime, second.TotalTime)
				require.Equal(rt, first.AverageWaitingTime, second.AverageWaitingTime)
				require.Equal(rt, first.AverageTurnAroundTime, second.AverageTurnAroundTime)
				require.Equal(rt, first.AverageResponseTime, second.AverageResponseTime)
				require.Equal(rt, first.CpuThroughput, second.CpuThroughput)
			})
		})
	}
}

// FCFS dispatches in ascending (arrival, id) order.
func TestProperty_FCFSDispatchOrder(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		request := drawRequest(rt)
		response, err := ScheduleFirstComeFirstServe(request)
		require.NoError(rt, err)

		expected := append([]requests.Job(nil), request.Jobs...)
		sort.SliceStable(expected, func(i, j int) bool {
			if expected[i].ArrivalTime != expected[j].ArrivalTime {
				return expected[i].ArrivalTime < expected[j].ArrivalTime
			}
			return expected[i].ProcessId < expected[j].ProcessId
		})

		var dispatched []string
		for _, e := range response.Timeline {
			if e.Label != "IDLE" {
				dispatched = append(dispatched, e.Label)
			}
		}

		require.Len(rt, dispatched, len(expected))
		for i, j := range expected {
			require.Equal(rt, fmt.Sprintf("P%d", j.ProcessId), dispatched[i])
		}
	})
}

// At every SJF decision point the dispatched process has the minimum burst
// among arrived, unfinished processes; ties by (arrival, id).
func TestProperty_SJFPicksMinimalBurst(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		request := drawRequest(rt)
		response, err := ScheduleShortestJobFirst(request)
		require.NoError(rt, err)

		byLabel := make(map[string]requests.Job, len(request.Jobs))
		for _, j := range request.Jobs {
			byLabel[fmt.Sprintf("P%d", j.ProcessId)] = j
		}

		done := make(map[string]bool, len(request.Jobs))
		for _, e := range response.Timeline {
			if e.Label == "IDLE" {
				continue
			}
			chosen := byLabel[e.Label]
			for label, j := range byLabel {
				if done[label] || label == e.Label || j.ArrivalTime > e.Start {
					continue
				}
				betterBurst := j.BurstTime < chosen.BurstTime
				tie := j.BurstTime == chosen.BurstTime &&
					(j.ArrivalTime < chosen.ArrivalTime ||
						(j.ArrivalTime == chosen.ArrivalTime && j.ProcessId < chosen.ProcessId))
				require.False(rt, betterBurst || tie,
					"process %s dispatched at %d although %s was a better candidate", e.Label, e.Start, label)
			}
			done[e.Label] = true
		}
	})
}
