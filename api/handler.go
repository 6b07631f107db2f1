package api

import (
	"errors"
	"sync"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	PriorityRoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	GenerateProcesses(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.AlgorithmFirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.AlgorithmShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.AlgorithmPriority)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.AlgorithmRoundRobin)
}

func (s *SchedulerHandlerImpl) PriorityRoundRobin(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.AlgorithmPriorityRoundRobin)
}

// AllAlgorithms runs every engine concurrently on the same request. Each
// run materializes its own process records, so no state is shared.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}

	results := make(map[string]responses.ScheduleResponse, len(schedulers.Algorithms))
	var firstErr error
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, algorithm := range schedulers.Algorithms {
		wg.Add(1)
		go func(algorithm string) {
			defer wg.Done()
			response, err := s.schedule(algorithm, &request)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			results[algorithm] = response
		}(algorithm)
	}
	wg.Wait()

	if firstErr != nil {
		return renderError(ctx, firstErr)
	}
	return ctx.JSON(results)
}

func (s *SchedulerHandlerImpl) GenerateProcesses(ctx *fiber.Ctx) error {
	var request requests.GenerateRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}
	if s.config.GeneratorMaxProcesses > 0 && request.Count > s.config.GeneratorMaxProcesses {
		request.Count = s.config.GeneratorMaxProcesses
	}

	processes := core.GenerateProcesses(core.GeneratorConfig{
		Count:       request.Count,
		MinBurst:    request.MinBurst,
		MaxBurst:    request.MaxBurst,
		MinPriority: request.MinPriority,
		MaxPriority: request.MaxPriority,
		MaxArrival:  request.MaxArrival,
		Seed:        request.Seed,
	})

	jobs := make([]requests.Job, 0, len(processes))
	for _, p := range processes {
		jobs = append(jobs, requests.Job{
			ProcessId:   p.ID,
			BurstTime:   p.BurstTime,
			Priority:    p.Priority,
			ArrivalTime: p.ArrivalTime,
		})
	}
	return ctx.JSON(responses.GenerateResponse{Jobs: jobs})
}

func (s *SchedulerHandlerImpl) run(ctx *fiber.Ctx, algorithm string) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}

	response, err := s.schedule(algorithm, &request)
	if err != nil {
		return renderError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) schedule(algorithm string, request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	switch algorithm {
	case schedulers.AlgorithmFirstComeFirstServe:
		return schedulers.ScheduleFirstComeFirstServe(request)
	case schedulers.AlgorithmShortestJobFirst:
		return schedulers.ScheduleShortestJobFirst(request)
	case schedulers.AlgorithmPriority:
		return schedulers.SchedulePriority(request)
	case schedulers.AlgorithmRoundRobin:
		return schedulers.ScheduleRoundRobin(request, s.timeQuantum(request, s.config.RoundRobinTimeQuantum))
	case schedulers.AlgorithmPriorityRoundRobin:
		return schedulers.SchedulePriorityRoundRobin(request,
			s.timeQuantum(request, s.config.PriorityRoundRobinTimeQuantum),
			s.agingFactor(request))
	default:
		return responses.ScheduleResponse{}, core.ValidationError{Message: "unknown algorithm " + algorithm}
	}
}

// timeQuantum prefers the request value; zero falls back to the
// configured default. A negative value passes through so the engine can
// reject it.
func (s *SchedulerHandlerImpl) timeQuantum(request *requests.ScheduleRequests, fallback int) int {
	if request.TimeQuantum != 0 {
		return request.TimeQuantum
	}
	return fallback
}

func (s *SchedulerHandlerImpl) agingFactor(request *requests.ScheduleRequests) int {
	if request.AgingFactor != 0 {
		return request.AgingFactor
	}
	return s.config.PriorityRoundRobinAgingFactor
}

func renderError(ctx *fiber.Ctx, err error) error {
	var validation core.ValidationError
	var configuration core.ConfigurationError
	status := fiber.StatusInternalServerError
	if errors.As(err, &validation) || errors.As(err, &configuration) {
		status = fiber.StatusBadRequest
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
