package api

import "github.com/gofiber/fiber/v2"

// RegisterRoutes wires the scheduler endpoints under /api/v1.
func RegisterRoutes(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/rrp", handler.PriorityRoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/generate", handler.GenerateProcesses)
	}
}
