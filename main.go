package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
)

func main() {
	cfg := config.GetSchedulerConfig()
	handler := api.NewSchedulerHandlerImpl(cfg)

	app := fiber.New()
	api.RegisterRoutes(app, handler)

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
