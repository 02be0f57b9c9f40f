// Command smoketest checks a locally running backend: frontend
// reachability, auth enforcement on the status endpoint, and OAuth service
// construction from the environment. Exit code 0 on success, 1 on failure.
//
// Usage:
//
//	go run ./cmd/smoketest
//	SMOKE_BASE_URL=http://localhost:8080 go run ./cmd/smoketest
package main

import (
	"context"
	"fmt"
	"os"

	"calendar-assistant/config"
	"calendar-assistant/internal/smoke"
	"calendar-assistant/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     "debug",
		Encoding: "console",
	})

	runner := smoke.NewRunner(logger, smoke.Config{
		BaseURL:      cfg.Smoke.BaseURL,
		FrontendPath: cfg.Smoke.FrontendPath,
		StatusPath:   cfg.Smoke.StatusPath,
	}, os.Stdout)

	if !runner.Run(context.Background()) {
		os.Exit(1)
	}
}
