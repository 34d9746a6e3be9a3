package main

import (
	"context"
	"log"

	"crm-services/cmd/api/app"
	"crm-services/cmd/api/server"
)

func main() {
	application, err := app.New()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	ctx, stop := server.WithSignal(context.Background())
	defer stop()

	if err := application.Run(ctx); err != nil {
		log.Fatalf("application exited with error: %v", err)
	}
}
