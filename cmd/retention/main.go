// Command retention supersedes estimates older than RETENTION_DAYS. It runs
// once and exits, so it is meant to be scheduled (cron, EventBridge).
package main

import (
	"context"
	"log"
	"time"

	"quickbuild_estimate/internal/adapter/persistence/repository"
	"quickbuild_estimate/internal/infrastructure/config"
	"quickbuild_estimate/internal/infrastructure/database"
	"quickbuild_estimate/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	repo := repository.NewEstimateDynamoRepository(database.ConnectDynamoDB(ctx))
	n, err := usecase.NewRetentionUseCase(repo, cfg.Retention.Window).SupersedeExpired(ctx, time.Now().UTC())
	if err != nil {
		log.Fatalf("Retention run failed after %d estimates: %v", n, err)
	}
	log.Printf("[retention][cmd] done superseded=%d", n)
}
