package database

import (
	"context"
	"log"
	"os"

	"quickbuild_estimate/internal/infrastructure/awsconfig"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates the DynamoDB client backing estimates and payments.
// DYNAMODB_ENDPOINT points it at a local emulator.
func ConnectDynamoDB(ctx context.Context) *dynamodb.Client {
	cfg, err := awsconfig.Load(ctx, dynamodb.ServiceID, os.Getenv("DYNAMODB_ENDPOINT"))
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	log.Printf("[database][dynamodb] client ready region=%s local=%t", cfg.Region, os.Getenv("DYNAMODB_ENDPOINT") != "")
	return dynamodb.NewFromConfig(cfg)
}
