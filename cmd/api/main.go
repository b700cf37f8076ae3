package main

import (
	"context"
	"log"
	"os"

	_ "quickbuild_estimate/docs"
	"quickbuild_estimate/internal/adapter/http/handlers"
	"quickbuild_estimate/internal/adapter/http/routes"
	"quickbuild_estimate/internal/adapter/importer"
	"quickbuild_estimate/internal/adapter/persistence/repository"
	"quickbuild_estimate/internal/adapter/proposal"
	"quickbuild_estimate/internal/infrastructure/config"
	"quickbuild_estimate/internal/infrastructure/database"
	"quickbuild_estimate/internal/infrastructure/payments"
	"quickbuild_estimate/internal/infrastructure/storage"
	"quickbuild_estimate/internal/usecase"
	"quickbuild_estimate/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
)

// @title           QuickBuild Estimate API
// @version         1.0
// @description     Construction cost estimation: area pricing, bundles, adjustments, proposals and deposits.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ddb := database.ConnectDynamoDB(ctx)
	estimateRepo := repository.NewEstimateDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, cfg.Pricing)
	importUseCase := usecase.NewImportUseCase(estimateUseCase, importer.NewParser())

	var archive interfaces.IProposalArchive
	if cfg.ProposalsBucket != "" {
		s3Client, err := storage.NewS3ClientFromEnv(ctx)
		if err != nil {
			log.Fatalf("S3 init failed: %v", err)
		}
		archive = proposal.NewS3Archive(s3Client, cfg.ProposalsBucket, os.Getenv("PROPOSALS_BASE_URL"))
		log.Printf("[proposal][infra] archiving to bucket=%s", cfg.ProposalsBucket)
	}
	proposalUseCase := usecase.NewProposalUseCase(estimateUseCase, proposal.NewPDFRenderer(os.Getenv("COMPANY_NAME")), archive)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, estimateRepo, paymentGateway, cfg.Pricing.DepositPercentage)

	routes.Run(cfg, routes.Handlers{
		Estimate: handlers.NewEstimateHandler(estimateUseCase),
		Payment:  handlers.NewPaymentHandler(paymentUseCase),
		Import:   handlers.NewImportHandler(importUseCase),
		Proposal: handlers.NewProposalHandler(proposalUseCase),
	})
}
