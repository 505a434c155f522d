package main

import (
	appbuilder "claims-processor/pkg/app_builder"
	"claims-processor/pkg/logger"
	"claims-processor/pkg/rabbitmq"
	"claims-processor/pkg/rest"
	"claims-processor/src/assessment"
	"claims-processor/src/audit"
	"claims-processor/src/claims"
	"claims-processor/src/consumer"
	"claims-processor/src/database"
	"claims-processor/src/events"
	"claims-processor/src/health"
	"claims-processor/src/middleware"
	"claims-processor/src/policy"
	"claims-processor/src/processor"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName = "claims-processor"

const logPublisherAlias rabbitmq.PublisherAlias = "LogPublisher"

func main() {
	_ = godotenv.Load()

	var claimsHandler *claims.Handler
	var auditHandler *audit.Handler
	var healthHandler *health.Handler
	var workers []rabbitmq.WorkerService

	app := appbuilder.New[ApiConfigJson, ApiConfig]().
		InitLogger(logger.GlobalLoggerConfig{
			Args: []logger.LoggerArg{
				{Key: "service", Value: serviceName},
			},
		}).
		LoadConfig("config.json").
		InitRabbitmq().
		WithOption(func(a *appbuilder.AppBuilder[ApiConfigJson, ApiConfig]) {
			db, err := database.ConnectToDatabase(a.Config.ConnectionString)
			if err != nil {
				a.Logger.Fatal(err, "Failed to connect to database")
			}
			if err := database.AutoMigrate(db); err != nil {
				a.Logger.Fatal(err, "Failed to migrate database schema")
			}
			if a.Config.SeedSampleData {
				if err := database.SeedSampleData(db); err != nil {
					a.Logger.Fatal(err, "Failed to seed sample policies")
				}
			}

			if logPublisher, err := a.Registry.Publisher(logPublisherAlias); err == nil {
				logger.AddSinkToLoggerInstance(a.Logger, rabbitmq.CreateRabbitmqLoggerSink(logPublisher, serviceName))
			} else {
				a.Logger.Warn("No log publisher configured, log forwarding disabled")
			}

			claimRepository := claims.NewRepository(db)
			assessmentRepository := assessment.NewRepository(db)
			policyRepository := policy.NewRepository(db)
			auditRepository := audit.NewRepository(db)

			producer, err := events.NewEventProducer(a.Registry)
			if err != nil {
				a.Logger.Fatal(err, "Failed to wire event producer")
			}

			claimProcessor := processor.NewProcessor(
				claimRepository,
				assessmentRepository,
				policy.NewChecker(policyRepository),
				assessment.NewEngine(nil),
				producer,
			)

			submissionWorker, err := consumer.NewClaimSubmissionWorker(a.Registry, claimProcessor)
			if err != nil {
				a.Logger.Fatal(err, "Failed to wire claim submission worker")
			}
			highPriorityWorker, err := consumer.NewHighPriorityClaimWorker(a.Registry, claimProcessor)
			if err != nil {
				a.Logger.Fatal(err, "Failed to wire high priority claim worker")
			}

			auditService := audit.NewService(auditRepository)
			logSinkWorker, err := audit.NewLogSinkWorker(a.Registry, auditService)
			if err != nil {
				a.Logger.Fatal(err, "Failed to wire log sink worker")
			}

			workers = []rabbitmq.WorkerService{
				submissionWorker,
				highPriorityWorker,
				logSinkWorker,
				policy.NewSweepWorker(policyRepository),
			}

			claimsHandler = claims.NewHandler(claims.NewService(claimRepository, assessmentRepository, producer))
			auditHandler = audit.NewHandler(auditService)
			healthHandler = health.NewHandler(claimRepository)
		})

	app.
		AddWorkerServices(workers...).
		AddGinMiddleware(rest.NewMiddleware("*", middleware.CreateCorsMiddleware(app.Config.AllowedOrigin))).
		AddGinRoutes(claimsHandler.Routes()...).
		AddGinRoutes(auditHandler.Routes()...).
		AddGinRoutes(healthHandler.Routes()...).
		AddGinRoutes(rest.NewRoute(rest.GET, "metrics", "", gin.WrapH(promhttp.Handler()))).
		InitGinRouter().
		Build().
		Start()
}
