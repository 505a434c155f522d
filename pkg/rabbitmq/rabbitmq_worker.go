package rabbitmq

// WorkerService is a long-running background service started by the
// application after wiring completes.
type WorkerService interface {
	GetServiceName() string
	StartService()
}
