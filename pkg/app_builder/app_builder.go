package appbuilder

import (
	"fmt"

	"claims-processor/pkg/logger"
	"claims-processor/pkg/rabbitmq"
	"claims-processor/pkg/rest"
	"claims-processor/pkg/utilities"

	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
)

type AppConfig interface {
	GetLoggerConfig() logger.LoggerConfig
	GetRabbitmqConfig() rabbitmq.RabbitmqConfig
	GetRestApiPort() uint16
}

// AppBuilder assembles the application step by step. Logger, Config, Conn and
// Registry are exported so WithOption callbacks can wire domain components
// against them.
type AppBuilder[T utilities.JsonConfigObj[U], U AppConfig] struct {
	Logger   *logger.Logger
	Config   U
	Conn     *amqp.Connection
	Registry *rabbitmq.Registry

	workerServices []rabbitmq.WorkerService
	middlewares    []rest.Middleware
	routes         []rest.Route
	engine         *gin.Engine
}

func New[T utilities.JsonConfigObj[U], U AppConfig]() *AppBuilder[T, U] {
	return &AppBuilder[T, U]{}
}

func (a *AppBuilder[T, U]) InitLogger(loggerArgs logger.GlobalLoggerConfig) *AppBuilder[T, U] {
	logger.InitDefaultLogger(loggerArgs)
	a.Logger = logger.Default()
	a.Logger.Info("Logger initialized")

	return a
}

func (a *AppBuilder[T, U]) LoadConfig(filePath string) *AppBuilder[T, U] {
	a.Logger.Infof("Preparing to load config from %s ...", filePath)
	config, err := utilities.ReadConfig[T, U](filePath)
	if err != nil {
		a.Logger.Error(err, "Failed to load config")
		panic(err)
	}

	a.Config = config
	a.Logger.Info("Config successfully loaded.")
	return a
}

// WithOption runs arbitrary wiring against the partially built application.
func (a *AppBuilder[T, U]) WithOption(option func(a *AppBuilder[T, U])) *AppBuilder[T, U] {
	option(a)
	return a
}

func (a *AppBuilder[T, U]) InitRabbitmq() *AppBuilder[T, U] {
	a.Logger.Info("Preparing to connect to Rabbitmq server...")
	rabbitmqConfig := a.Config.GetRabbitmqConfig()

	conn, err := rabbitmq.ConnectToRabbitmq(rabbitmqConfig)
	if err != nil {
		panic(err)
	}
	a.Conn = conn
	a.Logger.Info("Connection with Rabbitmq server established")

	registry, err := rabbitmq.NewRegistry(conn, rabbitmqConfig)
	if err != nil {
		a.Logger.Error(err, "Failed to initialize Rabbitmq registry")
		panic(err)
	}
	a.Registry = registry
	a.Logger.Info("Successfully initialized Rabbitmq registry from config")

	return a
}

func (a *AppBuilder[T, U]) AddWorkerServices(workerServices ...rabbitmq.WorkerService) *AppBuilder[T, U] {
	a.Logger.Info("Adding Worker Services to Application...")
	a.workerServices = append(a.workerServices, workerServices...)
	return a
}

func (a *AppBuilder[T, U]) AddGinMiddleware(middlewares ...rest.Middleware) *AppBuilder[T, U] {
	a.middlewares = append(a.middlewares, middlewares...)
	return a
}

func (a *AppBuilder[T, U]) AddGinRoutes(routes ...rest.Route) *AppBuilder[T, U] {
	a.Logger.Info("Adding Gin REST API routes to Application...")
	a.routes = append(a.routes, routes...)
	return a
}

func (a *AppBuilder[T, U]) InitGinRouter() *AppBuilder[T, U] {
	a.Logger.Info("Initializing Gin Router...")
	router := gin.Default()

	groups := map[string]*gin.RouterGroup{}
	groupFor := func(name string) *gin.RouterGroup {
		if _, exists := groups[name]; !exists {
			groups[name] = router.Group("/" + name)
		}
		return groups[name]
	}

	for _, m := range a.middlewares {
		if m.Group == "*" {
			router.Use(m.Handler)
			continue
		}
		groupFor(m.Group).Use(m.Handler)
	}

	a.Logger.Info("Registering REST API routes...")
	for _, r := range a.routes {
		group := groupFor(r.Group)

		switch r.Method {
		case rest.GET:
			group.GET(r.Path, r.HandlerFunc)
		case rest.POST:
			group.POST(r.Path, r.HandlerFunc)
		case rest.PUT:
			group.PUT(r.Path, r.HandlerFunc)
		case rest.PATCH:
			group.PATCH(r.Path, r.HandlerFunc)
		default:
			a.Logger.Warnf("Unrecognized HTTP method: %d", r.Method)
		}
	}

	a.engine = router
	a.Logger.Info("Successfully registered REST API routes.")
	return a
}

func (a *AppBuilder[T, U]) Build() *Application {
	return &Application{
		Logger:         a.Logger,
		Addr:           fmt.Sprintf("0.0.0.0:%d", a.Config.GetRestApiPort()),
		Conn:           a.Conn,
		WorkerServices: a.workerServices,
		Engine:         a.engine,
	}
}
