package main

import (
	"claims-processor/pkg/logger"
	"claims-processor/pkg/rabbitmq"
	"claims-processor/pkg/utilities"
)

type ApiConfigJson struct {
	LoggerConfig   logger.LoggerConfigJson    `json:"logger"`
	RabbitmqConfig rabbitmq.RabbimqConfigJson `json:"rabbitmq"`
	RestConfig     RestConfigJson             `json:"rest"`
	DatabaseConfig DatabaseConfigJson         `json:"database"`
}

type RestConfigJson struct {
	Port          uint16 `json:"port"`
	AllowedOrigin string `json:"allowed_origin"`
}

type DatabaseConfigJson struct {
	ConnectionString string `json:"connection_string"`
	SeedSampleData   bool   `json:"seed_sample_data"`
}

type ApiConfig struct {
	LoggerConfig     logger.LoggerConfig
	RabbitmqConfig   rabbitmq.RabbitmqConfig
	RestApiPort      uint16
	AllowedOrigin    string
	ConnectionString string
	SeedSampleData   bool
}

// ConvertToDomain applies environment overrides on top of the file config so
// deployments can inject credentials without editing config.json.
func (acj ApiConfigJson) ConvertToDomain() ApiConfig {
	rabbitmqConfig := acj.RabbitmqConfig.ConvertToDomain()
	rabbitmqConfig.User = utilities.EnvOrDefault("RABBITMQ_USER", rabbitmqConfig.User)
	rabbitmqConfig.Password = utilities.EnvOrDefault("RABBITMQ_PASSWORD", rabbitmqConfig.Password)
	rabbitmqConfig.Host = utilities.EnvOrDefault("RABBITMQ_HOST", rabbitmqConfig.Host)

	return ApiConfig{
		LoggerConfig:     acj.LoggerConfig.ConvertToDomain(),
		RabbitmqConfig:   rabbitmqConfig,
		RestApiPort:      acj.RestConfig.Port,
		AllowedOrigin:    acj.RestConfig.AllowedOrigin,
		ConnectionString: utilities.EnvOrDefault("DATABASE_URL", acj.DatabaseConfig.ConnectionString),
		SeedSampleData:   acj.DatabaseConfig.SeedSampleData,
	}
}

func (ac ApiConfig) GetLoggerConfig() logger.LoggerConfig {
	return ac.LoggerConfig
}

func (ac ApiConfig) GetRabbitmqConfig() rabbitmq.RabbitmqConfig {
	return ac.RabbitmqConfig
}

func (ac ApiConfig) GetRestApiPort() uint16 {
	return ac.RestApiPort
}
