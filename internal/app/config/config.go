package config

import (
	"clinic-dashboard/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

// NewDriverConfig reads connection settings. An empty host leaves that
// driver disabled.
func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", ""),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", ""),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", ""),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", ""),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api/v1"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxExportRequestsPerMinute: utils.GetEnvInt("APP_MAX_EXPORT_REQUESTS_PER_MINUTE", 30),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		Backend: AppBackend{
			BaseUrl:              utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:8000/api"),
			TimeoutInSeconds:     utils.GetEnvInt("BACKEND_TIMEOUT_IN_SECONDS", 0),
			MaxRequestsPerSecond: utils.GetEnvFloat("BACKEND_MAX_REQUESTS_PER_SECOND", 0),
		},
		UI: AppUI{
			StateTTLInMinutes:      utils.GetEnvInt("UI_STATE_TTL_IN_MINUTES", 60),
			EnableRedisRelay:       utils.GetEnvBool("UI_ENABLE_REDIS_RELAY", true),
			ProfileRefreshCronSpec: utils.GetEnvString("UI_PROFILE_REFRESH_CRON_SPEC", "@every 5m"),
		},
		Minio: AppMinio{
			BucketName:                      utils.GetEnvString("MINIO_BUCKET_NAME", "clinic-exports"),
			PreSignedUrlObjectExpiryInHours: utils.GetEnvInt("APP_MINIO_PRE_SIGNED_URL_OBJECT_EXPIRY_TIME_IN_HOURS", 24),
			ArchiveMaxPerMinute:             utils.GetEnvInt("APP_ARCHIVE_MAX_PER_MINUTE", 10),
		},
		RabbitMQ: AppRabbitMQ{
			EventsExchange: utils.GetEnvString("APP_RABBITMQ_EVENTS_EXCHANGE", "clinic.dashboard.events"),
		},
	}
}
