package config

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	Backend  AppBackend  `mapstructure:"backend"`
	UI       AppUI       `mapstructure:"ui"`
	Minio    AppMinio    `mapstructure:"minio"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	MaxExportRequestsPerMinute int    `mapstructure:"max_export_requests_per_minute"`
	RequestTimeoutInSeconds    int    `mapstructure:"request_timeout_in_seconds"`
}

// AppBackend points at the clinic REST backend. A zero timeout or rate
// leaves the limit off.
type AppBackend struct {
	BaseUrl              string  `mapstructure:"base_url"`
	TimeoutInSeconds     int     `mapstructure:"timeout_in_seconds"`
	MaxRequestsPerSecond float64 `mapstructure:"max_requests_per_second"`
}

// AppUI holds dashboard screen settings. An empty ProfileRefreshCronSpec
// disables the periodic profile refresh.
type AppUI struct {
	StateTTLInMinutes      int    `mapstructure:"state_ttl_in_minutes"`
	EnableRedisRelay       bool   `mapstructure:"enable_redis_relay"`
	ProfileRefreshCronSpec string `mapstructure:"profile_refresh_cron_spec"`
}

type AppMinio struct {
	BucketName                      string `mapstructure:"bucket_name"`
	PreSignedUrlObjectExpiryInHours int    `mapstructure:"pre_signed_url_object_expiry_in_hours"`
	ArchiveMaxPerMinute             int    `mapstructure:"archive_max_per_minute"`
}

type AppRabbitMQ struct {
	EventsExchange string `mapstructure:"events_exchange"`
}
