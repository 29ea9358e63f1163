package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Collector   CollectorConfig   `mapstructure:"collector"`
	Pricing     PricingConfig     `mapstructure:"pricing"`
	Reporter    ReporterConfig    `mapstructure:"reporter"`
	CloudWatch  CloudWatchConfig  `mapstructure:"cloudwatch"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=trace debug info warn error disabled"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// CollectorConfig holds telemetry collector configuration.
type CollectorConfig struct {
	Enabled    bool             `mapstructure:"enabled"`
	SampleRate float64          `mapstructure:"sample_rate" validate:"min=0,max=1"`
	Thresholds ThresholdsConfig `mapstructure:"thresholds"`
}

// ThresholdsConfig holds the per-operation alert thresholds.
type ThresholdsConfig struct {
	SlowQueryMs    float64 `mapstructure:"slow_query_ms" validate:"min=0"`
	HighReadUnits  float64 `mapstructure:"high_read_units" validate:"min=0"`
	HighWriteUnits float64 `mapstructure:"high_write_units" validate:"min=0"`
}

// PricingConfig holds the illustrative prices used by the capacity mode advisor.
type PricingConfig struct {
	OnDemandReadUnitPrice  float64 `mapstructure:"on_demand_read_unit_price" validate:"min=0"`  // per read request unit
	OnDemandWriteUnitPrice float64 `mapstructure:"on_demand_write_unit_price" validate:"min=0"` // per write request unit
	ProvisionedRCUHourly   float64 `mapstructure:"provisioned_rcu_hourly" validate:"min=0"`     // per RCU-hour
	ProvisionedWCUHourly   float64 `mapstructure:"provisioned_wcu_hourly" validate:"min=0"`     // per WCU-hour
}

// ReporterConfig holds periodic diagnostics report configuration.
type ReporterConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Interval   int    `mapstructure:"interval" validate:"min=1"` // seconds
	WindowSize string `mapstructure:"window_size" validate:"required,oneof=minute hour"`
}

// CloudWatchConfig holds CloudWatch export configuration.
type CloudWatchConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Region    string `mapstructure:"region" validate:"required_if=Enabled true"`
	Namespace string `mapstructure:"namespace" validate:"required_if=Enabled true"`
}
