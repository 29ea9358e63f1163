package configs

import (
	"errors"
	"fmt"
	"strings"

	"dynamo-insights/internal/shared/validators"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. DYNAMO_INSIGHTS_SERVER_PORT overrides server.port.
const EnvPrefix = "DYNAMO_INSIGHTS"

// LoadConfig reads the YAML file at configPath, applies defaults and environment
// overrides, then validates the result.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validators.NewMapstructure().Struct(&cfg); err != nil {
		var fieldErrs validators.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, fmt.Errorf("config validation failed: %w", err)
		}
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, describeFieldError(fe))
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(msgs, ", "))
	}

	return &cfg, nil
}

// describeFieldError renders "Config.server.port" failing min=1 as "server.port (min=1)",
// using the same keys as the config file.
func describeFieldError(fe validators.FieldError) string {
	path := fe.Field()
	if _, rest, ok := strings.Cut(fe.Namespace(), "."); ok {
		path = rest
	}
	if fe.Param() == "" {
		return fmt.Sprintf("%s (%s)", path, fe.Tag())
	}
	return fmt.Sprintf("%s (%s=%s)", path, fe.Tag(), fe.Param())
}

// setDefaults registers the values used when a key is absent from the config file.
// Keys listed here are also the ones reachable through environment overrides.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_header_timeout", 5)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 60)

	v.SetDefault("log.level", "info")

	v.SetDefault("collector.enabled", true)
	v.SetDefault("collector.sample_rate", 1.0)
	v.SetDefault("collector.thresholds.slow_query_ms", 1000)
	v.SetDefault("collector.thresholds.high_read_units", 100)
	v.SetDefault("collector.thresholds.high_write_units", 100)

	v.SetDefault("pricing.on_demand_read_unit_price", 0.00000025)
	v.SetDefault("pricing.on_demand_write_unit_price", 0.00000125)
	v.SetDefault("pricing.provisioned_rcu_hourly", 0.00013)
	v.SetDefault("pricing.provisioned_wcu_hourly", 0.00065)

	v.SetDefault("reporter.enabled", false)
	v.SetDefault("reporter.interval", 300)
	v.SetDefault("reporter.window_size", "hour")

	v.SetDefault("cloudwatch.enabled", false)
	v.SetDefault("cloudwatch.region", "")
	v.SetDefault("cloudwatch.namespace", "DynamoInsights")
}
