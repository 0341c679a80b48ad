package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Redis holds the connection settings for the config/cache store.
	Redis RedisConfig `mapstructure:",squash"`

	// Mappings holds the external vendor-mapping store settings.
	Mappings MappingsConfig `mapstructure:",squash"`

	// Vendors holds the courier tracking API settings.
	Vendors VendorAPIConfig `mapstructure:",squash"`

	// Proxy holds the optional egress proxy for vendor API calls.
	Proxy ProxyConfig `mapstructure:",squash"`
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	// URL is the Redis connection string, e.g. redis://localhost:6379/0.
	URL string `mapstructure:"REDIS_URL" required:"true"`
}

// MappingsConfig holds the settings for externally-sourced vendor status mappings.
type MappingsConfig struct {
	// CacheKey is the Redis key the mapping document is stored under.
	CacheKey string `mapstructure:"MAPPINGS_CACHE_KEY" default:"vendor_status_mappings"`
}

// VendorAPIConfig holds per-vendor tracking API settings for the poller.
// A vendor without a URL is simply not polled.
type VendorAPIConfig struct {
	// HTTPTimeoutSeconds bounds each tracking API call.
	HTTPTimeoutSeconds int `mapstructure:"VENDOR_HTTP_TIMEOUT_SECONDS" default:"15"`
	// DelhiveryURL is the Delhivery tracking endpoint template.
	DelhiveryURL string `mapstructure:"VENDOR_DELHIVERY_URL"`
	// ShiprocketURL is the Shiprocket tracking endpoint template.
	ShiprocketURL string `mapstructure:"VENDOR_SHIPROCKET_URL"`
	// SmartshipURL is the Smartship tracking endpoint template.
	SmartshipURL string `mapstructure:"VENDOR_SMARTSHIP_URL"`
	// EcomExpressURL is the Ecom Express tracking endpoint template.
	EcomExpressURL string `mapstructure:"VENDOR_ECOM_EXPRESS_URL"`
	// XpressbeesURL is the Xpressbees tracking endpoint template.
	XpressbeesURL string `mapstructure:"VENDOR_XPRESSBEES_URL"`
}

// ProxyConfig holds egress proxy settings for vendor API calls.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"PROXY_ENABLED" default:"false"`
	Hostname string `mapstructure:"PROXY_HOST"`
	Port     int    `mapstructure:"PROXY_PORT"`
	Username string `mapstructure:"PROXY_USERNAME"`
	Password string `mapstructure:"PROXY_PASSWORD"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
