package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DatabaseURL    string
	DBName         string
	DBPassword     string
	DBUser         string
	DBPort         string
	DBHost         string
	DBSSLMode      string
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBAutoMigrate  bool

	Env         string
	LogLevel    string
	HTTPTimeout int32

	OpenWeatherAPIKey string
	OpenWeatherAPIURL string
	WeatherAPITimeout time.Duration

	PageSize             int
	RecentWeatherLimit   int
	AnalyticsDefaultDays int
	AnalyticsMaxDays     int

	CORSAllowedOrigins []string
	RateLimitRPS       int
	RateLimitBurst     int

	CircuitBreakerEnabled  bool
	CircuitBreakerFailures int
	CircuitBreakerTimeout  time.Duration
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-analytics-service")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 25)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 25)
	v.SetDefault("DATABASE_AUTO_MIGRATE", true)
	v.SetDefault("HTTP_TIMEOUT", 30)
	v.SetDefault("OPENWEATHER_API_URL", "http://api.openweathermap.org/data/2.5/weather")
	v.SetDefault("WEATHER_API_TIMEOUT", 10*time.Second)
	v.SetDefault("PAGE_SIZE", 10)
	v.SetDefault("RECENT_WEATHER_LIMIT", 5)
	v.SetDefault("ANALYTICS_DEFAULT_DAYS", 7)
	v.SetDefault("ANALYTICS_MAX_DAYS", 0)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 250)
	v.SetDefault("CIRCUIT_BREAKER_ENABLED", false)
	v.SetDefault("CIRCUIT_BREAKER_FAILURES", 5)
	v.SetDefault("CIRCUIT_BREAKER_TIMEOUT", time.Minute)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:            v.GetString("SERVICE_NAME"),
		ServerAddress:          v.GetString("SERVER_ADDRESS"),
		DatabaseURL:            v.GetString("DATABASE_URL"),
		DBName:                 v.GetString("DATABASE_NAME"),
		DBPassword:             v.GetString("DATABASE_PASSWORD"),
		DBUser:                 v.GetString("DATABASE_USER"),
		DBPort:                 v.GetString("DATABASE_PORT"),
		DBHost:                 v.GetString("DATABASE_HOST"),
		DBSSLMode:              v.GetString("DATABASE_SSLMODE"),
		DBMaxOpenConns:         v.GetInt("DATABASE_MAX_OPEN_CONNS"),
		DBMaxIdleConns:         v.GetInt("DATABASE_MAX_IDLE_CONNS"),
		DBAutoMigrate:          v.GetBool("DATABASE_AUTO_MIGRATE"),
		Env:                    v.GetString("ENV"),
		LogLevel:               v.GetString("LOG_LEVEL"),
		HTTPTimeout:            v.GetInt32("HTTP_TIMEOUT"),
		OpenWeatherAPIKey:      v.GetString("OPENWEATHER_API_KEY"),
		OpenWeatherAPIURL:      v.GetString("OPENWEATHER_API_URL"),
		WeatherAPITimeout:      v.GetDuration("WEATHER_API_TIMEOUT"),
		PageSize:               v.GetInt("PAGE_SIZE"),
		RecentWeatherLimit:     v.GetInt("RECENT_WEATHER_LIMIT"),
		AnalyticsDefaultDays:   v.GetInt("ANALYTICS_DEFAULT_DAYS"),
		AnalyticsMaxDays:       v.GetInt("ANALYTICS_MAX_DAYS"),
		CORSAllowedOrigins:     splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimitRPS:           v.GetInt("RATE_LIMIT_RPS"),
		RateLimitBurst:         v.GetInt("RATE_LIMIT_BURST"),
		CircuitBreakerEnabled:  v.GetBool("CIRCUIT_BREAKER_ENABLED"),
		CircuitBreakerFailures: v.GetInt("CIRCUIT_BREAKER_FAILURES"),
		CircuitBreakerTimeout:  v.GetDuration("CIRCUIT_BREAKER_TIMEOUT"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// DSN prefers DATABASE_URL and falls back to the individual DATABASE_* settings.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func (c *Config) validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	if c.AnalyticsDefaultDays <= 0 {
		return fmt.Errorf("ANALYTICS_DEFAULT_DAYS must be positive, got %d", c.AnalyticsDefaultDays)
	}
	// ANALYTICS_MAX_DAYS of 0 leaves the window unbounded
	if c.AnalyticsMaxDays < 0 || (c.AnalyticsMaxDays > 0 && c.AnalyticsMaxDays < c.AnalyticsDefaultDays) {
		return fmt.Errorf("ANALYTICS_MAX_DAYS (%d) must be 0 or not below ANALYTICS_DEFAULT_DAYS (%d)",
			c.AnalyticsMaxDays, c.AnalyticsDefaultDays)
	}
	if c.WeatherAPITimeout <= 0 {
		return fmt.Errorf("WEATHER_API_TIMEOUT must be positive")
	}
	if c.RecentWeatherLimit < 0 {
		c.RecentWeatherLimit = 0
	}

	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
