package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Redis    Redis
	Analysis Analysis
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Redis configures the read-through assessment cache. An empty Addr
// disables caching entirely.
type Redis struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

// Analysis configures the external behavioral analysis service. An empty
// BaseURL disables it; Required controls whether submissions may proceed
// while it is unreachable.
type Analysis struct {
	BaseURL       string
	Required      bool
	HealthTimeout time.Duration
	CallTimeout   time.Duration
	Retries       int
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "postgres")
	viper.SetDefault("DATABASE_NAME", "examsense")

	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("ASSESSMENT_CACHE_TTL", "5m")

	viper.SetDefault("ANALYSIS_BASE_URL", "")
	viper.SetDefault("ANALYSIS_REQUIRED", false)
	viper.SetDefault("ANALYSIS_HEALTH_TIMEOUT", "2s")
	viper.SetDefault("ANALYSIS_CALL_TIMEOUT", "5s")
	viper.SetDefault("ANALYSIS_RETRIES", 2)
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	setDefaults()
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")
	config.Redis.CacheTTL = viper.GetDuration("ASSESSMENT_CACHE_TTL")

	config.Analysis.BaseURL = viper.GetString("ANALYSIS_BASE_URL")
	config.Analysis.Required = viper.GetBool("ANALYSIS_REQUIRED")
	config.Analysis.HealthTimeout = viper.GetDuration("ANALYSIS_HEALTH_TIMEOUT")
	config.Analysis.CallTimeout = viper.GetDuration("ANALYSIS_CALL_TIMEOUT")
	config.Analysis.Retries = viper.GetInt("ANALYSIS_RETRIES")

	log.Info().Str("serverPort", config.Server.Port).Str("analysisBaseURL", config.Analysis.BaseURL).Msg("Config loaded")
	return &config, nil
}
