package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	JWT          JWTConfig
	Storage      StorageConfig
	Tracing      TracingConfig `mapstructure:"tracing"`
	Redis        RedisConfig
	CORS         CORSConfig         `mapstructure:"cors"`
	RateLimit    RateLimitConfig    `mapstructure:"rate_limit"`
	Prediction   PredictionConfig   `mapstructure:"prediction"`
	Notification NotificationConfig `mapstructure:"notification"`
	Quiz         QuizConfig         `mapstructure:"quiz"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	ForceMigrate bool `mapstructure:"-"` // 强制执行数据库迁移
	MigrateOnly  bool `mapstructure:"-"` // 仅迁移模式（迁移后退出）
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
}

// StorageConfig 批量预测报告的归档位置，type 为 local 或 minio
type StorageConfig struct {
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
	MinioUseSSL   bool   `mapstructure:"minio_use_ssl"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// PredictionConfig 预测模型版本、有效期以及定时批量任务
type PredictionConfig struct {
	ModelVersion         string `mapstructure:"model_version"`
	EngagementValidDays  int    `mapstructure:"engagement_valid_days"`
	RiskValidDays        int    `mapstructure:"risk_valid_days"`
	CompletionValidDays  int    `mapstructure:"completion_valid_days"`
	SkillsGapValidDays   int    `mapstructure:"skills_gap_valid_days"`
	BatchEnabled         bool   `mapstructure:"batch_enabled"`
	BatchIntervalMinutes int    `mapstructure:"batch_interval_minutes"`
	BatchConcurrency     int    `mapstructure:"batch_concurrency"`
	ArchiveReports       bool   `mapstructure:"archive_reports"`
}

type NotificationConfig struct {
	AlertChannel string `mapstructure:"alert_channel"`
}

type QuizConfig struct {
	SessionTTLMinutes        int `mapstructure:"session_ttl_minutes"`
	QuestionTimeLimitSeconds int `mapstructure:"question_time_limit_seconds"`
	BasePoints               int `mapstructure:"base_points"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")

	v.SetDefault("jwt.expire_hours", 24)

	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.local_path", "./uploads")

	v.SetDefault("rate_limit.max_requests", 100)
	v.SetDefault("rate_limit.window_minutes", 1)

	v.SetDefault("prediction.model_version", "1.0")
	v.SetDefault("prediction.engagement_valid_days", 7)
	v.SetDefault("prediction.risk_valid_days", 7)
	v.SetDefault("prediction.completion_valid_days", 30)
	v.SetDefault("prediction.skills_gap_valid_days", 30)
	v.SetDefault("prediction.batch_enabled", false)
	v.SetDefault("prediction.batch_interval_minutes", 1440)
	v.SetDefault("prediction.batch_concurrency", 8)
	v.SetDefault("prediction.archive_reports", true)

	v.SetDefault("notification.alert_channel", "learner_insights:alerts")

	v.SetDefault("quiz.session_ttl_minutes", 120)
	v.SetDefault("quiz.question_time_limit_seconds", 120)
	v.SetDefault("quiz.base_points", 10)
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("LEARNER_INSIGHTS")
	v.AutomaticEnv()

	setDefaults(v)

	// Database
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.port", "DATABASE_PORT")
	v.BindEnv("database.user", "DATABASE_USER")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "DATABASE_NAME")

	// JWT
	v.BindEnv("jwt.secret", "JWT_SECRET")

	// Redis
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	v.BindEnv("server.mode", "SERVER_MODE")

	// Storage
	v.BindEnv("storage.type", "STORAGE_TYPE")
	v.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	v.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	v.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	v.BindEnv("storage.minio_bucket", "MINIO_BUCKET")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	// Prediction
	v.BindEnv("prediction.batch_enabled", "PREDICTION_BATCH_ENABLED")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.JWT.ExpireTime = cfg.JWT.ExpireTime * time.Hour

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Storage.Type == "local" {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, 0755)
		}
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	// 生产环境校验 JWT Secret 强度
	if c.Server.Mode == "release" && len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(c.JWT.Secret))
	}
	if c.Prediction.BatchConcurrency < 1 {
		return fmt.Errorf("prediction.batch_concurrency must be >= 1, got %d", c.Prediction.BatchConcurrency)
	}
	if c.Prediction.BatchEnabled && c.Prediction.BatchIntervalMinutes < 1 {
		return fmt.Errorf("prediction.batch_interval_minutes must be >= 1 when batch is enabled")
	}
	return nil
}

// ValidFor 各预测类型的有效天数
func (p PredictionConfig) ValidFor(predictionType string) time.Duration {
	days := p.CompletionValidDays
	switch predictionType {
	case "engagement":
		days = p.EngagementValidDays
	case "at_risk":
		days = p.RiskValidDays
	case "skills_gap":
		days = p.SkillsGapValidDays
	}
	return time.Duration(days) * 24 * time.Hour
}
