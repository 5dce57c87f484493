package configs

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Env      string         `yaml:"env" env:"APP_ENV"`
	HTTP     HTTPConfig     `yaml:"http"`
	DB       DBConfig       `yaml:"db"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Redis    RedisConfig    `yaml:"redis"`
	Slack    SlackConfig    `yaml:"slack"`
	LLM      LLMConfig      `yaml:"llm"`
	Pipeline PipelineConfig `yaml:"pipeline"`
}

type HTTPConfig struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes" env:"HTTP_MAX_BODY_BYTES"`
}

type DBConfig struct {
	Host           string `yaml:"host" env:"DB_HOST"`
	Port           int    `yaml:"port" env:"DB_PORT"`
	User           string `yaml:"user" env:"DB_USER"`
	Password       string `yaml:"password" env:"DB_PASSWORD"` //nolint:gosec // config struct, not hardcoded cred
	DBName         string `yaml:"dbname" env:"DB_NAME"`
	SSLMode        string `yaml:"sslmode" env:"DB_SSL_MODE"`
	MaxConns       int32  `yaml:"max_conns" env:"DB_MAX_CONNS"`
	MinConns       int32  `yaml:"min_conns" env:"DB_MIN_CONNS"`
	AutoMigrate    bool   `yaml:"auto_migrate" env:"DB_AUTO_MIGRATE"`
	MigrationsPath string `yaml:"migrations_path" env:"DB_MIGRATIONS_PATH"`
}

type KafkaConfig struct {
	Brokers []string    `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	GroupID string      `yaml:"group_id" env:"KAFKA_GROUP_ID"`
	Topics  KafkaTopics `yaml:"topics"`
}

type KafkaTopics struct {
	Assignments string `yaml:"assignments" env:"KAFKA_TOPIC_ASSIGNMENTS"`
	Submissions string `yaml:"submissions" env:"KAFKA_TOPIC_SUBMISSIONS"`
	Reminders   string `yaml:"reminders" env:"KAFKA_TOPIC_REMINDERS"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"` //nolint:gosec // config struct
	DB       int    `yaml:"db" env:"REDIS_DB"`
}

type SlackConfig struct {
	BotToken      string        `yaml:"bot_token" env:"SLACK_BOT_TOKEN"`           //nolint:gosec // config struct
	SigningSecret string        `yaml:"signing_secret" env:"SLACK_SIGNING_SECRET"` //nolint:gosec // config struct
	Timeout       time.Duration `yaml:"timeout" env:"SLACK_TIMEOUT"`
}

type LLMConfig struct {
	APIKey           string        `yaml:"api_key" env:"GEMINI_API_KEY"` //nolint:gosec // config struct
	Model            string        `yaml:"model" env:"GEMINI_MODEL"`
	Timeout          time.Duration `yaml:"timeout" env:"LLM_TIMEOUT"`
	FailureThreshold int           `yaml:"failure_threshold" env:"LLM_FAILURE_THRESHOLD"`
	ResetTimeout     time.Duration `yaml:"reset_timeout" env:"LLM_RESET_TIMEOUT"`
}

type PipelineConfig struct {
	Timezone            string        `yaml:"timezone" env:"PIPELINE_TIMEZONE"`
	DefaultDeadlineDays int           `yaml:"default_deadline_days" env:"PIPELINE_DEFAULT_DEADLINE_DAYS"`
	DrainSchedule       string        `yaml:"drain_schedule" env:"PIPELINE_DRAIN_SCHEDULE"`
	ReminderSchedule    string        `yaml:"reminder_schedule" env:"PIPELINE_REMINDER_SCHEDULE"`
	ReminderWindow      time.Duration `yaml:"reminder_window" env:"PIPELINE_REMINDER_WINDOW"`
	CodeTTL             time.Duration `yaml:"code_ttl" env:"VERIFICATION_CODE_TTL"`
	TokenTTL            time.Duration `yaml:"token_ttl" env:"VERIFICATION_TOKEN_TTL"`
}

// Load reads the configuration of the ingestion service.
func Load() (*Config, error) {
	return load(validateConfig)
}

// LoadNotifier reads the configuration of the notifier, which only needs
// Kafka and the Slack bot token.
func LoadNotifier() (*Config, error) {
	return load(validateNotifierConfig)
}

func load(validate func(*Config) error) (*Config, error) {
	var cfg Config

	configPath := getConfigPath()
	data, err := os.ReadFile(configPath) //nolint:gosec // config path from env/flag
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	case os.IsNotExist(err):
		// environment-only deployment
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cleanenv.UpdateEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func getConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}

	possiblePaths := []string{
		"config/config.yaml",
		"/etc/skala-events/config.yaml",
		"./config.yaml",
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return "config.yaml"
}

func setDefaults(cfg *Config) {
	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = ":8080"
	}
	if cfg.HTTP.ShutdownTimeout == 0 {
		cfg.HTTP.ShutdownTimeout = 10 * time.Second
	}
	if cfg.HTTP.MaxBodyBytes == 0 {
		cfg.HTTP.MaxBodyBytes = 10 << 20
	}

	if cfg.DB.Port == 0 {
		cfg.DB.Port = 5432
	}
	if cfg.DB.SSLMode == "" {
		cfg.DB.SSLMode = "disable"
	}
	if cfg.DB.MaxConns == 0 {
		cfg.DB.MaxConns = 10
	}
	if cfg.DB.MigrationsPath == "" {
		cfg.DB.MigrationsPath = "migrations"
	}

	if cfg.Kafka.GroupID == "" {
		cfg.Kafka.GroupID = "skala-events-notifier"
	}
	if cfg.Kafka.Topics.Assignments == "" {
		cfg.Kafka.Topics.Assignments = "assignment-events"
	}
	if cfg.Kafka.Topics.Submissions == "" {
		cfg.Kafka.Topics.Submissions = "submission-events"
	}
	if cfg.Kafka.Topics.Reminders == "" {
		cfg.Kafka.Topics.Reminders = "assignment-reminders"
	}

	if cfg.Slack.Timeout == 0 {
		cfg.Slack.Timeout = 10 * time.Second
	}

	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "gemini-2.5-flash"
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 60 * time.Second
	}
	if cfg.LLM.FailureThreshold == 0 {
		cfg.LLM.FailureThreshold = 5
	}
	if cfg.LLM.ResetTimeout == 0 {
		cfg.LLM.ResetTimeout = time.Minute
	}

	if cfg.Pipeline.Timezone == "" {
		cfg.Pipeline.Timezone = "Asia/Seoul"
	}
	if cfg.Pipeline.DefaultDeadlineDays == 0 {
		cfg.Pipeline.DefaultDeadlineDays = 7
	}
	if cfg.Pipeline.DrainSchedule == "" {
		cfg.Pipeline.DrainSchedule = "@every 1m"
	}
	if cfg.Pipeline.ReminderSchedule == "" {
		cfg.Pipeline.ReminderSchedule = "@every 1m"
	}
	if cfg.Pipeline.ReminderWindow == 0 {
		cfg.Pipeline.ReminderWindow = 24 * time.Hour
	}
	if cfg.Pipeline.CodeTTL == 0 {
		cfg.Pipeline.CodeTTL = 5 * time.Minute
	}
	if cfg.Pipeline.TokenTTL == 0 {
		cfg.Pipeline.TokenTTL = 30 * time.Minute
	}
}

func validateConfig(cfg *Config) error {
	if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.DBName == "" {
		return fmt.Errorf("database configuration is incomplete")
	}

	if len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("at least one Kafka broker must be specified")
	}

	if cfg.Redis.Addr == "" {
		return fmt.Errorf("redis address must be specified")
	}

	if cfg.Slack.SigningSecret == "" {
		return fmt.Errorf("slack signing secret must be set")
	}
	if cfg.Slack.BotToken == "" {
		return fmt.Errorf("slack bot token must be set")
	}

	if cfg.LLM.APIKey == "" {
		return fmt.Errorf("llm api key must be set")
	}

	if _, err := time.LoadLocation(cfg.Pipeline.Timezone); err != nil {
		return fmt.Errorf("invalid pipeline timezone %q: %w", cfg.Pipeline.Timezone, err)
	}

	if cfg.Pipeline.DefaultDeadlineDays < 0 {
		return fmt.Errorf("default deadline days must not be negative")
	}

	return nil
}

func validateNotifierConfig(cfg *Config) error {
	if len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("at least one Kafka broker must be specified")
	}
	if cfg.Slack.BotToken == "" {
		return fmt.Errorf("slack bot token must be set")
	}
	if _, err := time.LoadLocation(cfg.Pipeline.Timezone); err != nil {
		return fmt.Errorf("invalid pipeline timezone %q: %w", cfg.Pipeline.Timezone, err)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "" || c.Env == "development" || c.Env == "local"
}

func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Pipeline.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
