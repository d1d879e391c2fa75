package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store drivers
const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

type Config struct {
	App    AppConfig
	Store  StoreConfig
	DB     DBConfig
	Redis  RedisConfig
	JWT    JWTConfig
	Events EventsConfig
	Seed   SeedConfig
	Jobs   JobsConfig
}

type AppConfig struct {
	Port       string
	Env        string
	CORSOrigin string
}

type StoreConfig struct {
	Driver     string
	DataDir    string
	SQLitePath string
}

// UsesDatabase reports whether entities live in a gorm-backed database
func (c StoreConfig) UsesDatabase() bool {
	return c.Driver == StoreDriverPostgres || c.Driver == StoreDriverSQLite
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	TimeZone string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type EventsConfig struct {
	Buffer       int
	ActivityLog  bool
	RedisChannel string
	KafkaBrokers []string
	KafkaTopic   string
}

type SeedConfig struct {
	DefaultUsers bool
}

// JobsConfig holds cron specs; an empty spec disables the job.
type JobsConfig struct {
	TokenSweep         string
	AppointmentMetrics string
}

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom reads path when it exists; environment variables always win.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	accessExpiry, err := time.ParseDuration(v.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(v.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:       v.GetString("APP_PORT"),
			Env:        v.GetString("APP_ENV"),
			CORSOrigin: v.GetString("APP_CORS_ORIGIN"),
		},
		Store: StoreConfig{
			Driver:     strings.ToLower(v.GetString("STORE_DRIVER")),
			DataDir:    v.GetString("DATA_DIR"),
			SQLitePath: v.GetString("SQLITE_PATH"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			TimeZone: v.GetString("DB_TIMEZONE"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        v.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Events: EventsConfig{
			Buffer:       v.GetInt("EVENT_BUFFER"),
			ActivityLog:  v.GetBool("EVENT_ACTIVITY_LOG"),
			RedisChannel: v.GetString("EVENT_REDIS_CHANNEL"),
			KafkaBrokers: splitList(v.GetString("KAFKA_BROKERS")),
			KafkaTopic:   v.GetString("KAFKA_TOPIC"),
		},
		Seed: SeedConfig{
			DefaultUsers: v.GetBool("SEED_DEFAULT_USERS"),
		},
		Jobs: JobsConfig{
			TokenSweep:         v.GetString("JOB_TOKEN_SWEEP"),
			AppointmentMetrics: v.GetString("JOB_APPOINTMENT_METRICS"),
		},
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_CORS_ORIGIN", "*")
	v.SetDefault("STORE_DRIVER", StoreDriverFile)
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("SQLITE_PATH", "hospital.db")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("EVENT_BUFFER", 256)
	v.SetDefault("EVENT_ACTIVITY_LOG", true)
	v.SetDefault("EVENT_REDIS_CHANNEL", "hospital.events")
	v.SetDefault("KAFKA_TOPIC", "hospital-events")
	v.SetDefault("SEED_DEFAULT_USERS", true)
	v.SetDefault("JOB_TOKEN_SWEEP", "@every 10m")
	v.SetDefault("JOB_APPOINTMENT_METRICS", "@every 1m")
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
