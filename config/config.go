package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/SoyPhilips/BalanceAI-Pro/models"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" env-default:":8080"`
	DB       DBConfig
	Auth     AuthConfig
	Gemini   GeminiConfig
	S3       S3Config
	Log      LogConfig
}

type DBConfig struct {
	URL      string `env:"DATABASE_URL"`
	Host     string `env:"DB_HOST" env-default:"localhost"`
	User     string `env:"DB_USER" env-default:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" env-default:"balanceai"`
	Port     string `env:"DB_PORT" env-default:"5432"`
}

// DSN prefers DATABASE_URL and otherwise builds one from the DB_* parts.
func (d DBConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		d.Host, d.User, d.Password, d.Name, d.Port)
}

type AuthConfig struct {
	JWTSecret string `env:"JWT_SECRET" env-required:"true"`
}

type GeminiConfig struct {
	APIKey  string        `env:"GOOGLE_API_KEY"`
	BaseURL string        `env:"GEMINI_BASE_URL" env-default:"https://generativelanguage.googleapis.com/v1beta"`
	Models  []string      `env:"GEMINI_MODELS" env-separator:","`
	Timeout time.Duration `env:"ANALYSIS_TIMEOUT" env-default:"60s"`
}

// ModelList returns the configured models with blanks dropped.
func (g GeminiConfig) ModelList() []string {
	var out []string
	for _, m := range g.Models {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	return out
}

// S3Config enables the meal photo archive when Bucket is set.
type S3Config struct {
	Region    string `env:"AWS_REGION" env-default:"us-east-1"`
	Bucket    string `env:"S3_BUCKET"`
	PublicURL string `env:"S3_PUBLIC_URL"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"json"`
}

// Load reads an optional .env file into the environment, then the typed
// config from the environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	return &cfg, nil
}

// OpenDB connects to Postgres, retrying with capped exponential backoff.
func OpenDB(dsn string, log logrus.FieldLogger, attempts int) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	for i := 1; i <= attempts; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if err = sqlDB.Ping(); err == nil {
					log.WithField("attempt", i).Info("database connected")
					return db, nil
				}
			} else {
				err = dbErr
			}
		}

		log.WithError(err).WithField("attempt", i).Warn("database connection failed")
		if i == attempts {
			break
		}
		wait := time.Duration(1<<uint(i-1)) * time.Second
		if wait > 10*time.Second {
			wait = 10 * time.Second
		}
		time.Sleep(wait)
	}
	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Profile{},
		&models.FoodLogEntry{},
		&models.Food{},
		&models.Recipe{},
	)
}
