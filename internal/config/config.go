package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ArowuTest/luckygen/internal/generator"
)

// History sources.
const (
	HistoryFromFile = "file"
	HistoryFromDB   = "db"
)

// AppConfig holds all environment variables.
type AppConfig struct {
	Port        string
	DBEnabled   bool
	DBHost      string
	DBPort      string
	DBUser      string
	DBName      string
	DBPassword  string
	DBSSLMode   string
	JWTSecret   string
	FrontendURL string
	LogLevel    string

	HistorySource      string
	HistoryFile        string
	HistoryLoadTimeout time.Duration

	Generator generator.Settings
}

// Load reads environment variables (and .env if present). Malformed numbers
// keep their defaults and are reported through lg.
func Load(lg logrus.FieldLogger) *AppConfig {
	_ = godotenv.Load()

	env := envReader{log: lg}
	cfg := &AppConfig{
		Port:        os.Getenv("PORT"),
		DBEnabled:   env.boolean("DATABASE_ENABLED", true),
		DBHost:      os.Getenv("DB_HOST"),
		DBPort:      os.Getenv("DB_PORT"),
		DBUser:      os.Getenv("DB_USER"),
		DBName:      os.Getenv("DB_NAME"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBSSLMode:   os.Getenv("DB_SSLMODE"),
		JWTSecret:   os.Getenv("JWT_SECRET_KEY"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
		LogLevel:    os.Getenv("LOG_LEVEL"),

		HistorySource:      strings.ToLower(os.Getenv("HISTORY_SOURCE")),
		HistoryFile:        os.Getenv("HISTORY_FILE"),
		HistoryLoadTimeout: env.duration("HISTORY_LOAD_TIMEOUT", 10*time.Second),

		Generator: LoadGeneratorSettings(lg),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBSSLMode == "" {
		cfg.DBSSLMode = "disable"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = "draws.json"
	}
	switch cfg.HistorySource {
	case HistoryFromFile, HistoryFromDB:
	case "":
		cfg.HistorySource = HistoryFromFile
	default:
		lg.WithField("HISTORY_SOURCE", cfg.HistorySource).Warn("unknown history source, using file")
		cfg.HistorySource = HistoryFromFile
	}
	if cfg.HistorySource == HistoryFromDB && !cfg.DBEnabled {
		lg.Warn("HISTORY_SOURCE=db needs the database, using file")
		cfg.HistorySource = HistoryFromFile
	}
	return cfg
}

// LoadGeneratorSettings overlays generator and filter thresholds from the
// environment on top of the defaults.
func LoadGeneratorSettings(lg logrus.FieldLogger) generator.Settings {
	env := envReader{log: lg}
	s := generator.DefaultSettings()

	s.MaxAttempts = env.integer("MAX_ATTEMPTS", s.MaxAttempts)
	s.FrequencyThreshold = env.integer("FREQUENCY_THRESHOLD", s.FrequencyThreshold)
	s.BatchSize = env.integer("BATCH_SIZE", s.BatchSize)
	s.MaxBatchSize = env.integer("MAX_BATCH_SIZE", s.MaxBatchSize)
	s.UniqueAcrossBatch = env.boolean("UNIQUE_ACROSS_BATCH", s.UniqueAcrossBatch)

	f := &s.Filters
	f.SumMin = env.integer("SUM_MIN", f.SumMin)
	f.SumMax = env.integer("SUM_MAX", f.SumMax)
	f.PrimeMin = env.integer("PRIME_MIN", f.PrimeMin)
	f.PrimeMax = env.integer("PRIME_MAX", f.PrimeMax)
	f.MinQuadrants = env.integer("MIN_QUADRANTS", f.MinQuadrants)
	f.MaxPerQuadrant = env.integer("MAX_PER_QUADRANT", f.MaxPerQuadrant)
	f.MaxPerRow = env.integer("MAX_PER_ROW", f.MaxPerRow)
	f.RunWindow = env.integer("RUN_WINDOW", f.RunWindow)
	f.MinDistinctEndings = env.integer("MIN_DISTINCT_ENDINGS", f.MinDistinctEndings)
	f.MaxLastDrawOverlap = env.integer("MAX_LAST_DRAW_OVERLAP", f.MaxLastDrawOverlap)
	if v := os.Getenv("ACTIVE_FILTERS"); v != "" {
		f.Active = splitList(v)
	}

	if err := s.Validate(); err != nil {
		lg.WithError(err).Warn("generator settings from environment rejected, using defaults")
		return generator.DefaultSettings()
	}
	return s
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 1 && out[0] == "none" {
		return []string{}
	}
	return out
}

type envReader struct {
	log logrus.FieldLogger
}

func (e envReader) integer(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		e.log.WithField(key, v).Warn("not an integer, keeping default")
		return def
	}
	return n
}

func (e envReader) boolean(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		e.log.WithField(key, v).Warn("not a boolean, keeping default")
		return def
	}
	return b
}

func (e envReader) duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil || d <= 0 {
		e.log.WithField(key, v).Warn("not a positive duration, keeping default")
		return def
	}
	return d
}

// InitDB opens the postgres connection with a detailed gorm logger.
func InitDB(c *AppConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return db, nil
}
