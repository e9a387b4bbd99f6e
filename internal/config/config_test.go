package config

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/ArowuTest/luckygen/internal/filters"
	"github.com/ArowuTest/luckygen/internal/generator"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_SSLMODE", "HISTORY_SOURCE", "HISTORY_FILE", "LOG_LEVEL", "HISTORY_LOAD_TIMEOUT", "DATABASE_ENABLED", "ACTIVE_FILTERS"} {
		t.Setenv(k, "")
	}
	cfg := Load(quietLogger())

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, HistoryFromFile, cfg.HistorySource)
	assert.Equal(t, "draws.json", cfg.HistoryFile)
	assert.Equal(t, 10*time.Second, cfg.HistoryLoadTimeout)
	assert.True(t, cfg.DBEnabled)
	assert.Equal(t, generator.DefaultSettings(), cfg.Generator)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("HISTORY_SOURCE", "DB")
	t.Setenv("HISTORY_LOAD_TIMEOUT", "3s")
	t.Setenv("DATABASE_ENABLED", "true")
	t.Setenv("MAX_ATTEMPTS", "10000")
	t.Setenv("UNIQUE_ACROSS_BATCH", "false")
	t.Setenv("SUM_MIN", "120")
	t.Setenv("MAX_LAST_DRAW_OVERLAP", "4")
	t.Setenv("ACTIVE_FILTERS", "sum, parity ,run")

	cfg := Load(quietLogger())
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, HistoryFromDB, cfg.HistorySource)
	assert.Equal(t, 3*time.Second, cfg.HistoryLoadTimeout)
	assert.Equal(t, 10000, cfg.Generator.MaxAttempts)
	assert.False(t, cfg.Generator.UniqueAcrossBatch)
	assert.Equal(t, 120, cfg.Generator.Filters.SumMin)
	assert.Equal(t, 4, cfg.Generator.Filters.MaxLastDrawOverlap)
	assert.Equal(t, []string{filters.NameSum, filters.NameParity, filters.NameRun}, cfg.Generator.Filters.Active)
}

func TestDBHistoryNeedsDatabase(t *testing.T) {
	t.Setenv("HISTORY_SOURCE", "db")
	t.Setenv("DATABASE_ENABLED", "false")

	cfg := Load(quietLogger())
	assert.Equal(t, HistoryFromFile, cfg.HistorySource)
}

func TestGeneratorSettingsFallBackOnBadValues(t *testing.T) {
	t.Setenv("MAX_ATTEMPTS", "lots")
	assert.Equal(t, generator.DefaultSettings().MaxAttempts, LoadGeneratorSettings(quietLogger()).MaxAttempts)

	// parseable but out of range: whole settings revert
	t.Setenv("MAX_ATTEMPTS", "50000")
	t.Setenv("SUM_MIN", "100")
	s := LoadGeneratorSettings(quietLogger())
	assert.Equal(t, generator.DefaultSettings(), s)

	t.Setenv("MAX_ATTEMPTS", "")
	t.Setenv("SUM_MIN", "")
	t.Setenv("ACTIVE_FILTERS", "sum,astrology")
	assert.Equal(t, generator.DefaultSettings(), LoadGeneratorSettings(quietLogger()))
}

func TestActiveFiltersNone(t *testing.T) {
	t.Setenv("ACTIVE_FILTERS", "none")
	assert.Empty(t, LoadGeneratorSettings(quietLogger()).Filters.Active)
}
