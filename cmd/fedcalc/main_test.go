package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rpgo/fedcalc/internal/calculation"
	"github.com/rpgo/fedcalc/internal/config"
	"github.com/rpgo/fedcalc/internal/output"
	"github.com/rpgo/fedcalc/internal/ratelimit"
	"github.com/rpgo/fedcalc/internal/recorder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTSPCommandDefaults(t *testing.T) {
	out, err := execute(t, "tsp")
	require.NoError(t, err)
	assert.Contains(t, out, "TSP GROWTH PROJECTION")
	assert.Contains(t, out, "YEAR-BY-YEAR BALANCE:")
}

func TestFERSCommandFlags(t *testing.T) {
	out, err := execute(t, "pension", "--retirement-age", "40", "--format", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Not eligible for retirement")
}

func TestCalculatorCommandUnparseableFlagIsZero(t *testing.T) {
	out, err := execute(t, "tsp", "--current-age", "abc", "-f", "json")
	require.NoError(t, err)

	var decoded struct {
		Reports []struct {
			TSPInput struct {
				CurrentAge    int `json:"current_age"`
				RetirementAge int `json:"retirement_age"`
			} `json:"tsp_input"`
		} `json:"reports"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Reports, 1)
	assert.Equal(t, 0, decoded.Reports[0].TSPInput.CurrentAge)
	assert.Equal(t, 62, decoded.Reports[0].TSPInput.RetirementAge)
}

func TestCalculatorCommandUnknownFormat(t *testing.T) {
	_, err := execute(t, "roth", "--format", "pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
}

func TestInvalidMultiplier(t *testing.T) {
	_, err := execute(t, "fers", "--multiplier", "double")
	require.Error(t, err)
}

func TestEnhancedMultiplierFlag(t *testing.T) {
	out, err := execute(t, "fers", "--multiplier", "enhanced", "--retirement-age", "62", "--years-of-service", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "Pension Multiplier:     1.10%")
}

func TestCalculatorCommandWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roth.csv")
	out, err := execute(t, "roth", "--format", "detailed-csv", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Scenario,Account,Year,Age")
}

func TestExampleConfigAndRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	out, err := execute(t, "example-config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Example configuration written to "+path)

	cfg, err := config.NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, cfg.Scenarios)

	out, err = execute(t, "run", path, "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "Baseline TSP,tsp,Final Balance")
	assert.Contains(t, out, "Special Provisions Pension,fers,")
}

func TestRunMissingFile(t *testing.T) {
	_, err := execute(t, "run", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestUsageDBRecordsCLIRuns(t *testing.T) {
	db := filepath.Join(t.TempDir(), "usage.db")
	_, err := execute(t, "tsp", "--usage-db", db, "-f", "summary")
	require.NoError(t, err)
	_, err = execute(t, "fers", "--usage-db", db, "-f", "summary")
	require.NoError(t, err)

	rec, err := recorder.NewSQLiteRecorder(db, nil)
	require.NoError(t, err)
	defer rec.Close()
	counts, err := rec.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"tsp": 1, "fers": 1}, counts)
}

func TestNewLimiterFallsBackWithoutRedis(t *testing.T) {
	cfg := &config.ServerConfig{}
	cfg.RateLimit.Requests = 5
	cfg.RateLimit.Window = time.Minute
	cfg.RateLimit.RedisAddr = "127.0.0.1:1"

	l := newLimiter(context.Background(), cfg, calculation.NopLogger{})
	defer l.Close()
	_, ok := l.(*ratelimit.MemoryLimiter)
	assert.True(t, ok)

	cfg.RateLimit.RedisAddr = ""
	l2 := newLimiter(context.Background(), cfg, calculation.NopLogger{})
	defer l2.Close()
	_, ok = l2.(*ratelimit.MemoryLimiter)
	assert.True(t, ok)
}

func TestServeStopsOnCancel(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := config.LoadServerConfig("")
	require.NoError(t, err)
	cfg.Addr = "127.0.0.1:0"
	cfg.Recorder.SQLitePath = filepath.Join(t.TempDir(), "usage.db")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, serve(ctx, cfg))
}

func TestServeRejectsInvalidMultiplier(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := config.LoadServerConfig("")
	require.NoError(t, err)
	cfg.Calculation.Multiplier = "double"

	err = serve(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "calculation.multiplier")
}

func TestServeCommandValidatesMultiplierFlag(t *testing.T) {
	chdir(t, t.TempDir())
	_, err := execute(t, "serve", "--multiplier", "double")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown multiplier policy")
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
