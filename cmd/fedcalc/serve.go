package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/fedcalc/internal/calculation"
	"github.com/rpgo/fedcalc/internal/config"
	"github.com/rpgo/fedcalc/internal/ratelimit"
	"github.com/rpgo/fedcalc/internal/recorder"
	"github.com/rpgo/fedcalc/internal/scheduler"
	"github.com/rpgo/fedcalc/internal/web"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadServerConfig(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("multiplier") || cfg.Calculation.Multiplier == "" {
				cfg.Calculation.Multiplier = opts.multiplier
			}
			if opts.verbose {
				cfg.Log.Verbose = true
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "fedcalc.yaml", "server configuration file")
	return cmd
}

// serve wires the server's dependencies from cfg and blocks until ctx is
// cancelled.
func serve(ctx context.Context, cfg *config.ServerConfig) error {
	logger := calculation.NewStdLogger(cfg.Log.Verbose)
	if !cfg.Log.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	// Flags may have overridden the loaded settings.
	if err := cfg.Validate(); err != nil {
		return err
	}
	policy := cfg.MultiplierPolicy()
	engine := calculation.NewCalculationEngine()
	engine.Policy = policy
	engine.SetLogger(logger)

	limiter := newLimiter(ctx, cfg, logger)
	defer limiter.Close()

	var rec recorder.Recorder
	if cfg.Recorder.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Recorder.SQLitePath, logger)
		if err != nil {
			logger.Warnf("init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}
	defer rec.Close()

	sched := scheduler.NewScheduler(ctx, rec, cfg.Recorder.Retention, logger)
	if err := sched.RegisterAll(cfg.Recorder.PruneCron); err != nil {
		return fmt.Errorf("register cron tasks: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	logger.Infof("fedcalc serving with %s multiplier, %d requests per %s", policy, cfg.RateLimit.Requests, cfg.RateLimit.Window)
	return web.NewServer(engine, limiter, rec, logger).Run(ctx, cfg.Addr)
}

// newLimiter returns a Redis-backed limiter when an address is configured
// and reachable, otherwise an in-process one.
func newLimiter(ctx context.Context, cfg *config.ServerConfig, logger calculation.Logger) ratelimit.Limiter {
	if cfg.RateLimit.RedisAddr != "" {
		rl := ratelimit.NewRedisLimiter(cfg.RateLimit.RedisAddr, cfg.RateLimit.Requests, cfg.RateLimit.Window)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		err := rl.Ping(pingCtx)
		if err == nil {
			logger.Infof("rate limiting through redis at %s", cfg.RateLimit.RedisAddr)
			return rl
		}
		logger.Warnf("redis unavailable, using in-memory rate limiter: %v", err)
		rl.Close()
	}
	return ratelimit.NewMemoryLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
}
