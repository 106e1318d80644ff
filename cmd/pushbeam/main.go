// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

// Package main contains pushbeam main function to start the push relay service.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	"github.com/pushbeam/pushbeam/internal"
	clientsredis "github.com/pushbeam/pushbeam/internal/clients/redis"
	"github.com/pushbeam/pushbeam/internal/server"
	httpserver "github.com/pushbeam/pushbeam/internal/server/http"
	pblog "github.com/pushbeam/pushbeam/logger"
	"github.com/pushbeam/pushbeam/pkg/uuid"
	"github.com/pushbeam/pushbeam/subscriptions"
	"github.com/pushbeam/pushbeam/subscriptions/api"
	subsredis "github.com/pushbeam/pushbeam/subscriptions/redis"
	"github.com/pushbeam/pushbeam/subscriptions/tracing"
	"github.com/pushbeam/pushbeam/subscriptions/webpush"
)

const (
	svcName        = "pushbeam"
	envPrefixHTTP  = "PB_HTTP_"
	envPrefixVAPID = "PB_"
	defSvcHTTPPort = "9024"
)

type config struct {
	LogLevel     string        `env:"PB_LOG_LEVEL"        envDefault:"info"`
	RedisURL     string        `env:"PB_REDIS_URL"        envDefault:"redis://localhost:6379/0"`
	RedisTimeout time.Duration `env:"PB_REDIS_TIMEOUT"    envDefault:"30s"`
	InstanceID   string        `env:"PB_INSTANCE_ID"      envDefault:""`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	// Values from a local .env file complement the environment.
	_ = godotenv.Load()

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err)
	}

	logger, err := pblog.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %s", err)
	}
	var exitCode int
	defer pblog.ExitWithError(&exitCode)

	if cfg.InstanceID == "" {
		if cfg.InstanceID, err = uuid.New().ID(); err != nil {
			logger.Error(fmt.Sprintf("failed to generate instanceID: %s", err))
			exitCode = 1
			return
		}
	}

	notify := func(err error, next time.Duration) {
		logger.Warn(fmt.Sprintf("Redis connection failed, retrying in %s : %s", next, err))
	}
	redisClient, err := clientsredis.Connect(ctx, cfg.RedisURL, cfg.RedisTimeout, notify)
	if err != nil {
		if redisClient == nil {
			logger.Error(fmt.Sprintf("failed to connect to redis: %s", err))
			exitCode = 1
			return
		}
		// The client redials on demand; serve and report the store as down.
		logger.Warn(fmt.Sprintf("redis unreachable at startup: %s", err))
	}
	defer redisClient.Close()

	webpushConfig := webpush.Config{}
	if err := env.ParseWithOptions(&webpushConfig, env.Options{Prefix: envPrefixVAPID}); err != nil {
		logger.Error(fmt.Sprintf("failed to load VAPID configuration : %s", err))
		exitCode = 1
		return
	}

	svc := newService(redisClient, webpushConfig, logger)

	httpServerConfig := server.Config{Port: defSvcHTTPPort}
	if err := env.ParseWithOptions(&httpServerConfig, env.Options{Prefix: envPrefixHTTP}); err != nil {
		logger.Error(fmt.Sprintf("failed to load %s HTTP server configuration : %s", svcName, err))
		exitCode = 1
		return
	}

	httpSvr := httpserver.New(ctx, cancel, svcName, httpServerConfig, api.MakeHandler(svc, logger, cfg.InstanceID), logger)

	g.Go(func() error {
		return httpSvr.Start()
	})

	g.Go(func() error {
		return server.StopSignalHandler(ctx, cancel, logger, svcName, httpSvr)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("%s service terminated: %s", svcName, err))
	}
}

func newService(client *redis.Client, webpushConfig webpush.Config, logger *slog.Logger) subscriptions.Service {
	repo := subsredis.NewRepository(client)
	repo = tracing.New(repo, otel.Tracer(svcName))

	notifier := webpush.New(webpushConfig)

	svc := subscriptions.New(repo, uuid.New(), notifier, logger)
	svc = api.LoggingMiddleware(svc, logger)
	counter, latency := internal.MakeMetrics(svcName, "api")
	svc = api.MetricsMiddleware(svc, counter, latency)

	return svc
}
