package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"liyu1981.xyz/glucose-insights-service/pkg/common"
	"liyu1981.xyz/glucose-insights-service/pkg/db"
	"liyu1981.xyz/glucose-insights-service/pkg/glucose"
	glucoseHttp "liyu1981.xyz/glucose-insights-service/pkg/http"
	"liyu1981.xyz/glucose-insights-service/pkg/notify"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	glucoseDbType := os.Getenv(common.EnvKeyGlucoseDBType)
	switch glucoseDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown GLUCOSE_DB_TYPE: " + glucoseDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyGlucoseHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyGlucoseDefaultRate), 64); err != nil {
		log.Fatal("Invalid GLUCOSE_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyGlucoseDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid GLUCOSE_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	notifier, err := notify.NewShoutrrrNotifierFromEnv()
	if err != nil {
		log.Fatalf("Invalid GLUCOSE_NOTIFY_URLS: %v", err)
	}
	if notifier == nil {
		logger.Info("No notification URLs configured, alerts will only be stored")
	}

	engine := glucose.Engine{
		Db:     *dbInstance,
		Policy: glucose.PolicyFromEnv(),
	}
	engine.WithServices(glucose.ServiceOpts{
		Reading:    engine.GetIReading(),
		Threshold:  engine.GetIThreshold(),
		Alert:      engine.GetIAlert(),
		Analysis:   engine.GetIAnalysis(),
		Insight:    engine.GetIInsight(),
		Assignment: engine.GetIAssignment(),
	})
	if notifier != nil {
		engine.WithServices(glucose.ServiceOpts{Notifier: notifier})
	}

	// periodic alert sweep over all patients, same rule as the per-reading path
	sweepRaw := strings.TrimSpace(os.Getenv(common.EnvKeyGlucoseSweepInterval))
	if sweepRaw != "" {
		sweepInterval, err := time.ParseDuration(sweepRaw)
		if err != nil || sweepInterval <= 0 {
			log.Fatal("Invalid GLUCOSE_SWEEP_INTERVAL, should be a duration like 1h or 30m")
		}
		logger.Info("Starting alert sweep", zap.Duration("interval", sweepInterval))
		go func() {
			ticker := time.NewTicker(sweepInterval)
			defer ticker.Stop()
			for range ticker.C {
				if _, err := engine.Alert.SweepAllPatients(); err != nil {
					logger.Error("Alert sweep failed", zap.Error(err))
				}
			}
		}()
	}

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &glucoseHttp.RestfulServer{
		Server:           gin.Default(),
		Glucose:          &engine,
		RateLimiterStore: glucose.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
