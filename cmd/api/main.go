package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"railmap.euroticket.org/internal/app"
	"railmap.euroticket.org/internal/appconf"
	"railmap.euroticket.org/internal/logging"
	"railmap.euroticket.org/internal/restapi"
	"railmap.euroticket.org/internal/tracker"
	"railmap.euroticket.org/timetabledb"
)

func main() {
	// Load .env into the environment so flags can default from it
	// (ignore if missing).
	_ = godotenv.Load()

	var cfg appconf.Config
	var envFlag string

	flag.IntVar(&cfg.Port, "port", envInt("PORT", 4000), "API server port")
	flag.StringVar(&envFlag, "env", envString("ENV", "development"), "Environment (development|test|production)")
	flag.StringVar(&cfg.DBPath, "db", envString("TIMETABLE_DB", "timetable.db"), "Path to the SQLite timetable database")
	flag.IntVar(&cfg.RateLimit, "rate-limit", envInt("RATE_LIMIT", -1), "Requests per second per client (-1 disables)")
	flag.Parse()

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	dbClient, err := timetabledb.NewClient(timetabledb.NewConfig(cfg.DBPath, cfg.Env, false))
	if err != nil {
		logger.Error("failed to open timetable database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer logging.SafeCloseWithLogging(dbClient, logger, "timetabledb")

	application := &app.Application{
		Config:  cfg,
		Logger:  logger,
		DB:      dbClient,
		Tracker: tracker.New(dbClient, logger),
	}

	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Handler(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
