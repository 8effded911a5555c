package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"todoapi/internal/handlers"
	"todoapi/internal/logger"
	"todoapi/internal/repository"
	"todoapi/internal/repository/db"
	"todoapi/internal/server"
	"todoapi/internal/service"
	"todoapi/internal/token"
)

const defaultTokenTTLHours = 24

func main() {
	// load config.yml first so the log level comes from configuration
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(viper.GetString("log.level"))

	// open DB
	sqlDB, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// signing secret is loaded once; rotating it invalidates every
	// outstanding token
	secret := viper.GetString("jwt.secret")
	if secret == "" {
		log.Fatalw("jwt.secret must be set in config")
	}
	ttl := time.Duration(viper.GetInt("jwt.ttl_hours")) * time.Hour
	if ttl <= 0 {
		ttl = defaultTokenTTLHours * time.Hour
	}
	tokens := token.NewService(secret, ttl)

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, tokens)
	apiHandler := handlers.NewHandler(services, tokens, log, sqlDB)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "todo.db")
		dbPath = "todo.db"
	}
	return db.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		router := handler.InitRoutes(viper.GetStringSlice("cors.allow_origins"))
		if err := srv.Run(port, router); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
