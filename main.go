package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/wanderlist/wanderlist/internal/index"
	"github.com/wanderlist/wanderlist/internal/webserver"
	"github.com/wanderlist/wanderlist/internal/webserver/controller/auth"
	"github.com/wanderlist/wanderlist/internal/webserver/infrastructure"
	"github.com/wanderlist/wanderlist/internal/webserver/model"
)

var version string = "unknown"

func main() {
	var cfg Config

	if err := readConfig(&cfg); err != nil {
		logrus.Fatalf("Error parsing configuration: %s", err)
	}
	setupLogging(cfg)

	run(cfg, afero.NewOsFs())
}

// readConfig loads the file named by CONFIG_FILE when set. Environment variables override its values.
func readConfig(cfg *Config) error {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return cleanenv.ReadConfig(path, cfg)
	}
	return cleanenv.ReadEnv(cfg)
}

func setupLogging(cfg Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func run(cfg Config, appFs afero.Fs) {
	log := logrus.WithField("logger", "main")

	db := infrastructure.Connect(appFs, cfg.DatabaseURL)

	idx, err := index.NewMemOnly()
	if err != nil {
		log.Fatal(err)
	}
	defer idx.Close()

	start := time.Now()
	if err := idx.AddAll(&model.TravelIdeaRepository{DB: db}, cfg.BatchSize); err != nil {
		log.Fatal(err)
	}
	log.Infof("indexing finished, took %s", time.Since(start).Round(time.Millisecond))

	var sender webserver.Sender = &infrastructure.NoEmail{}
	if cfg.SmtpServer != "" && cfg.SmtpUser != "" && cfg.SmtpPassword != "" {
		sender = &infrastructure.SMTP{
			Server:   cfg.SmtpServer,
			Port:     cfg.SmtpPort,
			User:     cfg.SmtpUser,
			Password: cfg.SmtpPassword,
		}
	} else {
		log.Info("no SMTP server configured, invitation emails will not be sent")
	}

	var provider auth.Provider
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		provider = infrastructure.NewGoogle(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.OAuthRedirectURL)
	}

	webserverConfig := webserver.Config{
		Version:           version,
		FQDN:              cfg.FQDN,
		SecretKey:         []byte(cfg.SecretKey),
		TokenTimeout:      time.Duration(cfg.AccessTokenExpireMinutes) * time.Minute,
		SessionTimeout:    cfg.SessionTimeout,
		InvitationTimeout: cfg.InvitationTimeout,
		MinPasswordLength: cfg.MinPasswordLength,
		LoginRateLimit:    cfg.LoginRateLimit,
		LoginRateBurst:    cfg.LoginRateBurst,
	}

	controllers := webserver.SetupControllers(webserverConfig, db, idx, sender, provider)
	app := webserver.New(webserverConfig, controllers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("error shutting down")
		}
	}()

	log.Infof("Wanderlist version %s started listening on port %d", version, cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
