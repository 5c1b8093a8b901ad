package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/everylingua/dealership-backend/agent"
	"github.com/everylingua/dealership-backend/api"
	"github.com/everylingua/dealership-backend/catalog"
	"github.com/everylingua/dealership-backend/crm"
	"github.com/everylingua/dealership-backend/gemini"
	"github.com/everylingua/dealership-backend/internal/o11y"
	"github.com/everylingua/dealership-backend/location"
	"github.com/everylingua/dealership-backend/notify"
	"github.com/everylingua/dealership-backend/otp"
)

var cli = struct {
	DatabaseURL string `name:"database-url" env:"DATABASE_URL"`
	Port        int    `name:"port" env:"PORT" default:"8080"`

	GeminiAPIKey string `name:"gemini-api-key" env:"GEMINI_API_KEY"`
	GeminiModel  string `name:"gemini-model" env:"GEMINI_MODEL" default:"gemini-2.0-flash-exp"`

	SMTPServer     string `name:"smtp-server" env:"SMTP_SERVER" default:"smtp.gmail.com"`
	SMTPPort       int    `name:"smtp-port" env:"SMTP_PORT" default:"587"`
	SenderEmail    string `name:"sender-email" env:"SENDER_EMAIL"`
	SenderPassword string `name:"sender-password" env:"SENDER_PASSWORD"`
	SMSAPIKey      string `name:"sms-api-key" env:"SMS_API_KEY"`

	GoogleMapsAPIKey string `name:"google-maps-api-key" env:"GOOGLE_MAPS_API_KEY"`

	RedisAddress  string `name:"redis-address" env:"REDIS_ADDRESS"`
	RedisPassword string `name:"redis-password" env:"REDIS_PASSWORD"`

	Auth0Domain string `name:"auth0-domain" env:"AUTH0_DOMAIN"`
	Audience    string `name:"audience" env:"AUDIENCE"`

	MetricsUsername string `name:"metrics-username" env:"METRICS_USERNAME"`
	MetricsPassword string `name:"metrics-password" env:"METRICS_PASSWORD"`

	StaticDir string `name:"static-dir" env:"STATIC_DIR" default:"web"`
	GinEnv    string `name:"gin-env" env:"GIN_ENV" default:"debug"`
}{}

func main() {
	if err := run(); err != nil {
		log.Fatalf("unexpected error: %v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	_ = godotenv.Load()
	kong.Parse(&cli)

	if cli.GinEnv == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	obs, cleanup, err := o11y.Setup(ctx)
	defer cleanup()
	if err != nil {
		return err
	}
	logger := obs.Logger

	// Bookings fall back to an in-process store when no database is
	// configured, which is how local development runs.
	var crmStore crm.Store = crm.NewMemoryStore()
	if cli.DatabaseURL != "" {
		db, err := sqlx.ConnectContext(ctx, "pgx", cli.DatabaseURL)
		if err != nil {
			return err
		}
		if err := db.PingContext(ctx); err != nil {
			return err
		}
		crmStore = crm.NewRepository(db)
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory booking store")
	}

	var otpStore otp.Store = otp.NewMemoryStore()
	if cli.RedisAddress != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cli.RedisAddress,
			Password: cli.RedisPassword,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis ping: %w", err)
		}
		otpStore = otp.NewRedisStore(rdb)
	}

	cat := catalog.New()
	mailer := notify.NewSMTPMailer(cli.SMTPServer, cli.SMTPPort, cli.SenderEmail, cli.SenderPassword, logger)
	sms := notify.NewLogSMSSender(cli.SMSAPIKey, logger)

	crmSvc := crm.NewService(crmStore, cat, mailer, sms, logger)
	otpSvc := otp.NewService(otpStore, mailer, sms, logger)
	assistant := gemini.NewHTTPClient(cli.GeminiAPIKey, cli.GeminiModel)
	geocoder := location.NewHTTPGeocoder(cli.GoogleMapsAPIKey)

	dispatcher := agent.NewDispatcher(logger)
	go dispatcher.Run(ctx)

	a, err := api.New(cat, crmSvc, assistant, otpSvc, dispatcher, geocoder, obs, api.Config{
		Auth0Domain:     cli.Auth0Domain,
		Audience:        cli.Audience,
		MetricsUsername: cli.MetricsUsername,
		MetricsPassword: cli.MetricsPassword,
		StaticDir:       cli.StaticDir,
	})
	if err != nil {
		return err
	}

	serv := http.Server{
		Addr:    fmt.Sprintf(":%d", cli.Port),
		Handler: a.Router(),
	}

	go func() {
		logger.Info("server listening", "port", cli.Port)
		if err := serv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return serv.Shutdown(ctx)
}
