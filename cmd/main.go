package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mentoria-raiz/inscricoes/api"
	"github.com/mentoria-raiz/inscricoes/auth"
	"github.com/mentoria-raiz/inscricoes/mercadopago"
	"github.com/mentoria-raiz/inscricoes/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	// A missing .env is fine; real deployments set the environment.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	settings, err := getSettingsFromEnv()
	if err != nil {
		logger.Error("Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(settings.MongoURI))
	if err != nil {
		logger.Error("Failed to connect to mongo", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		_ = client.Disconnect(ctx)
	}()

	if err := client.Ping(ctx, nil); err != nil {
		logger.Error("Failed to ping mongo", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db := mongodb.NewDB(client.Database(settings.MongoDatabase))
	if err := db.EnsureIndexes(ctx); err != nil {
		logger.Error("Failed to ensure indexes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	payments := mercadopago.NewClient(settings.MercadoPagoAccessToken)
	emailSender := createEmailSender(logger, settings)
	signer := auth.NewTokenSigner([]byte(settings.JWTSecret))

	a := api.NewAPI(
		db,
		payments,
		emailSender,
		signer,
		logger,
		settings.Env,
		settings.SiteBaseURL,
		settings.EmailFrom,
	)

	s := &http.Server{
		Handler: a.Handler(),
		Addr:    net.JoinHostPort(settings.Host, settings.Port),
	}

	logger.Info("Server listening", slog.String("addr", s.Addr))
	if err := s.ListenAndServe(); err != nil {
		logger.Error("Server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

type Settings struct {
	Host string
	Port string
	Env  api.Environment

	MongoURI      string
	MongoDatabase string

	JWTSecret              string
	MercadoPagoAccessToken string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	SiteBaseURL string
	EmailFrom   string
}

func getSettingsFromEnv() (Settings, error) {
	var missing []string
	mustEnv := func(key string) string {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			missing = append(missing, key)
		}
		return v
	}

	settings := Settings{
		Host:                   getEnvOrDefault("HOST", "0.0.0.0"),
		Port:                   getEnvOrDefault("PORT", "5000"),
		MongoURI:               mustEnv("MONGODB_URI"),
		MongoDatabase:          getEnvOrDefault("MONGO_DATABASE", "mentoria-raiz"),
		JWTSecret:              mustEnv("JWT_SECRET"),
		MercadoPagoAccessToken: mustEnv("MERCADO_PAGO_ACCESS_TOKEN"),
		SMTPHost:               getEnvOrDefault("SMTP_HOST", ""),
		SMTPUser:               getEnvOrDefault("SMTP_USER", ""),
		SMTPPass:               getEnvOrDefault("SMTP_PASS", ""),
		SiteBaseURL:            getEnvOrDefault("SITE_BASE_URL", "https://mentoriaraiz.com.br"),
	}

	smtpPort, err := strconv.Atoi(getEnvOrDefault("SMTP_PORT", "587"))
	if err != nil {
		return Settings{}, fmt.Errorf("SMTP_PORT is not a number: %w", err)
	}
	settings.SMTPPort = smtpPort

	switch env := getEnvOrDefault("ENV", "local"); env {
	case "local":
		settings.Env = api.LOCAL
	case "prod":
		settings.Env = api.PROD
	default:
		return Settings{}, fmt.Errorf("unknown ENV value: %q", env)
	}

	settings.EmailFrom = fmt.Sprintf("Mentoria Raiz <%s>", settings.SMTPUser)

	if len(missing) > 0 {
		return Settings{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return settings, nil
}

func getEnvOrDefault(key string, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return defaultVal
}
