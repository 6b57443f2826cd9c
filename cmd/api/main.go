package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	"app/internal/infra/realtime"
	infraRepo "app/internal/infra/repository"
	"app/internal/observability"
	"app/internal/paystack"
	"app/internal/server"
	"app/internal/usecase"
	auth "app/internal/usecase/auth_usecase"
	"app/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(userID int64, role model.Role, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	logger.New(logger.Options{
		Service: cfg.OTELServiceName,
		Env:     cfg.GoEnv,
		Level:   cfg.LogLevel,
	})

	ctx := context.Background()

	metrics, meterProvider, err := observability.Init(ctx, cfg)
	if err != nil {
		slog.Error("metrics init failed", "err", err)
		os.Exit(1)
	}
	if meterProvider != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := meterProvider.Shutdown(shutdownCtx); err != nil {
				slog.Error("meter provider shutdown failed", "err", err)
			}
		}()
	}

	gormDB, err := db.Connect()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.Migrate(gormDB); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	// repositories
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	artworkRepo := infraRepo.NewArtworkGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	walletRepo := infraRepo.NewWalletGormRepository(gormDB)
	notificationRepo := infraRepo.NewNotificationGormRepository(gormDB)
	stepRepo := infraRepo.NewCompletionStepGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	// shared adapters
	idGen := &uuidGenerator{}
	clock := &realClock{}
	issuer := &jwtIssuer{secret: []byte(cfg.JWTSecret), accessTTL: 15 * time.Minute}
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()
	gateway := paystack.NewClient(cfg.PaystackBaseURL, cfg.PaystackSecretKey)
	publisher := realtime.NewRedisPublisher(realtime.NewRedisClient(cfg.RedisAddr))

	// usecases
	registerUC := auth.NewRegisterUsecase(userRepo, hasher, clock)
	loginUC := auth.NewLoginUsecase(userRepo, verifier, issuer, clock)
	artworkUC := usecase.NewArtworkUsecase(artworkRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, cartItemRepo, artworkRepo)
	checkoutUC := usecase.NewCheckoutUsecase(txManager, userRepo, gateway, idGen)
	walletUC := usecase.NewWalletUsecase(walletRepo, idGen)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo, publisher, metrics)
	completionUC := usecase.NewCompletionUsecase(walletRepo, stepRepo, cartRepo, notificationUC, metrics)
	finalizer := usecase.NewOrderFinalizer(orderRepo, orderItemRepo, completionUC, notificationUC, cfg.SupportPhone, metrics)

	// handlers
	h := server.Handlers{
		Auth:         handler.NewAuthHandler(registerUC, loginUC),
		Artworks:     handler.NewArtworkHandler(artworkUC),
		Cart:         handler.NewCartHandler(cartUC),
		Checkout:     handler.NewCheckoutHandler(checkoutUC, cfg.PaystackPublicKey),
		Wallet:       handler.NewWalletHandler(walletUC),
		Notification: handler.NewNotificationHandler(notificationUC),
		Webhook:      handler.NewWebhookHandler(cfg, finalizer, metrics),
	}

	addr := ":" + cfg.Port
	slog.Info("server starting", "addr", addr)
	if err := server.Start(addr, cfg, h); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
