package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/plebtools/plebtools/internal/config"
	"github.com/plebtools/plebtools/internal/db"
	"github.com/plebtools/plebtools/internal/repository"
	"github.com/plebtools/plebtools/internal/service"
)

type App struct {
	Cfg             *config.Config
	DB              *sqlx.DB
	AuthService     *service.AuthService
	EmailService    *service.EmailService
	PurchaseService *service.PurchaseService
	WalletService   *service.WalletService
	TradeService    *service.TradeService
	SyncService     *service.SyncService
}

func New(cfg *config.Config) (*App, error) {
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	purchaseRepository := repository.NewPurchaseRepository(database)
	walletRepository := repository.NewWalletAddressRepository(database)
	tradeRepository := repository.NewTradeRepository(database)
	syncRepository := repository.NewSyncRepository(database)

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.ResendAudienceID,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(
		userRepository,
		emailService,
		cfg.SessionSecret,
		cfg.SessionExpiry,
		cfg.IsProduction(),
	)
	purchaseService := service.NewPurchaseService(purchaseRepository)
	walletService := service.NewWalletService(walletRepository)
	tradeService := service.NewTradeService(tradeRepository)
	syncService := service.NewSyncService(syncRepository)

	return &App{
		Cfg:             cfg,
		DB:              database,
		AuthService:     authService,
		EmailService:    emailService,
		PurchaseService: purchaseService,
		WalletService:   walletService,
		TradeService:    tradeService,
		SyncService:     syncService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
