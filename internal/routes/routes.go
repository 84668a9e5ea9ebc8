package routes

import (
	"io/fs"
	"net/http"

	"github.com/plebtools/plebtools/internal/app"
	"github.com/plebtools/plebtools/internal/handler"
	"github.com/plebtools/plebtools/internal/middleware"
	"github.com/plebtools/plebtools/web"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService)
	purchases := handler.NewPurchaseHandler(app.PurchaseService)
	wallets := handler.NewWalletHandler(app.WalletService)
	trades := handler.NewTradeHandler(app.TradeService)
	sync := handler.NewSyncHandler(app.SyncService)

	pagesFS, _ := fs.Sub(web.PagesFS, "pages")
	pages := handler.NewPagesHandler(pagesFS)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("POST /api/register", auth.Register)
	mux.HandleFunc("POST /api/login", auth.Login)
	mux.HandleFunc("POST /api/logout", auth.Logout)
	mux.HandleFunc("POST /api/verify", auth.VerifyEmail)

	// Static calculator pages, each alias with and without the .html suffix
	for alias, file := range handler.Routes() {
		mux.HandleFunc("GET "+alias, pages.Serve(file))
	}

	// ============================================================================
	// SESSION-GATED ROUTES
	// ============================================================================

	mux.HandleFunc("GET /api/user", middleware.RequireAuth(auth.CurrentUser))

	mux.HandleFunc("GET /api/btc-purchases", middleware.RequireAuth(purchases.List))
	mux.HandleFunc("POST /api/btc-purchases", middleware.RequireAuth(purchases.Create))
	mux.HandleFunc("DELETE /api/btc-purchases/{id}", middleware.RequireAuth(purchases.Delete))

	mux.HandleFunc("GET /api/wallet-addresses", middleware.RequireAuth(wallets.List))
	mux.HandleFunc("POST /api/wallet-addresses", middleware.RequireAuth(wallets.Create))
	mux.HandleFunc("DELETE /api/wallet-addresses/{id}", middleware.RequireAuth(wallets.Delete))

	mux.HandleFunc("POST /api/sync-data", middleware.RequireAuth(sync.Sync))

	mux.HandleFunc("GET /api/covered-call-trades", middleware.RequireAuth(trades.List))
	mux.HandleFunc("POST /api/covered-call-trades", middleware.RequireAuth(trades.Create))
	mux.HandleFunc("DELETE /api/covered-call-trades/{id}", middleware.RequireAuth(trades.Delete))

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.RequestLogging,
		middleware.Session(app.AuthService),
	)
}
