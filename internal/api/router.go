package api

import (
	"net/http"
	"time"

	"github.com/N1ghtSe7en/hellomint-main/internal/config"
	"github.com/N1ghtSe7en/hellomint-main/internal/handler"
	"github.com/N1ghtSe7en/hellomint-main/internal/session"
	"github.com/N1ghtSe7en/hellomint-main/near"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter() (http.Handler, error) {
	cfg := config.Get()

	store := session.NewStore(time.Duration(cfg.SessionTTL) * time.Minute)
	notifications := session.NewNotificationStore(time.Duration(cfg.NotificationTTL) * time.Second)
	connector := session.NewWalletConnector(store, config.GetWalletFilePath(), config.GetWalletPasswordBytes)

	minter := near.NewService()

	pages, err := handler.NewPageHandler(connector, minter, notifications, config.GetNetworkID())
	if err != nil {
		return nil, err
	}
	apiHandler := handler.NewAPIHandler(connector, minter, config.GetNetworkID(), config.GetWalletFilePath(), config.GetWalletPasswordBytes)

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Pages
	mux.HandleFunc("/", pages.Index)
	mux.HandleFunc("/login", pages.Login)
	mux.HandleFunc("/logout", pages.Logout)
	mux.HandleFunc("/mint", pages.Mint)
	mux.HandleFunc("/qr.png", pages.AccountQR)

	// JSON API
	mux.HandleFunc("/api/generate", apiHandler.Generate)
	mux.HandleFunc("/api/balance", apiHandler.GetBalance)
	mux.HandleFunc("/api/mint", apiHandler.Mint)

	return mux, nil
}
