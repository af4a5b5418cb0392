package main

import (
	"net/http"

	"github.com/N1ghtSe7en/hellomint-main/internal/api"
	"github.com/N1ghtSe7en/hellomint-main/internal/config"
	"github.com/N1ghtSe7en/hellomint-main/internal/log"

	_ "github.com/N1ghtSe7en/hellomint-main/docs"

	"go.uber.org/zap"
)

// @title        hellomint API
// @version      1.0
// @description  Local NEAR NFT minting demo: a wallet-gated page with a single mint button
// @BasePath     /
func main() {
	if err := config.Init(); err != nil {
		panic(err)
	}
	log.NewLogger(config.Get().Debug)

	// The wallet password is held in memory for the lifetime of the process;
	// it unlocks the credentials file on sign-in and on every mint.
	if err := config.PromptForPassword(); err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to read wallet password")
	}

	router, err := api.SetupRouter()
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to set up router")
	}

	zap.L().Info("Listening on :" + config.GetPort())
	if err := http.ListenAndServe(":"+config.GetPort(), router); err != nil {
		zap.L().With(zap.Error(err)).Fatal("Server stopped")
	}
}
