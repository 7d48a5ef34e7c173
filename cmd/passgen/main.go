package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/handler"
	"github.com/vaultpass/passgen-go/internal/output"
	"github.com/vaultpass/passgen-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := config.Load()

	genService := service.NewGeneratorService()
	genHandler := handler.NewGeneratorHandler(genService, cfg, output.NewClipboardSink())

	if err := genHandler.Command().Execute(); err != nil {
		handler.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
