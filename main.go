package main

import (
	"os"
	"os/signal"
	"syscall"

	"liamandmia.wedding/configs"
	"liamandmia.wedding/configs/configsdatabase"
	"liamandmia.wedding/configs/configslog"
	"liamandmia.wedding/routes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configs.LoadEnv()
	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	if configs.Mail().APIKey == "" {
		configslog.SLog.Warn("RESEND_API_KEY not set: email dispatch runs in demo mode")
	}

	app := fiber.New(fiber.Config{
		AppName: "liamandmia.wedding",
	})
	routes.SetupRoutes(app)

	site := configs.Site()

	// Graceful shutdown on SIGINT/SIGTERM. In-flight dispatch loops run
	// to completion; they are not cancellable mid-batch.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-shutdown
		configslog.SLog.Info("Shutting down...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Shutdown failed", zap.Error(err))
		}
	}()

	configslog.SLog.Infof("Listening on %s", site.ListenAddr)
	if err := app.Listen(site.ListenAddr); err != nil {
		configslog.Log.Fatal("Server stopped", zap.Error(err))
	}
}
