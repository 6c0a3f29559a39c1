package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"photo-manager/core/config"
	"photo-manager/core/database"
	"photo-manager/core/loader"
	"photo-manager/core/logger"
	"photo-manager/core/middleware/auth"
	"photo-manager/core/middleware/rayid"
	"photo-manager/core/middleware/requestlog"

	"photo-manager/feature/compare"
	"photo-manager/feature/history"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// startCmd runs the HTTP server.
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the photo manager server",
	Long: `Starts the HTTP server and initializes all enabled features. The server
exposes the comparison and run history as JSON endpoints; scans are shared
across requests through a TTL cache.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Configuration error: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Logger setup failed: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// Run history is optional: without a database the server still
		// serves comparisons, it just cannot persist or list runs.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed, run history disabled", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to run history database", zap.String("driver", cfg.Database.Driver))
		}

		// Both sides are wired at startup so a misconfigured source fails
		// here instead of on the first request.
		localScanner, err := buildLocalScanner(cfg, logg)
		if err != nil {
			logg.Fatal("Failed to build local scanner", zap.Error(err))
		}
		remoteScanner, err := buildRemoteScanner(cmd.Context(), cfg.Server.Remote, cfg, logg)
		if err != nil {
			logg.Fatal("Failed to build remote scanner", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// The ray ID must exist before the request logger reads it; auth
		// runs after both so rejected requests are still logged.
		app.Use(rayid.New())
		app.Use(requestlog.New(logg))
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		mgr := loader.NewManager()
		historyFeature := history.NewFeature(db, cfg.History, logg)
		mgr.Register(historyFeature)
		mgr.Register(compare.NewFeature(localScanner, remoteScanner, cfg.Compare, historyFeature.Store(), logg))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Feature registration failed", zap.Error(err))
		}

		go func() {
			logg.Info("Server listening",
				zap.String("port", cfg.Server.Port),
				zap.String("remote", remoteScanner.Name()))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server stopped unexpectedly", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutdown signal received, draining connections")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
