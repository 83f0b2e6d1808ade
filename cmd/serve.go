package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"botc-assets/core/config"
	"botc-assets/core/loader"
	"botc-assets/core/logger"
	"botc-assets/core/middleware/auth"
	"botc-assets/core/middleware/rayid"
	"botc-assets/core/paths"
	"botc-assets/feature/history"
	"botc-assets/feature/manifest"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "botc-assets/docs/swagger"
)

// @title BotC Assets API
// @version 1.0
// @description Read API over the fetched Blood on the Clocktower assets, script manifest and run history.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the assets directory and the read API",
	Long: `Starts an HTTP server exposing the assets directory under /assets, the script
manifest under /manifest and, when the history database is enabled, past runs under /history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyFlagOverrides(cmd, cfg)

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		app := newApp(cfg, logg)

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

// newApp wires middleware and features into a fiber app.
func newApp(cfg *config.Config, logg *zap.Logger) *fiber.App {
	layout := paths.New(cfg.Assets.Out)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// RayID first so every log line below carries it
	app.Use(rayid.New())
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Debug("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	// Public
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Static("/assets", layout.Root)

	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

	mgr := loader.NewManager()
	mgr.Register(manifest.NewFeature(layout.ManifestFile(), logg))
	mgr.Register(history.NewFeature(openHistory(cfg.Database, logg), logg))

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		logg.Fatal("Failed to load features", zap.Error(err))
	}
	logg.Info("Loaded features", zap.Strings("features", loaded))
	return app
}

func init() {
	serveCmd.Flags().StringVarP(&fetchFlags.out, "out", "o", "./assets", "Path to assets directory")
	RootCmd.AddCommand(serveCmd)
}
