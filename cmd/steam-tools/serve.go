package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/HALLauncher/hal-steam-tools/pkg/steamtools"
	"github.com/HALLauncher/hal-steam-tools/pkg/steamtools/api"
	"github.com/HALLauncher/hal-steam-tools/pkg/steamtools/bus"
	"github.com/HALLauncher/hal-steam-tools/pkg/steamtools/config"
	"github.com/HALLauncher/hal-steam-tools/pkg/steamtools/host"
	sdkfake "github.com/HALLauncher/hal-steam-tools/pkg/steamtools/sdk/fake"
)

var seedFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the adapter HTTP surface against a development SDK client",
	Long: `serve runs the workshop adapter with the in-memory development SDK client
and exposes the command surface over a loopback HTTP server. The production
shell embeds the adapter directly against the vendor SDK binding instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		client := sdkfake.New()
		if seedFile != "" {
			if err := seedClient(client, seedFile); err != nil {
				return fmt.Errorf("seed %s: %w", seedFile, err)
			}
		}

		svc, err := steamtools.New(
			steamtools.WithClient(client),
			steamtools.WithCallbackRunner(client),
			steamtools.WithQueryTimeout(cfg.QueryTimeout),
		)
		if err != nil {
			return err
		}

		eventBus := bus.New()
		plugin := host.New(svc, eventBus, slog.Default())
		if err := plugin.Setup(); err != nil {
			return err
		}

		r := chi.NewRouter()
		r.Use(middleware.Logger)
		r.Use(middleware.Recoverer)
		r.Mount("/api/v1/workshop", api.NewWorkshopHandler(svc).Routes())

		server := &http.Server{Addr: ":" + cfg.Port, Handler: r}

		go func() {
			slog.Info("Starting workshop adapter server", "port", cfg.Port)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				slog.Error("Server error", "error", err)
			}
		}()

		// The CLI process owns the control loop, so this goroutine plays the
		// shell's part: it is the one fixed pump driver for the session.
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		ticker := time.NewTicker(cfg.TickInterval)
		defer ticker.Stop()
	loop:
		for {
			select {
			case <-ticker.C:
				plugin.Tick()
			case <-stop:
				break loop
			}
		}

		slog.Info("Shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		return plugin.Shutdown()
	},
}

func init() {
	serveCmd.Flags().StringVar(&seedFile, "seed", "", "JSON file of items to preload into the development client")
}

type seedData struct {
	Items []struct {
		ID          uint64 `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Preview     string `json:"preview"`
	} `json:"items"`
	Installed []struct {
		ID         uint64 `json:"id"`
		Path       string `json:"path"`
		SizeOnDisk uint64 `json:"size_on_disk"`
	} `json:"installed"`
}

func seedClient(client *sdkfake.Client, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var data seedData
	if err := json.Unmarshal(content, &data); err != nil {
		return err
	}

	var subscribed []uint64
	for _, item := range data.Items {
		client.AddItem(steamtools.ItemRecord{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			Preview:     item.Preview,
		})
	}
	for _, inst := range data.Installed {
		subscribed = append(subscribed, inst.ID)
		client.SetState(inst.ID, steamtools.ItemStateSubscribed|steamtools.ItemStateInstalled)
		client.SetInstallInfo(inst.ID, steamtools.ItemInstallInfo{
			Folder:     inst.Path,
			SizeOnDisk: inst.SizeOnDisk,
		})
	}
	client.SetSubscribed(subscribed...)
	return nil
}
