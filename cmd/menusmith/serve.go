package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/menusmith"
	"github.com/aretw0/menusmith/internal/web"
	"github.com/aretw0/menusmith/pkg/adapters/fs"
	"github.com/aretw0/menusmith/pkg/adapters/lifecycle"
	"github.com/spf13/cobra"
)

var (
	serveMenu      menuFlags
	serveAddr      string
	serveExportDir string
	serveNotifyTTL time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the browser editor",
	Long: `Serve starts the point-and-click menu editor on --addr. The menu lives in
memory for as long as the process runs; download or save it before stopping.
With --requirement-file the open requirement is reloaded whenever the file changes.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := serveMenu.build(
			menusmith.WithExportDir(serveExportDir),
			menusmith.WithNotificationTTL(serveNotifyTTL),
		)
		if err != nil {
			fatal("Invalid menu", err)
		}

		srv, err := web.NewServer(app)
		if err != nil {
			fatal("Failed to create server", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if path := serveMenu.requirementFile; path != "" {
			err := fs.WatchFile(ctx, path, slog.Default(), func(data []byte) {
				app.Editor.SetOpenRequirement(string(data))
				slog.Info("open requirement reloaded", "path", path)
			})
			if err != nil {
				fatal("Failed to watch requirement file", err)
			}
		}

		changes := lifecycle.NewEditorSource(app.Editor)
		if err := changes.Start(ctx); err != nil {
			fatal("Failed to watch editor", err)
		}
		go func() {
			for ev := range changes.Events() {
				slog.Debug("menu changed", "event", ev)
			}
		}()

		slog.Info("open the editor in your browser", "url", "http://"+displayAddr(serveAddr))
		if err := srv.Serve(ctx, serveAddr); err != nil {
			fatal("Server failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveMenu.register(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:8080", "Listen address")
	serveCmd.Flags().StringVar(&serveExportDir, "export-dir", ".", "Directory for 'Save to export directory'")
	serveCmd.Flags().DurationVar(&serveNotifyTTL, "notify-ttl", 3*time.Second, "How long notifications stay visible")
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
