package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kayz/kathakar/internal/logger"
	"github.com/kayz/kathakar/internal/webui"
)

var webPort int

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Run the story studio web UI",
	RunE:  runWeb,
}

func init() {
	rootCmd.AddCommand(webCmd)
	webCmd.Flags().IntVar(&webPort, "port", 0, "Web UI listen port (default from config file)")
}

func runWeb(cmd *cobra.Command, args []string) error {
	appCfg := loadAppConfig()
	port := webPort
	if port <= 0 {
		port = appCfg.Web.Port
	}

	runner, err := newOrchestrator(appCfg, "")
	if err != nil {
		return err
	}

	server := webui.NewServer(runner, appCfg)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           server.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Story studio listening on http://127.0.0.1:%d", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Web UI server error: %v", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(ctx)
}
