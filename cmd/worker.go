package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adisakb/e-sarabun/internal/sheets"
	"github.com/adisakb/e-sarabun/pkg/logger"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Start worker pools for background services",
	Long:  `Start and manage worker pools, currently the spreadsheet webhook sink.`,
}

var sheetsWorkerCmd = &cobra.Command{
	Use:   "sheets",
	Short: "Start the spreadsheet webhook worker pool",
	Long:  `Start the spreadsheet webhook worker pool without the HTTP server, useful for draining pushes in isolation`,
	Run: func(cmd *cobra.Command, args []string) {
		startSheetsWorker()
	},
}

var (
	maxWorkers   int
	jobQueueSize int
	webhookURL   string
)

func startSheetsWorker() {
	config, err := loadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(config.Logging.Env)
	log := logger.LoggerWrapper()

	// Use command line flags if provided, otherwise use config values
	sheetsConfig := sheets.Config{
		WebhookURL:   getStringFlag(webhookURL, config.Sheets.WebhookURL),
		PushTimeout:  config.Sheets.PushTimeout,
		MaxWorkers:   getIntFlag(maxWorkers, config.Sheets.MaxWorkers),
		JobQueueSize: getIntFlag(jobQueueSize, config.Sheets.JobQueueSize),
	}

	log.Info("starting sheets worker",
		"max_workers", sheetsConfig.MaxWorkers,
		"job_queue_size", sheetsConfig.JobQueueSize,
		"webhook_url", sheetsConfig.WebhookURL)

	client := sheets.NewClient(sheetsConfig, log)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	log.Info("sheets worker is running. Press Ctrl+C to stop.")

	sig := <-sigChan
	log.Info("received signal, shutting down sheets worker", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	shutdownDone := make(chan struct{})
	go func() {
		client.Shutdown()
		close(shutdownDone)
	}()

	select {
	case <-shutdownDone:
		log.Info("sheets worker pool shutdown complete")
	case <-ctx.Done():
		log.Warn("shutdown timeout reached, forcing exit")
	}
}

func getStringFlag(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return configValue
}

func getIntFlag(flagValue, configValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	return configValue
}

func init() {
	sheetsWorkerCmd.Flags().IntVar(&maxWorkers, "max-workers", 0, "Maximum number of workers (overrides config)")
	sheetsWorkerCmd.Flags().IntVar(&jobQueueSize, "job-queue-size", 0, "Job queue buffer size (overrides config)")
	sheetsWorkerCmd.Flags().StringVar(&webhookURL, "webhook-url", "", "Webhook URL (overrides config)")

	workerCmd.AddCommand(sheetsWorkerCmd)

	rootCmd.AddCommand(workerCmd)
}
