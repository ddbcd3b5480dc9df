package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mpeterson/gifrelay/config"
	"github.com/mpeterson/gifrelay/gifservice"
	"github.com/mpeterson/gifrelay/giphy"
)

var (
	cfgFile     string
	cfg         *config.Config
	logger      zerolog.Logger
	giphyClient *giphy.Client
	service     *gifservice.Service

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gifrelay",
	Short: "Search Giphy and turn messages into GIFs",
	Long: `gifrelay is a CLI around a resilient Giphy search client. It can run raw
searches with optional result filtering, turn free-form message text into a
single representative GIF, and report upstream health.`,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: teardownApp,
}

// SetVersion sets the version information for the CLI
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	clientOpts := []giphy.Option{
		giphy.WithBaseURL(cfg.Giphy.BaseURL),
		giphy.WithDefaultLimit(cfg.Giphy.Limit),
		giphy.WithDefaultRating(cfg.Giphy.Rating),
		giphy.WithDefaultLang(cfg.Giphy.Lang),
		giphy.WithTimeout(cfg.Giphy.Timeout),
		giphy.WithRetryAttempts(cfg.Giphy.RetryAttempts),
		giphy.WithRetryDelay(cfg.Giphy.RetryDelay),
		giphy.WithMaxConns(cfg.Giphy.MaxConns),
		giphy.WithMaxConnsPerHost(cfg.Giphy.MaxConnsPerHost),
	}

	giphyClient, err = giphy.NewClient(cfg.Giphy.APIKey, logger, clientOpts...)
	if err != nil {
		return fmt.Errorf("failed to create Giphy client: %w", err)
	}

	serviceOpts := append(clientOpts,
		giphy.WithDefaultLimit(cfg.Service.Limit),
		giphy.WithTimeout(cfg.Service.Timeout),
		giphy.WithRetryAttempts(cfg.Service.RetryAttempts),
	)
	service, err = gifservice.New(cfg.Giphy.APIKey, logger, serviceOpts...)
	if err != nil {
		return fmt.Errorf("failed to create GIF service: %w", err)
	}
	service.SetBatchWorkers(cfg.Service.MaxBatch)

	return nil
}

// teardownApp releases the pooled connection resources on shutdown
func teardownApp(cmd *cobra.Command, args []string) error {
	if service != nil {
		if err := service.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close GIF service")
		}
	}
	if giphyClient != nil {
		if err := giphyClient.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close Giphy client")
		}
	}
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when enabled and stderr is a terminal
	useColor := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !useColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
