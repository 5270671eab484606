package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/bank-holidays/internal/calendar"
	"github.com/username/bank-holidays/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	cfg        *config.Config
	logger     = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bank-holidays",
		Short:         "French bank holiday calculator",
		Long:          "Compute French public holidays, Easter dates and monthly working time",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}

			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					return initLogger(cfg.Log.Level) // Fallback to console
				}
				return nil
			}
			return initLogger(cfg.Log.Level)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(easterCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(monthCmd())
	rootCmd.AddCommand(verifyCmd())
	rootCmd.AddCommand(serveCmd())

	return rootCmd
}

// buildSource creates the holiday source selected in the config
func buildSource(cfg *config.Config, logger *zap.Logger) (calendar.Source, error) {
	switch cfg.Calendar.Source {
	case config.SourceComputed:
		logger.Debug("Using computed holidays")
		return calendar.NewComputedSource(), nil

	case config.SourceGouv:
		logger.Info("Using calendrier.api.gouv.fr",
			zap.String("zone", cfg.Calendar.Zone))
		gouv := calendar.NewGouvSource(
			cfg.Calendar.APIURL,
			cfg.Calendar.Zone,
			cfg.Calendar.GetTimeout(),
			logger,
		)
		if cfg.Calendar.FallbackFile == "" {
			return gouv, nil
		}

		composite := calendar.NewCompositeSource(gouv, calendar.NewFileSource(cfg.Calendar.FallbackFile, logger), logger)

		// Load fallback holidays
		if err := composite.LoadFallback(); err != nil {
			logger.Warn("Failed to load fallback holidays, continuing with API only",
				zap.Error(err))
		}
		return composite, nil

	case config.SourceFile:
		logger.Info("Using holiday file", zap.String("file", cfg.Calendar.FallbackFile))
		fs := calendar.NewFileSource(cfg.Calendar.FallbackFile, logger)
		if err := fs.Load(); err != nil {
			return nil, err
		}
		return fs, nil

	case config.SourceLibrary:
		logger.Debug("Using rickar/cal holiday definitions")
		return calendar.NewLibrarySource(), nil

	default:
		return nil, fmt.Errorf("unknown calendar source: %s", cfg.Calendar.Source)
	}
}

func initLogger(level string) error {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core), nil
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return zapLevel
}
