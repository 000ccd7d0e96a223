package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/fiscal-calendar/internal/config"
	"github.com/username/fiscal-calendar/internal/fiscal"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fiscal-calendar",
		Short: "4-4-5 fiscal calendar conversion toolkit",
		Long:  "Convert calendar dates to 4-4-5 fiscal weeks, months and years and back, driven by a configurable alignment table",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.ZapLevel())
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: search ., ~/.fiscal-calendar, /etc/fiscal-calendar)")

	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(yearsCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(nearestCmd())
	rootCmd.AddCommand(joinCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newConverter builds a converter from the built-in alignment table plus
// any extra years from config.
func newConverter(cfg *config.Config) (*fiscal.Converter, error) {
	table := fiscal.DefaultTable()

	if len(cfg.Calendar.ExtraYears) > 0 {
		offsets, weeks53 := cfg.Calendar.TableData()
		extended, err := table.Extend(offsets, weeks53)
		if err != nil {
			return nil, fmt.Errorf("failed to extend alignment table: %w", err)
		}
		table = extended

		logger.Info("Extended alignment table",
			zap.Int("extra_years", len(cfg.Calendar.ExtraYears)),
			zap.Int("min_year", table.MinYear()),
			zap.Int("max_year", table.MaxYear()))
	}

	return fiscal.NewConverter(table, logger), nil
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level zapcore.Level) (*zap.Logger, error) {
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
		level,
	)

	return zap.New(core), nil
}
