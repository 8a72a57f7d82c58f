package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iwvelando/solar-sizing/internal/config"
	"github.com/iwvelando/solar-sizing/pkg/constants"
	"github.com/iwvelando/solar-sizing/pkg/format"
	"github.com/iwvelando/solar-sizing/pkg/logging"
	"github.com/iwvelando/solar-sizing/pkg/output"
	"github.com/iwvelando/solar-sizing/pkg/report"
	"github.com/iwvelando/solar-sizing/pkg/solar"
	"github.com/iwvelando/solar-sizing/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	envLocation := flag.String("env-file", constants.DefaultDotEnvFile, "path to .env file with SOLAR_* overrides")
	kwh := flag.String("kwh", "", "monthly electricity consumption in kWh")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json, xlsx, pdf")
	outputFileFlag := flag.String("output-file", "", "write output to this file instead of stdout")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	infoOnly := flag.Bool("info", false, "print the calculation parameters and exit")
	flag.Parse()

	if err := config.LoadDotEnv(*envLocation); err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load env file at %s\", \"error\": \"%v\"}\n", *envLocation, err)
		os.Exit(1)
	}

	// Load the config file to get logging and output configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	// CLI overrides take precedence over config
	if *outputFormatFlag != "" {
		conf.Output.Format = *outputFormatFlag
	}
	if *outputFileFlag != "" {
		conf.Output.File = *outputFileFlag
	}

	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := validation.ValidateOutputFormat(conf.Output.Format); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	printer := format.NewPrinter(conf.Output.Locale, conf.Output.Currency)

	if *infoOnly {
		if err := output.InfoFormat(os.Stdout, printer); err != nil {
			logger.Fatal("failed to write calculation information",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		return
	}

	result, err := solar.ComputeFromString(*kwh)
	if err != nil {
		logger.Fatal("failed to compute sizing",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	logger.Debug("sizing computed",
		zap.String("op", "main"),
		zap.Float64("monthlyConsumptionKWh", result.MonthlyConsumptionKWh),
		zap.Int("panels", result.PanelCount),
	)

	// Handle output.
	var w io.Writer = os.Stdout
	if conf.Output.File != "" {
		file, err := os.Create(conf.Output.File)
		if err != nil {
			logger.Fatal("failed to create output file",
				zap.String("op", "main"),
				zap.String("file", conf.Output.File),
				zap.Error(err),
			)
		}
		defer func() {
			_ = file.Close()
		}()
		w = file
	}

	if err := report.Render(w, conf.Output.Format, result, printer); err != nil {
		logger.Fatal("failed to write output",
			zap.String("op", "main"),
			zap.String("format", conf.Output.Format),
			zap.Error(err),
		)
	}

	if conf.Output.File != "" {
		logger.Info("output written",
			zap.String("op", "main"),
			zap.String("file", conf.Output.File),
			zap.String("format", conf.Output.Format),
		)
	}
}
