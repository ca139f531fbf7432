package main

import (
	"context"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vclb/cnb-rates/cli/cmd"
)

func main() {
	ctx := context.Background()

	// The config path has to be known before cobra parses anything, so the
	// shared flags are pre-parsed here and registered again on the root
	// command for help output and validation.
	flags := pflag.NewFlagSet("cnb-rates", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist = pflag.ParseErrorsWhitelist{UnknownFlags: true}
	configFile := flags.String("config", "./config.yml", "Path to config file")
	debug := flags.Bool("debug", false, "Debug flag")
	_ = flags.Parse(os.Args[1:])

	absolutePath, _ := filepath.Abs(*configFile)

	viper.SetConfigFile(absolutePath)
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("CNB_RATES")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if _, err := os.Stat(absolutePath); err == nil {
		if err := viper.ReadInConfig(); err != nil {
			stdlog.Fatalf("Error while reading in the config file: %v", err)
		}
	}

	config := getConfig()
	debugEnabled := config.Debug || *debug

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	if debugEnabled {
		logger = level.NewFilter(logger, level.AllowAll())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	rateService, err := createRateService(config, logger)
	if err != nil {
		stdlog.Fatalf("Error while creating rate service: %v", err)
	}

	if err := cmd.Execute(&cmd.Config{
		Ctx:         ctx,
		Currencies:  config.Currencies,
		RateService: rateService,
		Debug:       &debugEnabled,
	}); err != nil {
		stdlog.Fatalf("ERROR: %v", err)
	}
}
