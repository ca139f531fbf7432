package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/vclb/cnb-rates/fetchers"
	"github.com/vclb/cnb-rates/services"
)

type Config struct {
	BaseURL            string
	DailyRatesEndpoint string
	TargetCurrency     string
	Timeout            time.Duration
	RetryCount         uint64
	Currencies         []string
	Debug              bool
}

func getConfig() *Config {
	viper.SetDefault("api.targetcurrency", services.DefaultTargetCurrency)
	viper.SetDefault("api.timeoutseconds", int(fetchers.DefaultTimeout/time.Second))
	viper.SetDefault("api.retrycount", fetchers.DefaultRetryCount)

	return &Config{
		BaseURL:            viper.GetString("api.baseurl"),
		DailyRatesEndpoint: viper.GetString("api.dailyratesendpoint"),
		TargetCurrency:     viper.GetString("api.targetcurrency"),
		Timeout:            time.Duration(viper.GetInt("api.timeoutseconds")) * time.Second,
		RetryCount:         uint64(viper.GetUint("api.retrycount")),
		Currencies:         viper.GetStringSlice("currencies"),
		Debug:              viper.GetBool("debug"),
	}
}
