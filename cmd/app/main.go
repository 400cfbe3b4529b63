package main

import (
	"smeraldo/config"
	"smeraldo/di"
	"smeraldo/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
