package main

import (
	"kyc.gateman.io/infrastructure"
	"kyc.gateman.io/infrastructure/env"
	"kyc.gateman.io/infrastructure/logger"
)

func main() {
	cfg, err := env.Load()
	if err != nil {
		panic(err)
	}
	if err := logger.InitializeLogger(cfg.GinMode); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := infrastructure.StartServer(cfg); err != nil {
		logger.Error("server stopped", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
	}
}
