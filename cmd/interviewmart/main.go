package main

import (
	"fmt"

	"github.com/denmor86/interview-market/internal/app"
	"github.com/denmor86/interview-market/internal/config"
	"github.com/denmor86/interview-market/internal/logger"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()

	if err := app.Run(config); err != nil {
		logger.Error("Application stopped with error:", err)
	}
}
