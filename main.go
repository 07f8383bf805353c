// @title Sanvii.AI 后端 API
// @version 1.0
// @description Sanvii.AI 职业教练平台的后端服务器。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"sanvii_backend/internal/app"
	"sanvii_backend/internal/config"
	"sanvii_backend/pkg/configwatcher"
	"sanvii_backend/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// .env 缺失不是错误，生产环境直接用系统环境变量
	godotenv.Load()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		*application.Config = *newCfg
	})

	application.Run()
}
