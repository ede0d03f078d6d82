package main

import (
	"fmt"
	"os"

	"github.com/calorelia/calorelia-bot/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("🔍 Validating configuration...")

	if err := godotenv.Load(); err != nil {
		fmt.Printf("⚠️  .env file not found: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("❌ Configuration invalid:\n%v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ Configuration is valid!")
	fmt.Printf("📋 Configuration details:\n")
	fmt.Printf("  - Telegram Token: %s\n", maskToken(cfg.TelegramToken))
	fmt.Printf("  - OpenAI API Key: %s\n", maskToken(cfg.OpenAIAPIKey))
	fmt.Printf("  - Storage Backend: %s\n", cfg.Storage.Backend)
	fmt.Printf("  - DB Host: %s\n", cfg.Storage.DB.Host)
	fmt.Printf("  - DB Port: %s\n", cfg.Storage.DB.Port)
	fmt.Printf("  - DB User: %s\n", cfg.Storage.DB.User)
	fmt.Printf("  - DB Name: %s\n", cfg.Storage.DB.DBName)
	fmt.Printf("  - Redis Host: %s\n", cfg.Storage.Redis.Host)
	fmt.Printf("  - Redis Port: %s\n", cfg.Storage.Redis.Port)
	fmt.Printf("  - Log Level: %v\n", cfg.Logger.Level)
	fmt.Printf("  - Log Output: %s\n", cfg.Logger.OutputPath)
	fmt.Printf("  - Log Format: %s\n", cfg.Logger.Format)
}

func maskToken(token string) string {
	if token == "" {
		return "<not set>"
	}
	if len(token) <= 8 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
