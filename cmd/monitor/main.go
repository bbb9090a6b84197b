package main

import (
	"context"
	"log"
	"os"
	"time"

	"go-traineeship-monitor/internal/config"
	"go-traineeship-monitor/internal/fetch"
	"go-traineeship-monitor/internal/monitor"
	"go-traineeship-monitor/internal/site"
	"go-traineeship-monitor/internal/telegram"
)

func main() {
	//load config; missing credentials fail before any network call
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}
	log.Println("🔧 Config loaded.")

	//init telegram bot
	bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		log.Fatalf("❌ Failed to init Telegram Bot: %v", err)
	}
	log.Println("🤖 Telegram Bot initialized.")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	fetcher := fetch.New(time.Duration(cfg.FetchDelaySeconds) * time.Second)
	m := monitor.New(fetcher, bot, cfg.DataDir)

	//check each site in sequence; one failing site does not stop the rest
	failed := false
	for _, s := range site.All() {
		log.Printf("▶️ Monitoring %s: %s", s.Name, s.URL)
		if err := m.Run(ctx, s); err != nil {
			log.Printf("❌ %s monitor encountered errors: %v", s.Name, err)
			failed = true
			continue
		}
		log.Printf("✅ %s monitor completed successfully", s.Name)
	}

	if failed {
		os.Exit(1)
	}
	log.Println("🏁 Execution finished.")
}
