package telegram

import (
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-traineeship-monitor/internal/listing"
	"go-traineeship-monitor/internal/site"
)

type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewBot(token string, chatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	return &Bot{
		api:    api,
		chatID: chatID,
	}, nil
}

// NotifyNew sends one alert summarizing the new listings. When
// Telegram rejects the message for being too long, a shortened version
// is sent once instead. A batch of zero listings sends nothing.
func (b *Bot) NotifyNew(s site.Site, newListings []listing.Listing) error {
	if len(newListings) == 0 {
		log.Printf("ℹ️ No new %s listings to send", s.Name)
		return nil
	}

	err := b.send(BuildMessage(s, newListings, time.Now()))
	if err == nil {
		log.Printf("✅ Telegram alert sent for %d new %s listings", len(newListings), s.Name)
		return nil
	}

	if strings.Contains(strings.ToLower(err.Error()), "message is too long") {
		log.Printf("⚠️ %s alert too long, sending shortened version", s.Name)
		if err := b.send(BuildShortMessage(s, newListings)); err != nil {
			return fmt.Errorf("sending shortened alert: %w", err)
		}
		log.Printf("✅ Sent shortened %s Telegram alert", s.Name)
		return nil
	}

	return fmt.Errorf("sending alert: %w", err)
}

func (b *Bot) send(text string) error {
	msg := tgbotapi.NewMessage(b.chatID, text)
	msg.ParseMode = "Markdown"
	_, err := b.api.Send(msg)
	return err
}
