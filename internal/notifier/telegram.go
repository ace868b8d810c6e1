// Package notifier pushes ban/unban transitions to a moderators' Telegram
// chat so a suspension never goes unnoticed between admin page visits.
package notifier

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"

	"community-guard/internal/config"
	"community-guard/internal/logger"
	"community-guard/internal/models"
)

// TelegramNotifier implements service.BanNotifier over a Telegram bot.
type TelegramNotifier struct {
	bot    *telego.Bot
	chatID int64
}

// NewTelegramNotifier initializes the moderator alert bot. Returns an error
// when the token is missing or invalid.
func NewTelegramNotifier(ctx context.Context, cfg *config.NotifyConfig) (*TelegramNotifier, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("notify bot token is required")
	}
	if cfg.ChatID == 0 {
		return nil, fmt.Errorf("notify chat id is required")
	}

	bot, err := telego.NewBot(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize notify bot: %w", err)
	}

	botUser, err := bot.GetMe(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get notify bot info: %w", err)
	}
	logger.Infof("Moderator notifications authorized on account %s", botUser.Username)

	return &TelegramNotifier{bot: bot, chatID: cfg.ChatID}, nil
}

// NotifyBanChange sends one message per ban/unban transition. Delivery
// failures are logged and dropped; moderation writes never depend on them.
func (n *TelegramNotifier) NotifyBanChange(entry models.BanLogEntry) {
	var text string
	switch entry.Action {
	case models.BanActionBan:
		untilText := "영구"
		if entry.Until != nil {
			untilText = entry.Until.Format("2006-01-02 15:04") + "까지"
		}
		text = fmt.Sprintf("🚫 <b>차단</b>\n대상: %s\n사유: %s\n기간: %s", entry.UserKey, entry.Reason, untilText)
	case models.BanActionUnban:
		text = fmt.Sprintf("✅ <b>차단 해제</b>\n대상: %s\n사유: %s", entry.UserKey, entry.Reason)
	default:
		return
	}

	_, err := n.bot.SendMessage(context.Background(), &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: n.chatID},
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		logger.Warningf("Error sending moderator notification: %v", err)
	}
}
