package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vansh017/appointment-salon/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pushes queue events to shop owners. Shops without an
// owner chat id are simply skipped.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyJoined(ctx context.Context, shop *domain.Shop, entry *domain.QueueEntry) {
	text := fmt.Sprintf(
		"*New customer in queue*\n\nShop: %s\nPosition: %d\nService duration: %d min",
		shop.Name, entry.Position, entry.DurationMinutes,
	)
	n.send(ctx, shop.OwnerChatID, text)
}

func (n *TelegramNotifier) NotifyStarted(ctx context.Context, shop *domain.Shop, entry *domain.QueueEntry) {
	text := fmt.Sprintf(
		"*Service started*\n\nShop: %s\nPosition: %d",
		shop.Name, entry.Position,
	)
	n.send(ctx, shop.OwnerChatID, text)
}

func (n *TelegramNotifier) NotifyCancelled(ctx context.Context, shop *domain.Shop, entry *domain.QueueEntry) {
	text := fmt.Sprintf(
		"*Queue entry cancelled*\n\nShop: %s\nPosition: %d",
		shop.Name, entry.Position,
	)
	n.send(ctx, shop.OwnerChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
