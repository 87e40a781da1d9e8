package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/CorporateGuuu/nexustechhub-sub010/internal/chatbot"
)

// Bot routes Telegram messages into the same support pipeline the web
// widget uses. Telegram users are anonymous as far as the storefront's
// account system is concerned; the chat ID only names the conversation.
type Bot struct {
	api     *tgbotapi.BotAPI
	service *chatbot.Service
	logger  *zap.Logger
}

func New(token string, service *chatbot.Service, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &Bot{
		api:     api,
		service: service,
		logger:  logger,
	}, nil
}

func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			go b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.IsCommand() {
		b.handleCommand(message)
		return
	}

	conversationID := fmt.Sprintf("tg:%d", message.Chat.ID)
	response := b.service.ProcessMessage(ctx, message.Text, conversationID, chatbot.AnonymousUser)

	b.sendMessage(message.Chat.ID, response)
}

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.sendMessage(message.Chat.ID, `Welcome to NexusTechHub support!

Ask me about parts, prices, shipping, returns or repairs and I'll do my best to help.
For order-specific questions, please use the chat on nexustechhub.com while signed in.`)
	case "help":
		b.sendMessage(message.Chat.ID, `You can ask me things like:
- "Do you have iPhone 14 screens?"
- "How much is a Galaxy S22 battery?"
- "How long does shipping take?"
- "My phone won't turn on after a repair"`)
	default:
		b.sendMessage(message.Chat.ID, "Unknown command. Use /help to see what I can do.")
	}
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}
