package chatbot

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/CorporateGuuu/nexustechhub-sub010/internal/models"
)

const assistantSystemPrompt = `You are the support assistant for NexusTechHub, an online store for mobile device
replacement parts and repair tools. Answer briefly and helpfully. Only discuss the store, its products, orders,
shipping, returns and device repairs. If you don't know, suggest emailing support@nexustechhub.com.`

// Assistant answers general questions the FAQ table doesn't cover. It is
// optional; the pipeline works fully without it.
type Assistant struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	logger      *zap.Logger
}

func NewAssistant(apiKey, model string, maxTokens int, temperature float64, logger *zap.Logger) *Assistant {
	return &Assistant{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      logger,
	}
}

// Reply generates an answer from the conversation history and the current
// message. Callers must treat any error as "use the canned answer instead".
func (a *Assistant) Reply(ctx context.Context, history []models.ChatMessage, message string) (string, error) {
	chatMessages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	chatMessages = append(chatMessages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: assistantSystemPrompt,
	})
	for _, msg := range history {
		role := openai.ChatMessageRoleUser
		if msg.Role == models.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}
	chatMessages = append(chatMessages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := a.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       a.model,
			Messages:    chatMessages,
			MaxTokens:   a.maxTokens,
			Temperature: float32(a.temperature),
		},
	)
	if err != nil {
		a.logger.Error("Failed to get assistant response", zap.Error(err))
		return "", fmt.Errorf("error creating chat completion: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty assistant response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
