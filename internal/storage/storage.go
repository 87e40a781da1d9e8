package storage

import (
	"context"

	"github.com/CorporateGuuu/nexustechhub-sub010/internal/models"
)

// Storage is the backing store consumed by the chatbot pipeline. All methods
// may fail; the pipeline's lookup layer decides what to substitute when they
// do.
type Storage interface {
	// GetConversationHistory returns up to limit messages for a conversation,
	// most-recent-last.
	GetConversationHistory(ctx context.Context, conversationID string, limit int) ([]models.ChatMessage, error)
	// SaveChatMessage appends one turn to a conversation. The conversation is
	// created implicitly on first write.
	SaveChatMessage(ctx context.Context, conversationID, role, content string) error

	// GetUserInfo returns account data for a user, or nil when unknown.
	GetUserInfo(ctx context.Context, userID string) (*models.UserInfo, error)

	// SearchProducts returns up to 10 products whose name or description
	// contains any of the keywords, case-insensitive.
	SearchProducts(ctx context.Context, keywords []string) ([]models.Product, error)

	// GetOrderDetails returns the order with the given number if it belongs
	// to the user, or nil when not found. Not-found is a result, not an
	// error.
	GetOrderDetails(ctx context.Context, orderNumber, userID string) (*models.Order, error)
	// GetRecentOrders returns up to 3 most recent orders for a user.
	GetRecentOrders(ctx context.Context, userID string) ([]models.Order, error)

	// SearchSupportArticles returns up to 3 articles whose title or content
	// contains any of the keywords, case-insensitive.
	SearchSupportArticles(ctx context.Context, keywords []string) ([]models.SupportArticle, error)

	// LogInteraction appends one analytics row. Best-effort at the call site.
	LogInteraction(ctx context.Context, interaction models.Interaction) error

	Close() error
}
