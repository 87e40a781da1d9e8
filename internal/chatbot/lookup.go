package chatbot

import (
	"context"

	"go.uber.org/zap"

	"github.com/CorporateGuuu/nexustechhub-sub010/internal/models"
	"github.com/CorporateGuuu/nexustechhub-sub010/internal/storage"
)

const historyLimit = 20

// Lookup wraps a Storage so that store failures never reach the composers.
// Every method catches the delegate's error, logs it for operators, and
// substitutes the fixed fallback for that lookup.
type Lookup struct {
	store  storage.Storage
	logger *zap.Logger
}

func NewLookup(store storage.Storage, logger *zap.Logger) *Lookup {
	return &Lookup{store: store, logger: logger}
}

func (l *Lookup) History(ctx context.Context, conversationID string) []models.ChatMessage {
	history, err := l.store.GetConversationHistory(ctx, conversationID, historyLimit)
	if err != nil {
		l.logger.Error("Failed to fetch conversation history",
			zap.Error(err),
			zap.String("conversation_id", conversationID))
		return nil
	}
	return history
}

// User returns nil for anonymous users without touching the store, and nil
// when the store fails or has no such account.
func (l *Lookup) User(ctx context.Context, userID string) *models.UserInfo {
	if userID == "" || userID == AnonymousUser {
		return nil
	}
	user, err := l.store.GetUserInfo(ctx, userID)
	if err != nil {
		l.logger.Error("Failed to fetch user info",
			zap.Error(err),
			zap.String("user_id", userID))
		return nil
	}
	return user
}

func (l *Lookup) Products(ctx context.Context, keywords []string) []models.Product {
	products, err := l.store.SearchProducts(ctx, keywords)
	if err != nil {
		l.logger.Error("Failed to search products, using fallback catalog",
			zap.Error(err),
			zap.Strings("keywords", keywords))
		return mockProducts()
	}
	return products
}

func (l *Lookup) OrderByNumber(ctx context.Context, orderNumber, userID string) *models.Order {
	order, err := l.store.GetOrderDetails(ctx, orderNumber, userID)
	if err != nil {
		l.logger.Error("Failed to fetch order, using fallback orders",
			zap.Error(err),
			zap.String("order_number", orderNumber),
			zap.String("user_id", userID))
		return mockOrderByNumber(orderNumber)
	}
	return order
}

func (l *Lookup) RecentOrders(ctx context.Context, userID string) []models.Order {
	orders, err := l.store.GetRecentOrders(ctx, userID)
	if err != nil {
		l.logger.Error("Failed to fetch recent orders, using fallback orders",
			zap.Error(err),
			zap.String("user_id", userID))
		return mockOrders()
	}
	return orders
}

func (l *Lookup) Articles(ctx context.Context, keywords []string) []models.SupportArticle {
	articles, err := l.store.SearchSupportArticles(ctx, keywords)
	if err != nil {
		l.logger.Error("Failed to search support articles, using fallback articles",
			zap.Error(err),
			zap.Strings("keywords", keywords))
		return mockArticles()
	}
	return articles
}
