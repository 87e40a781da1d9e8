package chatbot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/CorporateGuuu/nexustechhub-sub010/internal/models"
)

var errStoreDown = errors.New("store unavailable")

// failingStorage simulates a completely unreachable backing store.
type failingStorage struct{}

func (failingStorage) GetConversationHistory(ctx context.Context, conversationID string, limit int) ([]models.ChatMessage, error) {
	return nil, errStoreDown
}

func (failingStorage) SaveChatMessage(ctx context.Context, conversationID, role, content string) error {
	return errStoreDown
}

func (failingStorage) GetUserInfo(ctx context.Context, userID string) (*models.UserInfo, error) {
	return nil, errStoreDown
}

func (failingStorage) SearchProducts(ctx context.Context, keywords []string) ([]models.Product, error) {
	return nil, errStoreDown
}

func (failingStorage) GetOrderDetails(ctx context.Context, orderNumber, userID string) (*models.Order, error) {
	return nil, errStoreDown
}

func (failingStorage) GetRecentOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return nil, errStoreDown
}

func (failingStorage) SearchSupportArticles(ctx context.Context, keywords []string) ([]models.SupportArticle, error) {
	return nil, errStoreDown
}

func (failingStorage) LogInteraction(ctx context.Context, interaction models.Interaction) error {
	return errStoreDown
}

func (failingStorage) Close() error { return nil }

func failingLookup() *Lookup {
	return NewLookup(failingStorage{}, zap.NewNop())
}

func TestLookupProductsFallback(t *testing.T) {
	products := failingLookup().Products(context.Background(), []string{"iphone", "screen"})
	require.NotEmpty(t, products)
	assert.Equal(t, mockProducts(), products)
}

func TestLookupOrderFallback(t *testing.T) {
	l := failingLookup()

	order := l.OrderByNumber(context.Background(), "10001", "any-user")
	require.NotNil(t, order)
	assert.Equal(t, "10001", order.OrderNumber)

	// A number outside the canned set is not found, not an error.
	assert.Nil(t, l.OrderByNumber(context.Background(), "99999", "any-user"))
}

func TestLookupRecentOrdersFallback(t *testing.T) {
	orders := failingLookup().RecentOrders(context.Background(), "any-user")
	assert.Equal(t, mockOrders(), orders)
}

func TestLookupArticlesFallback(t *testing.T) {
	articles := failingLookup().Articles(context.Background(), []string{"won't turn on"})
	assert.Equal(t, mockArticles(), articles)
}

func TestLookupHistoryFallback(t *testing.T) {
	assert.Empty(t, failingLookup().History(context.Background(), "conv-1"))
}

func TestLookupUser(t *testing.T) {
	l := failingLookup()

	// Anonymous users never hit the store.
	assert.Nil(t, l.User(context.Background(), AnonymousUser))
	assert.Nil(t, l.User(context.Background(), ""))

	// Store failure degrades to anonymous rather than erroring.
	assert.Nil(t, l.User(context.Background(), "some-user"))
}
