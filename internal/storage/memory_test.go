package storage

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CorporateGuuu/nexustechhub-sub010/internal/models"
)

func TestMemoryStorageConversationHistory(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		role := models.RoleUser
		if i%2 == 1 {
			role = models.RoleAssistant
		}
		require.NoError(t, s.SaveChatMessage(ctx, "conv-1", role, fmt.Sprintf("message %d", i)))
	}

	history, err := s.GetConversationHistory(ctx, "conv-1", 20)
	require.NoError(t, err)
	require.Len(t, history, 20)

	// Most-recent-last, capped to the newest 20.
	assert.Equal(t, "message 5", history[0].Content)
	assert.Equal(t, "message 24", history[19].Content)

	// Unknown conversations are empty, not errors.
	empty, err := s.GetConversationHistory(ctx, "no-such-conv", 20)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryStorageUserInfo(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	user, err := s.GetUserInfo(ctx, SeedUserID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Jordan Reyes", user.Name)

	unknown, err := s.GetUserInfo(ctx, "no-such-user")
	require.NoError(t, err)
	assert.Nil(t, unknown)
}

func TestMemoryStorageSearchProducts(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	products, err := s.SearchProducts(ctx, []string{"IPHONE"})
	require.NoError(t, err)
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Contains(t, p.Name, "iPhone")
	}

	none, err := s.SearchProducts(ctx, []string{"toaster"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryStorageOrderOwnership(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	order, err := s.GetOrderDetails(ctx, "10001", SeedUserID)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, models.OrderStatusShipped, order.Status)

	// Same order number, different user: not found, no error.
	other, err := s.GetOrderDetails(ctx, "10001", "someone-else")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestMemoryStorageRecentOrders(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	s.AddOrder(SeedUserID, models.Order{OrderNumber: "10003", Status: models.OrderStatusProcessing})
	s.AddOrder(SeedUserID, models.Order{OrderNumber: "10004", Status: models.OrderStatusProcessing})

	recent, err := s.GetRecentOrders(ctx, SeedUserID)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "10004", recent[0].OrderNumber)
	assert.Equal(t, "10003", recent[1].OrderNumber)
}

func TestMemoryStorageSearchArticles(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	articles, err := s.SearchSupportArticles(ctx, []string{"water damage"})
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "First Aid for Water Damaged Devices", articles[0].Title)
}

func TestMemoryStorageLogInteraction(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, s.LogInteraction(ctx, models.Interaction{
		ConversationID: "conv-1",
		UserMessage:    "hello",
		BotResponse:    "Good morning!",
		Intent:         models.IntentGreeting,
	}))

	interactions := s.Interactions()
	require.Len(t, interactions, 1)
	assert.Equal(t, models.IntentGreeting, interactions[0].Intent)
	assert.False(t, interactions[0].CreatedAt.IsZero())
}
