package storage

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/CorporateGuuu/nexustechhub-sub010/internal/models"
)

// MemoryStorage is an in-process Storage used for development and tests. It
// is pre-seeded with the same fixtures the chatbot falls back to when the
// real store is unreachable, so both modes answer alike.
type MemoryStorage struct {
	mu           sync.RWMutex
	messages     map[string][]models.ChatMessage
	users        map[string]*models.UserInfo
	products     []models.Product
	orders       map[string][]models.Order
	articles     []models.SupportArticle
	interactions []models.Interaction
}

func NewMemoryStorage() *MemoryStorage {
	s := &MemoryStorage{
		messages: make(map[string][]models.ChatMessage),
		users:    make(map[string]*models.UserInfo),
		products: SeedProducts(),
		orders:   make(map[string][]models.Order),
		articles: SeedArticles(),
	}
	s.users[SeedUserID] = SeedUser()
	s.orders[SeedUserID] = SeedOrders()
	return s
}

func (s *MemoryStorage) GetConversationHistory(ctx context.Context, conversationID string, limit int) ([]models.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.messages[conversationID]
	if len(history) > limit {
		history = history[len(history)-limit:]
	}

	out := make([]models.ChatMessage, len(history))
	copy(out, history)
	return out, nil
}

func (s *MemoryStorage) SaveChatMessage(ctx context.Context, conversationID, role, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages[conversationID] = append(s.messages[conversationID], models.ChatMessage{
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	})
	return nil
}

func (s *MemoryStorage) GetUserInfo(ctx context.Context, userID string) (*models.UserInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[userID]
	if !exists {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (s *MemoryStorage) SearchProducts(ctx context.Context, keywords []string) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []models.Product
	for _, p := range s.products {
		if matchesAny(p.Name+" "+p.Description, keywords) {
			matches = append(matches, p)
			if len(matches) == 10 {
				break
			}
		}
	}
	return matches, nil
}

func (s *MemoryStorage) GetOrderDetails(ctx context.Context, orderNumber, userID string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, order := range s.orders[userID] {
		if order.OrderNumber == orderNumber {
			copied := order
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) GetRecentOrders(ctx context.Context, userID string) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := s.orders[userID]
	// Seed orders are stored oldest-first; most recent come first here.
	var recent []models.Order
	for i := len(orders) - 1; i >= 0 && len(recent) < 3; i-- {
		recent = append(recent, orders[i])
	}
	return recent, nil
}

func (s *MemoryStorage) SearchSupportArticles(ctx context.Context, keywords []string) ([]models.SupportArticle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []models.SupportArticle
	for _, a := range s.articles {
		if matchesAny(a.Title+" "+a.Content, keywords) {
			matches = append(matches, a)
			if len(matches) == 3 {
				break
			}
		}
	}
	return matches, nil
}

func (s *MemoryStorage) LogInteraction(ctx context.Context, interaction models.Interaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if interaction.CreatedAt.IsZero() {
		interaction.CreatedAt = time.Now()
	}
	s.interactions = append(s.interactions, interaction)
	return nil
}

// Interactions returns a copy of the logged interactions, oldest first.
func (s *MemoryStorage) Interactions() []models.Interaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Interaction, len(s.interactions))
	copy(out, s.interactions)
	return out
}

// AddUser registers an account so the chatbot treats userID as known.
func (s *MemoryStorage) AddUser(userID string, info *models.UserInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = info
}

// AddOrder attaches an order to a user, newest last.
func (s *MemoryStorage) AddOrder(userID string, order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[userID] = append(s.orders[userID], order)
}

func (s *MemoryStorage) Close() error {
	// Nothing to close for in-memory storage
	return nil
}

func matchesAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
