package chatbot

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/CorporateGuuu/nexustechhub-sub010/internal/models"
	"github.com/CorporateGuuu/nexustechhub-sub010/internal/storage"
)

// AnonymousUser marks a request without an account identity.
const AnonymousUser = "anonymous"

// FallbackResponse is the last-resort reply when the pipeline itself fails.
const FallbackResponse = "I'm sorry, I'm having trouble processing your request right now. " +
	"Please try again in a moment, or email support@nexustechhub.com."

// Service is the conversation orchestrator. Each call to ProcessMessage is
// independent; continuity comes only from the externally persisted history.
type Service struct {
	lookup    *Lookup
	store     storage.Storage
	assistant *Assistant
	logger    *zap.Logger
	baseURL   string
	now       func() time.Time
	pick      func(n int) int
}

type Option func(*Service)

// WithClock replaces the clock used for time-of-day greetings.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithPicker replaces the random selection used for canned acknowledgements.
func WithPicker(pick func(n int) int) Option {
	return func(s *Service) { s.pick = pick }
}

// WithAssistant enables OpenAI-backed answers for general questions no FAQ
// entry covers. Any assistant failure falls back to the canned prompt.
func WithAssistant(a *Assistant) Option {
	return func(s *Service) { s.assistant = a }
}

// WithBaseURL sets the storefront URL used in product and article links.
func WithBaseURL(url string) Option {
	return func(s *Service) { s.baseURL = url }
}

func New(store storage.Storage, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		lookup:  NewLookup(store, logger),
		store:   store,
		logger:  logger,
		baseURL: "https://nexustechhub.com",
		now:     timeNow,
		pick:    rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProcessMessage runs one turn of the support pipeline and always returns a
// response string. Store failures are absorbed by the lookup layer; anything
// that still escapes is converted to FallbackResponse here.
func (s *Service) ProcessMessage(ctx context.Context, message, conversationID, userID string) (response string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Recovered from panic in message pipeline",
				zap.Any("panic", r),
				zap.String("conversation_id", conversationID))
			response = FallbackResponse
		}
	}()

	history := s.lookup.History(ctx, conversationID)
	user := s.lookup.User(ctx, userID)
	intent := Classify(message)

	response = s.dispatch(ctx, intent, message, userID, user, history)

	s.logInteraction(ctx, conversationID, message, response, intent)
	return response
}

func (s *Service) dispatch(ctx context.Context, intent models.Intent, message, userID string, user *models.UserInfo, history []models.ChatMessage) string {
	switch intent {
	case models.IntentProductInquiry:
		keywords := ProductKeywords(message)
		if len(keywords) == 0 {
			return s.composeProductInquiry(keywords, nil)
		}
		return s.composeProductInquiry(keywords, s.lookup.Products(ctx, keywords))

	case models.IntentOrderStatus:
		orderNumber := OrderNumber(message)
		authenticated := userID != "" && userID != AnonymousUser
		var (
			order  *models.Order
			recent []models.Order
		)
		if authenticated {
			if orderNumber != "" {
				order = s.lookup.OrderByNumber(ctx, orderNumber, userID)
			} else {
				recent = s.lookup.RecentOrders(ctx, userID)
			}
		}
		return s.composeOrderStatus(orderNumber, authenticated, order, recent)

	case models.IntentReturnRequest:
		return composeReturnRequest(userID != "" && userID != AnonymousUser)

	case models.IntentTechnicalSupport:
		issues := IssueKeywords(message)
		if len(issues) == 0 {
			return s.composeTechnicalSupport(issues, nil)
		}
		return s.composeTechnicalSupport(issues, s.lookup.Articles(ctx, issues))

	case models.IntentShippingInfo:
		return composeShippingInfo(message)

	case models.IntentPricingInfo:
		keywords := ProductKeywords(message)
		if len(keywords) == 0 {
			return s.composePricingInfo(keywords, nil)
		}
		return s.composePricingInfo(keywords, s.lookup.Products(ctx, keywords))

	case models.IntentContactHuman:
		return composeContactHuman()

	case models.IntentGreeting:
		return s.composeGreeting(user)

	case models.IntentThanks:
		return s.composeThanks()

	default:
		answer, matched := composeGeneral(message)
		if !matched && s.assistant != nil {
			if reply, err := s.assistant.Reply(ctx, history, message); err == nil && reply != "" {
				return reply
			}
		}
		return answer
	}
}

// logInteraction persists the analytics row. Failures are logged and
// swallowed; they must never affect the response.
func (s *Service) logInteraction(ctx context.Context, conversationID, message, response string, intent models.Intent) {
	err := s.store.LogInteraction(ctx, models.Interaction{
		ConversationID: conversationID,
		UserMessage:    message,
		BotResponse:    response,
		Intent:         intent,
		CreatedAt:      s.now(),
	})
	if err != nil {
		s.logger.Error("Failed to log chatbot interaction",
			zap.Error(err),
			zap.String("conversation_id", conversationID),
			zap.String("intent", string(intent)))
	}
}
