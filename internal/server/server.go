package server

import (
	"context"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/CorporateGuuu/nexustechhub-sub010/internal/chatbot"
	"github.com/CorporateGuuu/nexustechhub-sub010/internal/models"
	"github.com/CorporateGuuu/nexustechhub-sub010/internal/storage"
)

// Server is the HTTP transport in front of the chatbot pipeline. The
// per-request timeout lives here, not inside the pipeline.
type Server struct {
	app     *fiber.App
	service *chatbot.Service
	store   storage.Storage
	logger  *zap.Logger
	timeout time.Duration
}

type MessageRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
	UserID         string `json:"user_id"`
}

type MessageResponse struct {
	Response       string `json:"response"`
	ConversationID string `json:"conversation_id"`
	Intent         string `json:"intent"`
}

func New(service *chatbot.Service, store storage.Storage, logger *zap.Logger, timeout time.Duration) *Server {
	s := &Server{
		app:     fiber.New(fiber.Config{DisableStartupMessage: true}),
		service: service,
		store:   store,
		logger:  logger,
		timeout: timeout,
	}

	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "timestamp": time.Now()})
	})
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	s.app.Post("/api/chatbot/message", s.handleMessage)

	return s
}

func (s *Server) handleMessage(c *fiber.Ctx) error {
	var req MessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "message is required",
		})
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.New().String()
	}
	userID := req.UserID
	if userID == "" {
		userID = chatbot.AnonymousUser
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), s.timeout)
	defer cancel()

	start := time.Now()
	response := s.service.ProcessMessage(ctx, req.Message, conversationID, userID)
	processingSeconds.Observe(time.Since(start).Seconds())

	intent := chatbot.Classify(req.Message)
	messagesTotal.WithLabelValues(string(intent)).Inc()
	if response == chatbot.FallbackResponse {
		fallbackTotal.Inc()
	}

	s.persistTurn(ctx, conversationID, req.Message, response)

	return c.JSON(MessageResponse{
		Response:       response,
		ConversationID: conversationID,
		Intent:         string(intent),
	})
}

// persistTurn appends both sides of the exchange to the conversation
// history. Best-effort: the user already has their answer.
func (s *Server) persistTurn(ctx context.Context, conversationID, message, response string) {
	if err := s.store.SaveChatMessage(ctx, conversationID, models.RoleUser, message); err != nil {
		s.logger.Error("Failed to save user message",
			zap.Error(err),
			zap.String("conversation_id", conversationID))
		return
	}
	if err := s.store.SaveChatMessage(ctx, conversationID, models.RoleAssistant, response); err != nil {
		s.logger.Error("Failed to save assistant message",
			zap.Error(err),
			zap.String("conversation_id", conversationID))
	}
}

func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the underlying Fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
