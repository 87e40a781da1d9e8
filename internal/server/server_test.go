package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/CorporateGuuu/nexustechhub-sub010/internal/chatbot"
	"github.com/CorporateGuuu/nexustechhub-sub010/internal/storage"
)

func newTestServer(t *testing.T) (*Server, *storage.MemoryStorage) {
	t.Helper()
	store := storage.NewMemoryStorage()
	service := chatbot.New(store, zap.NewNop())
	return New(service, store, zap.NewNop(), 5*time.Second), store
}

func postMessage(t *testing.T, srv *Server, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/chatbot/message", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestHandleMessage(t *testing.T) {
	srv, store := newTestServer(t)

	resp := postMessage(t, srv, MessageRequest{
		Message:        "hello",
		ConversationID: "conv-1",
		UserID:         storage.SeedUserID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Response)
	assert.Equal(t, "conv-1", body.ConversationID)
	assert.Equal(t, "greeting", body.Intent)

	// Both sides of the turn end up in the history.
	history, err := store.GetConversationHistory(context.Background(), "conv-1", 20)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "hello", history[0].Content)
	assert.Equal(t, body.Response, history[1].Content)
}

func TestHandleMessageMintsConversationID(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postMessage(t, srv, MessageRequest{Message: "hello"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.ConversationID)
}

func TestHandleMessageRequiresMessage(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postMessage(t, srv, MessageRequest{ConversationID: "conv-1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleMessageRejectsBadBody(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/chatbot/message", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	// Process one message so the counters exist.
	resp := postMessage(t, srv, MessageRequest{Message: "hello"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	metricsResp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, metricsResp.StatusCode)

	raw, err := io.ReadAll(metricsResp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "chatbot_messages_total")
}
