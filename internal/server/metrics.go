package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	messagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatbot_messages_total",
		Help: "Chatbot messages processed, by classified intent.",
	}, []string{"intent"})

	fallbackTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chatbot_fallback_responses_total",
		Help: "Responses served from the last-resort fallback path.",
	})

	processingSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "chatbot_processing_seconds",
		Help:    "Wall time spent processing one chatbot message.",
		Buckets: prometheus.DefBuckets,
	})
)
