package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CorporateGuuu/nexustechhub-sub010/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    models.Intent
	}{
		{"product by part name", "do you have iphone screens in stock?", models.IntentProductInquiry},
		{"order by number", "where is my order #10001", models.IntentOrderStatus},
		{"return", "I want to send back a part for a refund", models.IntentReturnRequest},
		{"technical", "my phone is frozen and won't turn on", models.IntentTechnicalSupport},
		{"shipping", "when will my package arrive?", models.IntentShippingInfo},
		{"pricing", "how much does a replacement cost?", models.IntentPricingInfo},
		{"human", "I need to talk to someone real please", models.IntentContactHuman},
		{"greeting", "hello", models.IntentGreeting},
		{"thanks", "thank you so much", models.IntentThanks},
		{"no match", "blue skies today", models.IntentGeneral},
		{"empty", "", models.IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.message))
		})
	}
}

// A message matching keywords from two intents must resolve to whichever
// intent is declared earlier, regardless of match counts or positions.
func TestClassifyPriorityOrder(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    models.Intent
	}{
		{"order beats technical", "there is a problem with my order", models.IntentOrderStatus},
		{"product beats pricing", "what's the price of a galaxy screen", models.IntentProductInquiry},
		{"product beats order", "is the battery from my order in stock", models.IntentProductInquiry},
		{"return beats technical", "refund for the broken part", models.IntentReturnRequest},
		{"shipping beats pricing", "how long and how much for delivery", models.IntentShippingInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.message))
		})
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	assert.Equal(t, Classify("WHERE IS MY ORDER"), Classify("where is my order"))
	assert.Equal(t, models.IntentGreeting, Classify("HELLO THERE"))
}

func TestClassifyDeterministic(t *testing.T) {
	msg := "problem with my order and the cracked screen"
	first := Classify(msg)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(msg))
	}
}
