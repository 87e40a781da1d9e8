package chatbot

import (
	"strings"

	"github.com/CorporateGuuu/nexustechhub-sub010/internal/models"
)

type intentRule struct {
	intent   models.Intent
	keywords []string
}

// intentRules is evaluated top to bottom, first match wins. Messages can
// plausibly match several intents ("problem with my order"); declaration
// order is the tie-breaker, so do not reorder.
var intentRules = []intentRule{
	{models.IntentProductInquiry, []string{
		"product", "parts", "screen", "battery", "charging port",
		"camera", "lcd", "digitizer", "do you have", "looking for", "in stock",
	}},
	{models.IntentOrderStatus, []string{
		"order", "tracking", "shipped", "delivery status", "where is my",
	}},
	{models.IntentReturnRequest, []string{
		"return", "refund", "exchange", "money back", "send back",
	}},
	{models.IntentTechnicalSupport, []string{
		"problem", "issue", "not working", "broken", "help with",
		"doesn't work", "won't turn on", "cracked",
	}},
	{models.IntentShippingInfo, []string{
		"shipping", "deliver", "how long", "when will", "arrive",
	}},
	{models.IntentPricingInfo, []string{
		"price", "cost", "how much", "discount", "cheaper", "deal",
	}},
	{models.IntentContactHuman, []string{
		"human", "agent", "real person", "representative", "speak to someone", "talk to someone",
	}},
	{models.IntentGreeting, []string{
		"hello", "hi", "hey", "good morning", "good afternoon", "good evening",
	}},
	{models.IntentThanks, []string{
		"thank", "thanks", "appreciate", "helpful",
	}},
}

// Classify maps message text to exactly one intent by case-insensitive
// substring matching against the ordered rule table.
func Classify(message string) models.Intent {
	lower := strings.ToLower(message)
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.intent
			}
		}
	}
	return models.IntentGeneral
}
