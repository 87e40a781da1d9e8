package chatbot

import (
	"regexp"
	"strings"
)

// productVocabulary is the fixed set of device and part terms the extractor
// recognizes. Matches are returned in vocabulary order, not message order.
var productVocabulary = []string{
	"iphone", "samsung", "galaxy", "ipad", "macbook",
	"screen", "battery", "charging port", "camera", "lcd",
	"digitizer", "back glass", "home button", "speaker",
	"microphone", "repair tool", "adhesive",
}

// issueVocabulary holds failure and symptom terms for technical questions.
var issueVocabulary = []string{
	"not working", "won't turn on", "cracked", "broken",
	"battery drain", "overheating", "water damage", "black screen",
	"frozen", "slow", "no sound", "not charging",
}

// Alternatives are ordered; "order #123" is preferred over a bare "#123"
// when both start at the same position.
var orderNumberPattern = regexp.MustCompile(`order\s*#\s*(\d+)|order\s+number\s+(\d+)|#(\d+)`)

// ProductKeywords returns the product vocabulary terms present in the
// message, in vocabulary order.
func ProductKeywords(message string) []string {
	return matchVocabulary(message, productVocabulary)
}

// IssueKeywords returns the issue vocabulary terms present in the message,
// in vocabulary order.
func IssueKeywords(message string) []string {
	return matchVocabulary(message, issueVocabulary)
}

// OrderNumber extracts the first order number mentioned in the message, or
// an empty string when none is found.
func OrderNumber(message string) string {
	m := orderNumberPattern.FindStringSubmatch(strings.ToLower(message))
	if m == nil {
		return ""
	}
	for _, group := range m[1:] {
		if group != "" {
			return group
		}
	}
	return ""
}

func matchVocabulary(message string, vocabulary []string) []string {
	lower := strings.ToLower(message)
	var found []string
	for _, term := range vocabulary {
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}
	return found
}
