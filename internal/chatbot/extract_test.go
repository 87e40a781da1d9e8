package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductKeywords(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    []string
	}{
		{"single", "need a new screen", []string{"screen"}},
		{"vocabulary order, not message order", "battery for my iphone", []string{"iphone", "battery"}},
		{"multi-word term", "the charging port is loose", []string{"charging port"}},
		{"case insensitive", "Samsung GALAXY LCD", []string{"samsung", "galaxy", "lcd"}},
		{"none", "just saying hello", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProductKeywords(tt.message))
		})
	}
}

func TestIssueKeywords(t *testing.T) {
	assert.Equal(t, []string{"won't turn on", "black screen"},
		IssueKeywords("after the repair it won't turn on, just a black screen"))
	assert.Nil(t, IssueKeywords("everything works great"))
}

func TestOrderNumber(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"order hash", "where is my order #10001", "10001"},
		{"order hash spaced", "status of order # 42", "42"},
		{"order number words", "my order number 456 please", "456"},
		{"bare hash", "any news on #789?", "789"},
		{"uppercase", "ORDER #555", "555"},
		{"no number", "where is my stuff", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OrderNumber(tt.message))
		})
	}
}

// The alternation is leftmost-first: an earlier match in the text wins, and
// at the same position "order #" is preferred over a bare "#".
func TestOrderNumberLeftmost(t *testing.T) {
	assert.Equal(t, "123", OrderNumber("#123 or maybe order number 456"))
	assert.Equal(t, "99", OrderNumber("order #99 and also #100"))
}
