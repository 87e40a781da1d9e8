package chatbot

import (
	"fmt"
	"strings"
	"time"

	"github.com/CorporateGuuu/nexustechhub-sub010/internal/models"
)

const maxListedProducts = 3

var thanksResponses = []string{
	"You're welcome! Happy to help.",
	"Anytime! Let me know if you need anything else.",
	"Glad I could help!",
	"No problem at all, that's what I'm here for.",
	"You're very welcome! Good luck with the repair.",
}

func (s *Service) composeProductInquiry(keywords []string, products []models.Product) string {
	if len(keywords) == 0 {
		return "I'd be happy to help you find the right part! Which device or part are you looking for? " +
			"For example: \"iPhone 14 screen\" or \"Galaxy S22 battery\"."
	}
	if len(products) == 0 {
		return fmt.Sprintf("I'm sorry, I couldn't find anything matching \"%s\". "+
			"Try browsing our full catalog at %s/products — new parts are added every week.",
			strings.Join(keywords, " "), s.baseURL)
	}

	var b strings.Builder
	b.WriteString("Here's what I found:\n\n")
	for i, p := range products {
		if i == maxListedProducts {
			break
		}
		b.WriteString(fmt.Sprintf("• %s — $%s (%s)\n  %s\n  %s/products/%s\n",
			p.Name, p.Price.StringFixed(2), p.CategoryName,
			truncate(p.Description, 100), s.baseURL, p.Slug))
	}
	if len(products) > maxListedProducts {
		b.WriteString(fmt.Sprintf("\n...and %d more. See all matches at %s/search?q=%s",
			len(products)-maxListedProducts, s.baseURL, strings.Join(keywords, "+")))
	}
	return b.String()
}

func (s *Service) composeOrderStatus(orderNumber string, authenticated bool, order *models.Order, recent []models.Order) string {
	switch {
	case !authenticated && orderNumber != "":
		return fmt.Sprintf("I can see you're asking about order #%s. Please sign in to your account to view its status, "+
			"or email support@nexustechhub.com with your order number and we'll look it up for you.", orderNumber)

	case !authenticated:
		return "I can help you track an order. Please sign in to your account, " +
			"or tell me your order number (for example \"order #10001\")."

	case orderNumber != "":
		if order == nil {
			return fmt.Sprintf("I couldn't find order #%s on your account. "+
				"Double-check the number, or email support@nexustechhub.com if you think something's wrong.", orderNumber)
		}
		return composeOrderDetails(order)

	default:
		if len(recent) == 0 {
			return "You don't have any orders yet. Once you place one, I can track it for you right here."
		}
		var b strings.Builder
		b.WriteString("Here are your recent orders:\n\n")
		for i, o := range recent {
			if i == 3 {
				break
			}
			b.WriteString(fmt.Sprintf("• Order #%s — %s, placed %s, total $%s\n",
				o.OrderNumber, o.Status, o.CreatedAt.Format("Jan 2, 2006"), o.TotalAmount.StringFixed(2)))
		}
		b.WriteString("\nWhich one would you like to know more about?")
		return b.String()
	}
}

func composeOrderDetails(order *models.Order) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Here's the latest on order #%s:\n\n", order.OrderNumber))
	b.WriteString(fmt.Sprintf("Status: %s\n", order.Status))
	b.WriteString(fmt.Sprintf("Placed: %s\n", order.CreatedAt.Format("Jan 2, 2006")))
	b.WriteString(fmt.Sprintf("Shipping: %s\n", order.ShippingMethod))
	if order.TrackingNumber != "" {
		b.WriteString(fmt.Sprintf("Tracking number: %s\n", order.TrackingNumber))
	}
	if len(order.Items) > 0 {
		b.WriteString("\nItems:\n")
		for _, item := range order.Items {
			b.WriteString(fmt.Sprintf("• %dx %s — $%s\n", item.Quantity, item.ProductName, item.Price.StringFixed(2)))
		}
	}
	b.WriteString(fmt.Sprintf("\nTotal: $%s", order.TotalAmount.StringFixed(2)))
	return b.String()
}

func composeReturnRequest(authenticated bool) string {
	policy := "We accept returns within 30 days of delivery. Parts must be unused and in their original packaging; " +
		"test-fitting a part with its protective film still on is fine.\n\n"
	if authenticated {
		return policy + "To start a return, open the order in your account and choose \"Request return\", " +
			"or reply here with your order number and I'll get it going."
	}
	return policy + "To start a return, sign in to your account and open the order, " +
		"or email support@nexustechhub.com with your order number."
}

func (s *Service) composeTechnicalSupport(issues []string, articles []models.SupportArticle) string {
	if len(issues) == 0 {
		return "I'm sorry you're running into trouble. Could you describe the issue in a bit more detail? " +
			"For example \"phone won't turn on after screen replacement\" or \"battery drain\"."
	}

	var b strings.Builder
	if len(articles) == 0 {
		b.WriteString("I don't have a guide for that exact issue yet, but our technicians have seen it all.")
	} else {
		b.WriteString("These guides might help:\n\n")
		for i, a := range articles {
			if i == 3 {
				break
			}
			b.WriteString(fmt.Sprintf("• %s\n  %s\n  %s/support/%s\n", a.Title, a.Summary, s.baseURL, a.Slug))
		}
	}
	b.WriteString("\n\nIf that doesn't solve it, our technicians are happy to help:\n" +
		"Phone: +1 (800) 555-0199 (Mon-Fri, 9am-6pm EST)\n" +
		"Email: support@nexustechhub.com")
	return b.String()
}

var internationalTerms = []string{"international", "abroad", "overseas", "worldwide", "outside the us"}
var expeditedTerms = []string{"express", "expedited", "overnight", "urgent", "fast", "quick"}

// composeShippingInfo branches on keywords in strict priority order:
// international, then expedited, then free, then a general summary.
func composeShippingInfo(message string) string {
	lower := strings.ToLower(message)

	if containsAny(lower, internationalTerms) {
		return "We ship worldwide! International delivery takes 7-14 business days and starts at $19.99 " +
			"depending on destination and weight. Customs fees, where applicable, are the recipient's responsibility."
	}
	if containsAny(lower, expeditedTerms) {
		return "Need it fast? Express Shipping delivers in 1-2 business days for $14.99. " +
			"Order before 3pm EST and we ship the same day."
	}
	if strings.Contains(lower, "free") {
		return "Orders over $50 ship free with Standard Shipping (3-5 business days) anywhere in the US."
	}
	return "Here are our shipping options:\n\n" +
		"• Standard Shipping: 3-5 business days, $5.99 (free on orders over $50)\n" +
		"• Express Shipping: 1-2 business days, $14.99\n" +
		"• International: 7-14 business days, from $19.99\n\n" +
		"Orders placed before 3pm EST ship the same day."
}

func (s *Service) composePricingInfo(keywords []string, products []models.Product) string {
	if len(keywords) == 0 {
		return "Happy to check prices for you! Which part are you interested in?"
	}
	if len(products) == 0 {
		return fmt.Sprintf("I couldn't find pricing for \"%s\". "+
			"Try browsing %s/products, or tell me the exact device model.",
			strings.Join(keywords, " "), s.baseURL)
	}

	var b strings.Builder
	b.WriteString("Here's our current pricing:\n\n")
	for i, p := range products {
		if i == maxListedProducts {
			break
		}
		if p.DiscountPercentage != nil && !p.DiscountPercentage.IsZero() {
			b.WriteString(fmt.Sprintf("• %s — $%s (was $%s, %s%% off)\n",
				p.Name, p.Price.StringFixed(2), p.OriginalPrice().StringFixed(2),
				p.DiscountPercentage.StringFixed(0)))
		} else {
			b.WriteString(fmt.Sprintf("• %s — $%s\n", p.Name, p.Price.StringFixed(2)))
		}
	}
	b.WriteString("\nAll prices include a 90-day warranty. Bulk discounts start at 5 units — ask me about wholesale pricing.")
	return b.String()
}

func composeContactHuman() string {
	return "Of course! Here's how to reach our team:\n\n" +
		"Phone: +1 (800) 555-0199\n" +
		"Email: support@nexustechhub.com\n" +
		"Live chat: available on every page, Mon-Fri 9am-6pm EST\n\n" +
		"Average email response time is under 4 hours on business days."
}

func (s *Service) composeGreeting(user *models.UserInfo) string {
	hour := s.now().Hour()
	var salutation string
	switch {
	case hour < 12:
		salutation = "Good morning"
	case hour < 18:
		salutation = "Good afternoon"
	default:
		salutation = "Good evening"
	}

	if user != nil && user.Name != "" {
		return fmt.Sprintf("%s, %s! Welcome back to NexusTechHub. How can I help you today?", salutation, user.Name)
	}
	return fmt.Sprintf("%s! Welcome to NexusTechHub. How can I help you today?", salutation)
}

func (s *Service) composeThanks() string {
	return thanksResponses[s.pick(len(thanksResponses))]
}

func composeGeneral(message string) (string, bool) {
	lower := strings.ToLower(message)
	for _, entry := range faqTable {
		if strings.Contains(lower, entry.keyword) {
			return entry.answer, true
		}
	}
	return "I'm here to help with products, orders, returns, shipping and repair questions. What can I do for you?", false
}

func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// timeNow is the production clock; tests swap it via WithClock.
func timeNow() time.Time {
	return time.Now()
}
