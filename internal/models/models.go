package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog row as seen by the chatbot. Read-only.
type Product struct {
	ID                 int64            `json:"id"`
	Name               string           `json:"name"`
	Slug               string           `json:"slug"`
	Price              decimal.Decimal  `json:"price"`
	Description        string           `json:"description"`
	CategoryName       string           `json:"category_name"`
	ImageURL           string           `json:"image_url,omitempty"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage,omitempty"`
}

// OriginalPrice back-computes the pre-discount price from the discounted
// price and the discount percentage. Returns the current price when no
// discount is set.
func (p *Product) OriginalPrice() decimal.Decimal {
	if p.DiscountPercentage == nil || p.DiscountPercentage.IsZero() {
		return p.Price
	}
	factor := decimal.NewFromInt(1).Sub(p.DiscountPercentage.Div(decimal.NewFromInt(100)))
	if factor.IsZero() {
		return p.Price
	}
	return p.Price.Div(factor).Round(2)
}

// Order statuses as stored by the storefront.
const (
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
)

// Order is a customer order. Read-only from the chatbot's perspective.
type Order struct {
	OrderNumber    string          `json:"order_number"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	ShippingMethod string          `json:"shipping_method"`
	TrackingNumber string          `json:"tracking_number,omitempty"`
	Items          []OrderItem     `json:"items"`
}

type OrderItem struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// SupportArticle is a knowledge-base entry surfaced for technical questions.
type SupportArticle struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// UserInfo is the subset of account data the chatbot personalizes with.
// Nil for anonymous users.
type UserInfo struct {
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	OrderCount    int        `json:"order_count"`
	LastOrderDate *time.Time `json:"last_order_date,omitempty"`
}
