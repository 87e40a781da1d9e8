package chatbot

import (
	"github.com/CorporateGuuu/nexustechhub-sub010/internal/models"
	"github.com/CorporateGuuu/nexustechhub-sub010/internal/storage"
)

// Fallback fixtures returned when the backing store is unreachable. These
// are the same rows the in-memory store is seeded with, so a degraded
// deployment and a dev deployment give identical answers.

func mockProducts() []models.Product {
	return storage.SeedProducts()
}

func mockOrders() []models.Order {
	return storage.SeedOrders()
}

func mockArticles() []models.SupportArticle {
	return storage.SeedArticles()
}

// mockOrderByNumber resolves an order number against the canned orders.
// Ownership cannot be checked offline, so the number alone decides.
func mockOrderByNumber(orderNumber string) *models.Order {
	for _, order := range mockOrders() {
		if order.OrderNumber == orderNumber {
			copied := order
			return &copied
		}
	}
	return nil
}
