package storage

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/CorporateGuuu/nexustechhub-sub010/internal/models"
)

// SeedUserID is the demo account pre-loaded into the in-memory store.
const SeedUserID = "00000000-0000-0000-0000-000000000001"

// SeedProducts returns the canned catalog used both by the in-memory store
// and as the degraded-mode fallback when the real store is unreachable.
func SeedProducts() []models.Product {
	discount10 := decimal.NewFromInt(10)
	discount15 := decimal.NewFromInt(15)

	return []models.Product{
		{
			ID:                 1,
			Name:               "iPhone 14 Pro OLED Screen Assembly",
			Slug:               "iphone-14-pro-oled-screen-assembly",
			Price:              decimal.RequireFromString("129.99"),
			Description:        "Premium OLED screen assembly for iPhone 14 Pro with True Tone support. Includes pre-installed frame and earpiece mesh for a clean one-step swap.",
			CategoryName:       "iPhone Parts",
			ImageURL:           "/images/products/iphone-14-pro-oled.jpg",
			DiscountPercentage: &discount10,
		},
		{
			ID:           2,
			Name:         "iPhone 13 Battery Replacement Kit",
			Slug:         "iphone-13-battery-replacement-kit",
			Price:        decimal.RequireFromString("49.99"),
			Description:  "High-capacity replacement battery for iPhone 13 with adhesive strips and opening tools included.",
			CategoryName: "iPhone Parts",
			ImageURL:     "/images/products/iphone-13-battery.jpg",
		},
		{
			ID:           3,
			Name:         "Samsung Galaxy S22 LCD Digitizer",
			Slug:         "samsung-galaxy-s22-lcd-digitizer",
			Price:        decimal.RequireFromString("89.99"),
			Description:  "Full LCD and digitizer assembly for Samsung Galaxy S22, color-calibrated and tested before shipping.",
			CategoryName: "Samsung Parts",
			ImageURL:     "/images/products/galaxy-s22-lcd.jpg",
		},
		{
			ID:           4,
			Name:         "iPhone 12 Charging Port Flex Cable",
			Slug:         "iphone-12-charging-port-flex-cable",
			Price:        decimal.RequireFromString("24.99"),
			Description:  "Lightning charging port flex cable for iPhone 12 with microphone and antenna connections.",
			CategoryName: "iPhone Parts",
			ImageURL:     "/images/products/iphone-12-charging-port.jpg",
		},
		{
			ID:                 5,
			Name:               "iPad Air 4 Digitizer Touch Screen",
			Slug:               "ipad-air-4-digitizer-touch-screen",
			Price:              decimal.RequireFromString("74.99"),
			Description:        "Glass digitizer touch screen for iPad Air 4th generation with pre-applied adhesive.",
			CategoryName:       "iPad Parts",
			ImageURL:           "/images/products/ipad-air-4-digitizer.jpg",
			DiscountPercentage: &discount15,
		},
		{
			ID:           6,
			Name:         "Universal Repair Tool Kit 24-Piece",
			Slug:         "universal-repair-tool-kit-24-piece",
			Price:        decimal.RequireFromString("19.99"),
			Description:  "24-piece precision repair tool kit with pentalobe and tri-point drivers, spudgers, suction cup and opening picks.",
			CategoryName: "Repair Tools",
			ImageURL:     "/images/products/repair-tool-kit.jpg",
		},
	}
}

// SeedOrders returns the canned orders owned by SeedUserID.
func SeedOrders() []models.Order {
	return []models.Order{
		{
			OrderNumber:    "10001",
			Status:         models.OrderStatusShipped,
			CreatedAt:      time.Date(2025, 7, 14, 10, 30, 0, 0, time.UTC),
			TotalAmount:    decimal.RequireFromString("179.98"),
			ShippingMethod: "Standard Shipping",
			TrackingNumber: "NTH-TRK-48291",
			Items: []models.OrderItem{
				{ProductID: 1, ProductName: "iPhone 14 Pro OLED Screen Assembly", Quantity: 1, Price: decimal.RequireFromString("129.99")},
				{ProductID: 2, ProductName: "iPhone 13 Battery Replacement Kit", Quantity: 1, Price: decimal.RequireFromString("49.99")},
			},
		},
		{
			OrderNumber:    "10002",
			Status:         models.OrderStatusProcessing,
			CreatedAt:      time.Date(2025, 8, 2, 16, 5, 0, 0, time.UTC),
			TotalAmount:    decimal.RequireFromString("89.99"),
			ShippingMethod: "Express Shipping",
			Items: []models.OrderItem{
				{ProductID: 3, ProductName: "Samsung Galaxy S22 LCD Digitizer", Quantity: 1, Price: decimal.RequireFromString("89.99")},
			},
		},
	}
}

// SeedArticles returns the canned knowledge-base entries.
func SeedArticles() []models.SupportArticle {
	return []models.SupportArticle{
		{
			ID:      1,
			Title:   "Phone Won't Turn On After a Repair",
			Slug:    "phone-wont-turn-on-after-repair",
			Summary: "Checklist for devices that stay dark after a screen or battery swap: reseat connectors, verify battery charge, and inspect flex cables.",
			Content: "If the device won't turn on after a repair, start by disconnecting and reseating the battery and display connectors...",
		},
		{
			ID:      2,
			Title:   "Diagnosing Battery Drain and Overheating",
			Slug:    "diagnosing-battery-drain-overheating",
			Summary: "How to tell a failing battery from a board-level fault, and when a replacement battery is the right fix.",
			Content: "Rapid battery drain or a device that runs hot usually points to a worn battery...",
		},
		{
			ID:      3,
			Title:   "First Aid for Water Damaged Devices",
			Slug:    "first-aid-water-damaged-devices",
			Summary: "Immediate steps after liquid exposure: power down, do not charge, and dry the board before attempting any repair.",
			Content: "Liquid damage is time-sensitive. Power the device off immediately and do not plug it in...",
		},
	}
}

// SeedUser returns the demo account record for SeedUserID.
func SeedUser() *models.UserInfo {
	last := time.Date(2025, 8, 2, 16, 5, 0, 0, time.UTC)
	return &models.UserInfo{
		Name:          "Jordan Reyes",
		Email:         "jordan.reyes@example.com",
		OrderCount:    2,
		LastOrderDate: &last,
	}
}
