package catalog

import "time"

// SeedProducts returns the starter records used when no persisted snapshot
// exists yet: one hoodie on the floor and one tee already booked.
func SeedProducts(now time.Time) []Product {
	return []Product{
		{
			ID:             "seed-hoodie-essential",
			ItemName:       "Boku Essential Hoodie",
			Category:       CategoryHoodie,
			InvestmentCost: 25,
			SellingPrice:   65,
			StockQuantity:  10,
			Status:         StatusInStock,
			CreatedAt:      now,
		},
		{
			ID:             "seed-tee-logo",
			ItemName:       "Logo Print Tee",
			Category:       CategoryTShirt,
			InvestmentCost: 12,
			SellingPrice:   35,
			StockQuantity:  5,
			Status:         StatusBooked,
			CreatedAt:      now,
		},
	}
}
