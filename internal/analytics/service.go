// Package analytics computes the dashboard figures from a snapshot of
// non-trashed products. Every computation is pure and total: empty input
// yields an all-zero summary, and nothing here caches between calls.
package analytics

import (
	"github.com/bokunoshop5-bot/BOKUNOshop/internal/catalog"
)

// Summary contains the key figures surfaced on the dashboard.
type Summary struct {
	// ActiveStockValue is the capital tied up in unsold inventory:
	// investment cost times quantity across every product, regardless
	// of status.
	ActiveStockValue float64 `json:"activeStockValue"`
	// RealizedProfit is the per-record margin of delivered products.
	// One record counts once; a record models a tracked unit or batch,
	// not a running sales ledger.
	RealizedProfit float64 `json:"realizedProfit"`
	// ProjectedCash is the expected revenue from booked orders.
	ProjectedCash float64 `json:"projectedCash"`
	// Efficiency breaks delivered sales down per category.
	Efficiency []CategoryEfficiency `json:"efficiency"`
}

// CategoryEfficiency counts delivered sales and their revenue for one
// category. BarFraction is a display helper in [0,1], sales relative to
// the busiest category.
type CategoryEfficiency struct {
	Category    catalog.Category `json:"category"`
	Sales       int              `json:"sales"`
	Revenue     float64          `json:"revenue"`
	BarFraction float64          `json:"barFraction"`
}

// Compute derives the full summary from the given products. Callers pass
// the active (non-trashed) snapshot; trashed records must already be
// filtered out.
func Compute(products []catalog.Product) Summary {
	s := Summary{}
	for _, p := range products {
		s.ActiveStockValue += p.InvestmentCost * float64(p.StockQuantity)
		switch p.Status {
		case catalog.StatusDelivered:
			s.RealizedProfit += p.SellingPrice - p.InvestmentCost
		case catalog.StatusBooked:
			s.ProjectedCash += p.SellingPrice
		}
	}
	s.Efficiency = computeEfficiency(products)
	return s
}

func computeEfficiency(products []catalog.Product) []CategoryEfficiency {
	categories := catalog.Categories()
	out := make([]CategoryEfficiency, len(categories))
	maxSales := 0
	for i, cat := range categories {
		eff := CategoryEfficiency{Category: cat}
		for _, p := range products {
			if p.Category != cat || p.Status != catalog.StatusDelivered {
				continue
			}
			eff.Sales++
			eff.Revenue += p.SellingPrice
		}
		if eff.Sales > maxSales {
			maxSales = eff.Sales
		}
		out[i] = eff
	}
	denom := maxSales
	if denom < 1 {
		denom = 1
	}
	for i := range out {
		out[i].BarFraction = float64(out[i].Sales) / float64(denom)
	}
	return out
}
