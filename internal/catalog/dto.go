package catalog

// ProductForm is the JSON payload for create and update requests. The
// repository itself trusts its input; the shape constraints live here so
// the handler rejects bad drafts before they reach the collection.
type ProductForm struct {
	ItemName       string  `json:"itemName" validate:"required"`
	Category       string  `json:"category" validate:"required,oneof=Hoodie T-shirt Pants"`
	InvestmentCost float64 `json:"investmentCost" validate:"gte=0"`
	SellingPrice   float64 `json:"sellingPrice" validate:"gte=0"`
	StockQuantity  int     `json:"stockQuantity" validate:"gte=0"`
	Status         string  `json:"status" validate:"required,oneof='In Stock' Booked 'Not Delivered' Delivered 'Out of Stock'"`
}

func (f ProductForm) draft() Draft {
	return Draft{
		ItemName:       f.ItemName,
		Category:       Category(f.Category),
		InvestmentCost: f.InvestmentCost,
		SellingPrice:   f.SellingPrice,
		StockQuantity:  f.StockQuantity,
		Status:         Status(f.Status),
	}
}
