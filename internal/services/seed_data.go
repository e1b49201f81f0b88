package service

import "github.com/shopstack/product-inventory-platform/internal/models"

var defaultCategoryNames = []string{
	"Electronics",
	"Clothing",
	"Home & Garden",
	"Sports & Outdoors",
	"Books",
	"Health & Beauty",
	"Toys & Games",
	"Automotive",
	"Food & Beverages",
	"Office Supplies",
}

var defaultProducts = []models.Product{
	{
		Name:        "Apple iPhone 14 Pro Max",
		Description: "6.7-inch Super Retina XDR display, A16 Bionic chip, 48MP Pro camera system, Ceramic Shield",
		Quantity:    10,
		Categories:  []string{"Electronics", "Smartphones"},
	},
	{
		Name:        "Nike Air Max 270 React",
		Description: "Comfortable running shoes with React foam cushioning and Air Max 270 unit",
		Quantity:    20,
		Categories:  []string{"Clothing", "Shoes"},
	},
	{
		Name:        "Samsung 55-inch Smart TV",
		Description: "4K UHD resolution, Smart TV with Tizen OS, HDR10+ support",
		Quantity:    5,
		Categories:  []string{"Electronics", "Home & Garden"},
	},
}
