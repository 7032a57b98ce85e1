package service

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"dinedir/internal/model"
)

// Price tier thresholds on the mean menu item price.
var (
	tierCheapBelow = decimal.NewFromInt(10)
	tierPriceyFrom = decimal.NewFromInt(20)
)

// DerivePriceTier computes a listing's price tier from its menu
// document. It is total: an unparsable document, a menu without items,
// or items without prices all fall back to the default "$$" tier.
func DerivePriceTier(menu string) string {
	var categories []model.MenuCategory
	if err := json.Unmarshal([]byte(menu), &categories); err != nil {
		return model.PriceTierModerate
	}

	var prices []decimal.Decimal
	for _, category := range categories {
		for _, item := range category.Items {
			if item.Price != nil {
				prices = append(prices, *item.Price)
			}
		}
	}
	if len(prices) == 0 {
		return model.PriceTierModerate
	}

	sum := decimal.Zero
	for _, price := range prices {
		sum = sum.Add(price)
	}
	mean := sum.Div(decimal.NewFromInt(int64(len(prices))))

	switch {
	case mean.LessThan(tierCheapBelow):
		return model.PriceTierCheap
	case mean.LessThan(tierPriceyFrom):
		return model.PriceTierModerate
	default:
		return model.PriceTierPricey
	}
}
