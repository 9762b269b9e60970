package stats

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/iitmspaces/assets_backend/nocobase"
)

type CategoryItem struct {
	ID          any     `json:"id"`
	SRBNumber   string  `json:"srb_number"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type CategoryBucket struct {
	Category    string         `json:"category"`
	Count       int            `json:"count"`
	TotalAmount float64        `json:"totalAmount"`
	Items       []CategoryItem `json:"items"`
}

type CategoryReport struct {
	Categories      []CategoryBucket `json:"categories"`
	TotalCategories int              `json:"totalCategories"`
	TotalRecords    int              `json:"totalRecords"`
}

type categoryAcc struct {
	count int
	total decimal.Decimal
	items []CategoryItem
}

// AssetByCategory groups SRB records by normalized Asset_Code. Buckets are
// sorted by descending item count; ties keep first-seen order.
func AssetByCategory(srbDetails []nocobase.Record) CategoryReport {
	buckets := map[string]*categoryAcc{}
	var order []string

	for _, srb := range srbDetails {
		code := NormalizeCode(srb["Asset_Code"])
		acc, ok := buckets[code]
		if !ok {
			acc = &categoryAcc{items: []CategoryItem{}}
			buckets[code] = acc
			order = append(order, code)
		}

		amount := ParseAmount(srb["Amount"])
		acc.count++
		acc.total = acc.total.Add(decimal.NewFromFloat(amount))
		acc.items = append(acc.items, CategoryItem{
			ID:          srb["id"],
			SRBNumber:   fallbackString(srb["SRB_Number"]),
			Amount:      amount,
			Description: NormalizeCode(srb["Item_Description"]),
		})
	}

	categories := make([]CategoryBucket, 0, len(order))
	for _, code := range order {
		acc := buckets[code]
		total, _ := acc.total.Float64()
		categories = append(categories, CategoryBucket{
			Category:    code,
			Count:       acc.count,
			TotalAmount: total,
			Items:       acc.items,
		})
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Count > categories[j].Count
	})

	return CategoryReport{
		Categories:      categories,
		TotalCategories: len(categories),
		TotalRecords:    len(srbDetails),
	}
}
