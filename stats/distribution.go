package stats

import (
	"github.com/shopspring/decimal"

	"github.com/iitmspaces/assets_backend/nocobase"
)

// Amount-range thresholds, Indian numbering: 1 lakh = 1e5, 1 crore = 1e7.
const (
	oneLakh  = 100_000
	tenLakh  = 1_000_000
	oneCrore = 10_000_000
)

type RangeItem struct {
	ID              any     `json:"id"`
	SRBNumber       string  `json:"srb_number"`
	Amount          float64 `json:"amount"`
	AssetCode       string  `json:"asset_code"`
	ItemDescription string  `json:"item_description"`
}

type RangeBucket struct {
	Count int         `json:"count"`
	Total float64     `json:"total"`
	Items []RangeItem `json:"items"`
}

type DistributionRanges struct {
	Above1Cr        RangeBucket `json:"above1Cr"`
	Between10LTo1Cr RangeBucket `json:"between10LTo1Cr"`
	Between1LTo10L  RangeBucket `json:"between1LTo10L"`
	Below1L         RangeBucket `json:"below1L"`
	NoAmount        RangeBucket `json:"noAmount"`
}

type DistributionReport struct {
	Ranges       DistributionRanges `json:"ranges"`
	TotalRecords int                `json:"totalRecords"`
	TotalAmount  float64            `json:"totalAmount"`
}

type rangeAcc struct {
	count int
	total decimal.Decimal
	items []RangeItem
}

func (r *rangeAcc) add(item RangeItem) {
	r.count++
	r.total = r.total.Add(decimal.NewFromFloat(item.Amount))
	r.items = append(r.items, item)
}

func (r *rangeAcc) bucket() RangeBucket {
	total, _ := r.total.Float64()
	return RangeBucket{Count: r.count, Total: total, Items: r.items}
}

// SRBAmountDistribution classifies every SRB record into exactly one of five
// fixed amount ranges. A zero amount lands in noAmount before any threshold
// check, so noAmount never contributes to totalAmount.
func SRBAmountDistribution(srbDetails []nocobase.Record) DistributionReport {
	var above1Cr, between10LTo1Cr, between1LTo10L, below1L, noAmount rangeAcc
	for _, acc := range []*rangeAcc{&above1Cr, &between10LTo1Cr, &between1LTo10L, &below1L, &noAmount} {
		acc.items = []RangeItem{}
	}

	grandTotal := decimal.Zero
	for _, srb := range srbDetails {
		amount := ParseAmount(srb["Amount"])
		item := RangeItem{
			ID:              srb["id"],
			SRBNumber:       fallbackString(srb["SRB_Number"]),
			Amount:          amount,
			AssetCode:       NormalizeCode(srb["Asset_Code"]),
			ItemDescription: NormalizeCode(srb["Item_Description"]),
		}

		switch {
		case amount == 0:
			noAmount.add(item)
		case amount >= oneCrore:
			above1Cr.add(item)
		case amount >= tenLakh:
			between10LTo1Cr.add(item)
		case amount >= oneLakh:
			between1LTo10L.add(item)
		default:
			below1L.add(item)
		}
		grandTotal = grandTotal.Add(decimal.NewFromFloat(amount))
	}

	totalAmount, _ := grandTotal.Float64()
	return DistributionReport{
		Ranges: DistributionRanges{
			Above1Cr:        above1Cr.bucket(),
			Between10LTo1Cr: between10LTo1Cr.bucket(),
			Between1LTo10L:  between1LTo10L.bucket(),
			Below1L:         below1L.bucket(),
			NoAmount:        noAmount.bucket(),
		},
		TotalRecords: len(srbDetails),
		TotalAmount:  totalAmount,
	}
}
