package stats

import (
	"github.com/shopspring/decimal"

	"github.com/iitmspaces/assets_backend/nocobase"
)

type SummaryReport struct {
	TotalAssets     int     `json:"totalAssets"`
	ActiveAssets    int     `json:"activeAssets"`
	InactiveAssets  int     `json:"inactiveAssets"`
	TotalInstances  int     `json:"totalInstances"`
	TotalBuildings  int     `json:"totalBuildings"`
	TotalSRBRecords int     `json:"totalSRBRecords"`
	TotalSRBAmount  float64 `json:"totalSRBAmount"`
	AvgSRBAmount    float64 `json:"avgSRBAmount"`
}

// Summary computes the headline dashboard counts from the four collections.
// An asset is "active" here only when is_active is exactly "Yes"; the
// building-scoped counter accepts a broader truthy set (see IsActiveAsset).
// The mismatch is inherited from the upstream data-entry conventions and is
// preserved per endpoint.
func Summary(assets, srbDetails, buildings, instances []nocobase.Record) SummaryReport {
	total := decimal.Zero
	for _, srb := range srbDetails {
		total = total.Add(decimal.NewFromFloat(ParseAmount(srb["Amount"])))
	}
	totalSRBAmount, _ := total.Float64()

	activeAssets := 0
	for _, a := range assets {
		if s, ok := a["is_active"].(string); ok && s == "Yes" {
			activeAssets++
		}
	}

	avg := float64(0)
	if len(srbDetails) > 0 {
		avgDec := total.Div(decimal.NewFromInt(int64(len(srbDetails))))
		avg, _ = avgDec.Float64()
	}

	return SummaryReport{
		TotalAssets:     len(assets),
		ActiveAssets:    activeAssets,
		InactiveAssets:  len(assets) - activeAssets,
		TotalInstances:  len(instances),
		TotalBuildings:  len(buildings),
		TotalSRBRecords: len(srbDetails),
		TotalSRBAmount:  totalSRBAmount,
		AvgSRBAmount:    avg,
	}
}
