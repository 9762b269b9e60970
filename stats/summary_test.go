package stats

import (
	"testing"

	"github.com/iitmspaces/assets_backend/nocobase"
)

func TestSummary(t *testing.T) {
	assets := []nocobase.Record{
		{"id": 1, "is_active": "Yes"},
		{"id": 2, "is_active": "No"},
		{"id": 3, "is_active": "Active"}, // broad-truthy but not exactly "Yes"
		{"id": 4},
	}
	srbDetails := []nocobase.Record{
		{"id": 1, "Amount": "1000"},
		{"id": 2, "Amount": float64(2000)},
		{"id": 3, "Amount": "bogus"},
	}
	buildings := []nocobase.Record{{"id": 1}, {"id": 2}}
	instances := []nocobase.Record{{"id": 1}}

	got := Summary(assets, srbDetails, buildings, instances)

	if got.TotalAssets != 4 {
		t.Fatalf("TotalAssets = %d, want 4", got.TotalAssets)
	}
	// Summary counts only the exact string "Yes"; "Active" is inactive here.
	if got.ActiveAssets != 1 {
		t.Fatalf("ActiveAssets = %d, want 1", got.ActiveAssets)
	}
	if got.InactiveAssets != 3 {
		t.Fatalf("InactiveAssets = %d, want 3", got.InactiveAssets)
	}
	if got.TotalBuildings != 2 || got.TotalInstances != 1 || got.TotalSRBRecords != 3 {
		t.Fatalf("counts = %+v", got)
	}
	if got.TotalSRBAmount != 3000 {
		t.Fatalf("TotalSRBAmount = %v, want 3000", got.TotalSRBAmount)
	}
	if got.AvgSRBAmount != 1000 {
		t.Fatalf("AvgSRBAmount = %v, want 1000", got.AvgSRBAmount)
	}
}

func TestSummaryEmptySRB(t *testing.T) {
	got := Summary(nil, nil, nil, nil)
	if got.AvgSRBAmount != 0 {
		t.Fatalf("AvgSRBAmount on empty input = %v, want 0", got.AvgSRBAmount)
	}
	if got.TotalSRBAmount != 0 {
		t.Fatalf("TotalSRBAmount on empty input = %v, want 0", got.TotalSRBAmount)
	}
}
