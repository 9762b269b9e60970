package stats

import (
	"testing"

	"github.com/iitmspaces/assets_backend/nocobase"
)

func TestAssetByCategory(t *testing.T) {
	srbDetails := []nocobase.Record{
		{"id": 1, "Asset_Code": "FURN", "Amount": "1000", "SRB_Number": "SRB-1", "Item_Description": "Desk"},
		{"id": 2, "Asset_Code": "FURN", "Amount": float64(2500), "SRB_Number": "SRB-2", "Item_Description": "Chair"},
		{"id": 3, "Asset_Code": "IT", "Amount": "99.50", "SRB_Number": "SRB-3", "Item_Description": "Mouse"},
		{"id": 4, "Asset_Code": "NULL", "Amount": nil, "SRB_Number": nil, "Item_Description": ""},
	}

	report := AssetByCategory(srbDetails)

	if report.TotalRecords != 4 {
		t.Fatalf("TotalRecords = %d, want 4", report.TotalRecords)
	}
	if report.TotalCategories != 3 {
		t.Fatalf("TotalCategories = %d, want 3", report.TotalCategories)
	}

	// Sorted descending by count: FURN (2) first.
	if report.Categories[0].Category != "FURN" {
		t.Fatalf("top category = %q, want FURN", report.Categories[0].Category)
	}
	if report.Categories[0].Count != 2 || report.Categories[0].TotalAmount != 3500 {
		t.Fatalf("FURN bucket = count %d total %v, want count 2 total 3500",
			report.Categories[0].Count, report.Categories[0].TotalAmount)
	}

	for _, c := range report.Categories {
		if c.Count != len(c.Items) {
			t.Fatalf("category %q: count %d != len(items) %d", c.Category, c.Count, len(c.Items))
		}
	}

	// The NULL sentinel collapses into Unknown, with Unknown fields filled in.
	var unknown *CategoryBucket
	for i := range report.Categories {
		if report.Categories[i].Category == "Unknown" {
			unknown = &report.Categories[i]
		}
	}
	if unknown == nil {
		t.Fatal("no Unknown bucket for NULL Asset_Code")
	}
	if unknown.Items[0].SRBNumber != "Unknown" || unknown.Items[0].Description != "Unknown" {
		t.Fatalf("Unknown bucket item = %+v, want Unknown srb_number and description", unknown.Items[0])
	}
	if unknown.Items[0].Amount != 0 {
		t.Fatalf("nil Amount parsed to %v, want 0", unknown.Items[0].Amount)
	}
}

func TestAssetByCategoryTieKeepsFirstSeenOrder(t *testing.T) {
	srbDetails := []nocobase.Record{
		{"id": 1, "Asset_Code": "B", "Amount": "1"},
		{"id": 2, "Asset_Code": "A", "Amount": "1"},
	}
	report := AssetByCategory(srbDetails)
	if report.Categories[0].Category != "B" || report.Categories[1].Category != "A" {
		t.Fatalf("tie order = [%s %s], want [B A]",
			report.Categories[0].Category, report.Categories[1].Category)
	}
}

func TestAssetByCategoryEmpty(t *testing.T) {
	report := AssetByCategory(nil)
	if report.TotalRecords != 0 || report.TotalCategories != 0 {
		t.Fatalf("empty input report = %+v, want zero totals", report)
	}
	if report.Categories == nil {
		t.Fatal("Categories should be an empty slice, not nil")
	}
}
