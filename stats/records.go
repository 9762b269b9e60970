// Package stats turns raw NocoBase records into the derived figures the
// dashboard serves. All aggregations are pure functions over fetched record
// sets; normalization of loosely-typed fields happens here, once, instead of
// inline in handlers.
package stats

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iitmspaces/assets_backend/nocobase"
)

// ParseAmount reads a monetary field defensively. Non-numeric or missing
// values yield 0, never an error.
func ParseAmount(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		return decimalOrZero(n.String())
	case string:
		return decimalOrZero(n)
	}
	return 0
}

func decimalOrZero(s string) float64 {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

// NormalizeCode maps the upstream sentinel string "NULL" and empty/missing
// values to "Unknown". Used for Asset_Code and Item_Description.
func NormalizeCode(v any) string {
	s := coerceString(v)
	if s == "" || s == "NULL" || s == "0" || s == "false" {
		return "Unknown"
	}
	return s
}

// fallbackString returns the field as a string, or "Unknown" when absent.
// Unlike NormalizeCode it does not treat "NULL" as a sentinel.
func fallbackString(v any) string {
	s := coerceString(v)
	if s == "" || s == "0" || s == "false" {
		return "Unknown"
	}
	return s
}

// coerceString renders a record field the way the upstream API's consumers
// do: numbers without a decimal point where possible, booleans as words,
// nil as empty.
func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	}
	return ""
}

// IsActiveAsset reports whether an asset's is_active field belongs to the
// accepted truthy set {"Yes", "Active", true, 1, "1"}, checked against the
// raw value and its string coercion. Note: the summary report deliberately
// uses a narrower exact-match "Yes" rule; see Summary.
func IsActiveAsset(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t == 1
	case int:
		return t == 1
	case string:
		return t == "Yes" || t == "Active" || t == "1"
	}
	return false
}

// FieldEquals compares a record field against a query-string value with
// string coercion on the field side, tolerating numeric/string id mismatches.
func FieldEquals(v any, s string) bool {
	return v != nil && coerceString(v) == s
}

// buildingDisplayName returns the first non-empty of the name fields the
// Buildings collection has used over time.
func buildingDisplayName(b nocobase.Record) string {
	for _, key := range []string{"Building_Name", "Name", "name"} {
		if s := coerceString(b[key]); s != "" {
			return s
		}
	}
	return ""
}
