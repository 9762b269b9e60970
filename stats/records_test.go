package stats

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"float", float64(1234.5), 1234.5},
		{"int", 42, 42},
		{"numeric string", "15000000", 15000000},
		{"decimal string", "99.99", 99.99},
		{"padded string", "  500 ", 500},
		{"garbage string", "not-a-number", 0},
		{"empty string", "", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAmount(tt.in); got != tt.want {
				t.Fatalf("ParseAmount(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"regular code", "FURN", "FURN"},
		{"nil", nil, "Unknown"},
		{"empty", "", "Unknown"},
		{"NULL sentinel", "NULL", "Unknown"},
		{"zero number", float64(0), "Unknown"},
		{"false", false, "Unknown"},
		{"number kept", float64(12), "12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCode(tt.in); got != tt.want {
				t.Fatalf("NormalizeCode(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsActiveAsset(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"Yes", "Yes", true},
		{"Active", "Active", true},
		{"string one", "1", true},
		{"bool true", true, true},
		{"number one", float64(1), true},
		{"No", "No", false},
		{"lowercase yes", "yes", false},
		{"zero", float64(0), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsActiveAsset(tt.in); got != tt.want {
				t.Fatalf("IsActiveAsset(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFieldEquals(t *testing.T) {
	tests := []struct {
		name string
		v    any
		s    string
		want bool
	}{
		{"string match", "12", "12", true},
		{"number vs string", float64(12), "12", true},
		{"mismatch", float64(13), "12", false},
		{"nil never matches", nil, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FieldEquals(tt.v, tt.s); got != tt.want {
				t.Fatalf("FieldEquals(%v, %q) = %v, want %v", tt.v, tt.s, got, tt.want)
			}
		})
	}
}
