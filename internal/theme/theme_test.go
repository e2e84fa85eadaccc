package theme

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name, wantBG string
	}{
		{"light", "#ffffff"},
		{"dark", "#1c1f3b"},
		{"black", "#111111"},
		{"hawaii", "#ffffff"}, // unknown falls back to light
		{"", "#ffffff"},
	}
	for _, tt := range tests {
		if got := Lookup(tt.name); got.Background != tt.wantBG {
			t.Errorf("Lookup(%q).Background = %q, want %q", tt.name, got.Background, tt.wantBG)
		}
	}
}

func TestAllOrder(t *testing.T) {
	all := All()
	if len(all) != 3 || all[0].Name != "light" || all[1].Name != "dark" || all[2].Name != "black" {
		t.Errorf("All() = %+v", all)
	}
}
