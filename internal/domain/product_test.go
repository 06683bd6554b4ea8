package domain

import "testing"

func TestAliasList(t *testing.T) {
	t.Run("always contains the product name", func(t *testing.T) {
		p := Product{ID: 1, Name: "Butter"}
		aliases := p.AliasList()
		if len(aliases) != 1 || aliases[0] != "Butter" {
			t.Errorf("aliases = %v, want [Butter]", aliases)
		}
	})

	t.Run("includes brand plus name", func(t *testing.T) {
		p := Product{ID: 1, Name: "Butter", Brand: "Anchor"}
		aliases := p.AliasList()
		found := false
		for _, a := range aliases {
			if a == "Anchor Butter" {
				found = true
			}
		}
		if !found {
			t.Errorf("aliases = %v, want to include 'Anchor Butter'", aliases)
		}
	})

	t.Run("splits comma-separated alternate names", func(t *testing.T) {
		p := Product{ID: 1, Name: "Butter", AltNames: "Salted Butter, Dairy Butter"}
		aliases := p.AliasList()
		want := map[string]bool{"Butter": false, "Salted Butter": false, "Dairy Butter": false}
		for _, a := range aliases {
			if _, ok := want[a]; ok {
				want[a] = true
			}
		}
		for name, seen := range want {
			if !seen {
				t.Errorf("aliases = %v, missing %q", aliases, name)
			}
		}
	})

	t.Run("ignores empty alternate name segments", func(t *testing.T) {
		p := Product{ID: 1, Name: "Butter", AltNames: " , ,"}
		if got := len(p.AliasList()); got != 1 {
			t.Errorf("alias count = %d, want 1", got)
		}
	})
}

func TestValidGTIN(t *testing.T) {
	testCases := []struct {
		gtin string
		want bool
	}{
		{"12345678", true},        // GTIN-8
		{"123456789012", true},    // GTIN-12
		{"9414342100123", true},   // GTIN-13
		{"12345678901234", true},  // GTIN-14
		{"1234567890", false},     // wrong length
		{"", false},
		{"94143421001ab", false},  // non-digit
		{"941434210012 ", false},  // whitespace
	}

	for _, tc := range testCases {
		t.Run(tc.gtin, func(t *testing.T) {
			if got := ValidGTIN(tc.gtin); got != tc.want {
				t.Errorf("ValidGTIN(%q) = %v, want %v", tc.gtin, got, tc.want)
			}
		})
	}
}
