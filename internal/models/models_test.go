package models

import "testing"

func low(v float64) *float64 { return &v }

func TestDeal_IsAllTimeLowWithinTolerance(t *testing.T) {
	cases := []struct {
		name string
		deal Deal
		want bool
	}{
		{"exact match", Deal{Price: Price{Amount: 4.99}, HistoryLow: low(4.99)}, true},
		{"within a cent", Deal{Price: Price{Amount: 4.994}, HistoryLow: low(4.99)}, true},
		{"above the low", Deal{Price: Price{Amount: 5.99}, HistoryLow: low(4.99)}, false},
		{"no history", Deal{Price: Price{Amount: 4.99}}, false},
	}
	for _, c := range cases {
		if got := c.deal.IsAllTimeLow(); got != c.want {
			t.Errorf("%s: IsAllTimeLow = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestDeal_Savings(t *testing.T) {
	d := Deal{Price: Price{Amount: 4.99}, RegularPrice: 19.99}
	if got := d.Savings(); got != 15.0 {
		t.Errorf("Savings = %v, want 15.0", got)
	}
}

func TestPrice_CurrencySymbol(t *testing.T) {
	cases := map[string]string{
		"USD": "$",
		"EUR": "€",
		"GBP": "£",
		"BRL": "R$",
		"XYZ": "XYZ",
	}
	for currency, want := range cases {
		p := Price{Currency: currency}
		if got := p.CurrencySymbol(); got != want {
			t.Errorf("CurrencySymbol(%s) = %q, want %q", currency, got, want)
		}
	}
}

func TestPlatform_ShopIDMapping(t *testing.T) {
	if id, ok := PlatformSteam.ShopID(); !ok || id != 61 {
		t.Errorf("Steam shop id = %d, %v", id, ok)
	}
	if id, ok := PlatformGog.ShopID(); !ok || id != 35 {
		t.Errorf("GOG shop id = %d, %v", id, ok)
	}
	if _, ok := PlatformAll.ShopID(); ok {
		t.Error("the All sentinel has no shop id")
	}
}

func TestPlatformFromName_FallsBackToAll(t *testing.T) {
	if p := PlatformFromName("Steam"); p != PlatformSteam {
		t.Errorf("PlatformFromName(Steam) = %v", p)
	}
	if p := PlatformFromName("Not A Shop"); p != PlatformAll {
		t.Errorf("unknown name = %v, want All", p)
	}
}

func TestAllPlatforms_NamesAndIDsAreComplete(t *testing.T) {
	for _, p := range AllPlatforms {
		if p.Name() == "" {
			t.Errorf("platform %d has no name", p)
		}
		if p == PlatformAll {
			continue
		}
		if _, ok := p.ShopID(); !ok {
			t.Errorf("platform %s has no shop id", p.Name())
		}
	}
}
