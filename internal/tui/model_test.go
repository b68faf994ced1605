package tui

import (
	"testing"

	"github.com/dealve/dealve/internal/config"
	"github.com/dealve/dealve/internal/models"
)

func TestNewModel_InitializesFromDefaults(t *testing.T) {
	m := CreateTestModel(t)

	AssertModelField(t, "platformFilter", m.platformFilter, models.PlatformAll)
	AssertModelField(t, "region", m.region, models.DefaultRegion)
	AssertModelField(t, "criteria", m.sortState.Criteria, SortPrice)
	AssertModelField(t, "direction", m.sortState.Direction, Ascending)
	AssertModelField(t, "pageSize", m.dealsPageSize, config.DefaultPageSize)
	AssertModelField(t, "hasMore", m.pagination.HasMore, true)
	if m.gameInfoCache == nil || m.priceHistoryCache == nil {
		t.Error("caches should be initialized")
	}
}

func TestNewOptionsState_UnknownDefaultPlatformFallsBackToAll(t *testing.T) {
	cfg := config.Default()
	cfg.DefaultPlatform = "Steam"
	cfg.EnabledPlatforms = []string{"GOG"} // Steam not enabled

	opts := newOptionsState(cfg)
	AssertModelField(t, "default", opts.DefaultPlatform, models.PlatformAll)
}

func TestNewOptionsState_EnabledDefaultPlatformIsKept(t *testing.T) {
	cfg := config.Default()
	cfg.DefaultPlatform = "Steam"
	cfg.EnabledPlatforms = []string{"Steam", "GOG"}

	opts := newOptionsState(cfg)
	AssertModelField(t, "default", opts.DefaultPlatform.Name(), "Steam")
}

func TestFilteredDeals_PlatformFilterMatchesShopID(t *testing.T) {
	m := CreateTestModel(t)
	steam := testDeal(1, 9.99, 50)
	gog := testDeal(2, 4.99, 75)
	gog.Shop = models.Shop{ID: "35", Name: "GOG"}
	m.deals = []models.Deal{steam, gog}

	m.platformFilter = models.PlatformFromName("GOG")
	filtered := m.filteredDeals()
	AssertModelField(t, "filtered count", len(filtered), 1)
	AssertModelField(t, "shop", filtered[0].Shop.Name, "GOG")

	m.platformFilter = models.PlatformAll
	AssertModelField(t, "unfiltered count", len(m.filteredDeals()), 2)
}

func TestPriceFilter_BoundsAreInclusive(t *testing.T) {
	p := PriceFilterState{}
	p.MinInput = "10.00"
	p.MaxInput = "20.00"
	p.apply()

	cases := []struct {
		price float64
		want  bool
	}{
		{10.00, true},
		{20.00, true},
		{15.50, true},
		{9.99, false},
		{20.01, false},
	}
	for _, c := range cases {
		if got := p.Matches(c.price); got != c.want {
			t.Errorf("Matches(%.2f) = %v, want %v", c.price, got, c.want)
		}
	}
}

func TestPriceFilter_InputRejectsNonNumeric(t *testing.T) {
	p := PriceFilterState{}
	for _, ch := range "12a.5x0" {
		p.push(ch)
	}
	AssertModelField(t, "min input", p.MinInput, "12.50")
}

func TestPriceFilter_InputLengthIsCapped(t *testing.T) {
	p := PriceFilterState{}
	for _, ch := range "1234567890123" {
		p.push(ch)
	}
	AssertModelField(t, "capped length", len(p.MinInput), priceInputMaxLen)
}

func TestPriceFilter_Label(t *testing.T) {
	p := PriceFilterState{}
	p.MinInput, p.MaxInput = "5", "10"
	p.apply()
	AssertModelField(t, "range label", p.Label(), "5.00-10.00")

	p = PriceFilterState{}
	p.MaxInput = "10"
	p.apply()
	AssertModelField(t, "max label", p.Label(), "<10.00")

	p = PriceFilterState{}
	p.MinInput = "5"
	p.apply()
	AssertModelField(t, "min label", p.Label(), ">5.00")
}

func TestFilteredDeals_SearchModeSortsClientSide(t *testing.T) {
	m := CreateTestModel(t)
	m.searchQuery = "game"
	m.deals = []models.Deal{
		testDeal(1, 19.99, 20),
		testDeal(2, 4.99, 80),
		testDeal(3, 9.99, 50),
	}

	m.sortState = SortState{Criteria: SortPrice, Direction: Ascending}
	filtered := m.filteredDeals()
	AssertModelField(t, "cheapest first", filtered[0].Price.Amount, 4.99)

	m.sortState.Direction = Descending
	filtered = m.filteredDeals()
	AssertModelField(t, "dearest first", filtered[0].Price.Amount, 19.99)

	m.sortState = SortState{Criteria: SortCut, Direction: Descending}
	filtered = m.filteredDeals()
	AssertModelField(t, "deepest cut first", filtered[0].Price.Discount, 80)
}

func TestFilteredDeals_BrowseModeKeepsServerOrder(t *testing.T) {
	m := CreateTestModel(t)
	m.deals = []models.Deal{
		testDeal(1, 19.99, 20),
		testDeal(2, 4.99, 80),
	}
	m.sortState = SortState{Criteria: SortPrice, Direction: Descending}

	filtered := m.filteredDeals()
	AssertModelField(t, "order preserved", filtered[0].Price.Amount, 19.99)
}

func TestShouldLoadMore_NearEndOfList(t *testing.T) {
	m := CreateTestModel(t)
	m.deals = testDeals(50)
	m.pagination.HasMore = true

	m.ui.Selected = 0
	AssertModelField(t, "far from end", m.shouldLoadMore(), false)

	m.ui.Selected = 45
	AssertModelField(t, "near end", m.shouldLoadMore(), true)

	m.pagination.LoadingMore = true
	AssertModelField(t, "already loading", m.shouldLoadMore(), false)

	m.pagination.LoadingMore = false
	m.pagination.HasMore = false
	AssertModelField(t, "no more pages", m.shouldLoadMore(), false)
}

func TestNeedsGameInfoLoad_SkipsCachedAndInFlight(t *testing.T) {
	m := CreateTestModel(t)
	m.deals = testDeals(2)

	AssertModelField(t, "needs load", m.needsGameInfoLoad(), "game-0")

	m.gameInfoCache["game-0"] = models.GameInfo{ID: "game-0"}
	AssertModelField(t, "cached", m.needsGameInfoLoad(), "")

	m.ui.Selected = 1
	m.loading.GameInfo = "game-1"
	AssertModelField(t, "in flight", m.needsGameInfoLoad(), "")
}

func TestEnabledPlatforms_AllSentinelIsAlwaysFirst(t *testing.T) {
	m := CreateTestModel(t)
	m.options.Enabled = map[models.Platform]bool{
		models.PlatformFromName("Steam"): true,
	}

	choices := m.enabledPlatforms()
	AssertModelField(t, "count", len(choices), 2)
	AssertModelField(t, "first", choices[0], models.PlatformAll)
	AssertModelField(t, "second", choices[1].Name(), "Steam")
}
