package tui

import (
	"testing"

	"github.com/dealve/dealve/internal/config"
	"github.com/dealve/dealve/internal/models"
)

func TestSelectNext_WrapsAroundFilteredList(t *testing.T) {
	m := CreateTestModel(t)
	loadDeals(m, testDeals(3))

	apply(m, selectNextMsg{})
	AssertModelField(t, "selected", m.ui.Selected, 1)
	apply(m, selectNextMsg{})
	apply(m, selectNextMsg{})
	AssertModelField(t, "selected after wrap", m.ui.Selected, 0)
}

func TestSelectPrevious_WrapsToEnd(t *testing.T) {
	m := CreateTestModel(t)
	loadDeals(m, testDeals(3))

	apply(m, selectPreviousMsg{})
	AssertModelField(t, "selected", m.ui.Selected, 2)
}

func TestSelectNext_InverseOfSelectPrevious(t *testing.T) {
	m := CreateTestModel(t)
	loadDeals(m, testDeals(5))
	m.ui.Selected = 2

	apply(m, selectNextMsg{})
	apply(m, selectPreviousMsg{})
	AssertModelField(t, "selected", m.ui.Selected, 2)
}

func TestSelect_EmptyListDoesNothing(t *testing.T) {
	m := CreateTestModel(t)

	res := apply(m, selectNextMsg{})
	AssertModelField(t, "selected", m.ui.Selected, 0)
	AssertModelField(t, "selectionChanged", res.selectionChanged, false)
}

func TestDealsLoaded_ReplacesListingAndResetsSelection(t *testing.T) {
	m := CreateTestModel(t)
	loadDeals(m, testDeals(5))
	m.ui.Selected = 3
	m.errMsg = "old error"

	res := apply(m, dealsLoadedMsg{
		gen:      m.tasks.generation(),
		deals:    testDeals(50),
		isMore:   true,
		pageSize: 50,
	})

	AssertModelField(t, "deals", len(m.deals), 50)
	AssertModelField(t, "selected", m.ui.Selected, 0)
	AssertModelField(t, "offset", m.pagination.Offset, 50)
	AssertModelField(t, "hasMore", m.pagination.HasMore, true)
	AssertModelField(t, "loading", m.loading.Deals, false)
	AssertModelField(t, "error cleared", m.errMsg, "")
	AssertModelField(t, "selectionChanged", res.selectionChanged, true)
}

func TestDealsLoaded_ShortPageClosesPagination(t *testing.T) {
	m := CreateTestModel(t)

	apply(m, dealsLoadedMsg{gen: m.tasks.generation(), deals: testDeals(5), isMore: false, pageSize: 50})
	AssertModelField(t, "hasMore", m.pagination.HasMore, false)
}

func TestMoreDealsLoaded_AppendsWithoutTouchingSelection(t *testing.T) {
	m := CreateTestModel(t)
	apply(m, dealsLoadedMsg{gen: m.tasks.generation(), deals: testDeals(50), isMore: true, pageSize: 50})
	m.ui.Selected = 42

	res := apply(m, moreDealsLoadedMsg{
		gen:      m.tasks.generation(),
		deals:    testDeals(50),
		isMore:   true,
		pageSize: 50,
	})

	AssertModelField(t, "deals", len(m.deals), 100)
	AssertModelField(t, "selected preserved", m.ui.Selected, 42)
	AssertModelField(t, "offset", m.pagination.Offset, 100)
	AssertModelField(t, "selectionChanged", res.selectionChanged, false)
}

func TestPagination_OffsetGrowsMonotonically(t *testing.T) {
	m := CreateTestModel(t)
	apply(m, dealsLoadedMsg{gen: m.tasks.generation(), deals: testDeals(50), isMore: true, pageSize: 50})

	last := m.pagination.Offset
	for i := 0; i < 3; i++ {
		apply(m, moreDealsLoadedMsg{gen: m.tasks.generation(), deals: testDeals(50), isMore: true, pageSize: 50})
		if m.pagination.Offset <= last {
			t.Fatalf("offset did not grow: %d -> %d", last, m.pagination.Offset)
		}
		last = m.pagination.Offset
	}
}

func TestMoreDealsLoaded_ShortPageClosesPagination(t *testing.T) {
	m := CreateTestModel(t)
	apply(m, dealsLoadedMsg{gen: m.tasks.generation(), deals: testDeals(50), isMore: true, pageSize: 50})

	apply(m, moreDealsLoadedMsg{gen: m.tasks.generation(), deals: testDeals(10), isMore: false, pageSize: 50})
	AssertModelField(t, "hasMore", m.pagination.HasMore, false)
	AssertModelField(t, "deals", len(m.deals), 60)
}

func TestStaleGeneration_ResultsAreDropped(t *testing.T) {
	m := CreateTestModel(t)
	loadDeals(m, testDeals(5))

	stale := m.tasks.generation()
	m.tasks.startLoad(m) // supersedes

	apply(m, dealsLoadedMsg{gen: stale, deals: testDeals(50), isMore: true, pageSize: 50})
	AssertModelField(t, "stale load ignored", len(m.deals), 0)

	apply(m, dealsLoadFailedMsg{gen: stale, err: "boom"})
	AssertModelField(t, "stale failure ignored", m.errMsg, "")
}

func TestDealsLoadFailed_SetsErrorAndStopsLoading(t *testing.T) {
	m := CreateTestModel(t)
	m.loading.Deals = true
	m.pagination.LoadingMore = true

	apply(m, dealsLoadFailedMsg{gen: m.tasks.generation(), err: "Network error: refused"})
	AssertModelField(t, "error", m.errMsg, "Network error: refused")
	AssertModelField(t, "loading", m.loading.Deals, false)
	AssertModelField(t, "loadingMore", m.pagination.LoadingMore, false)
}

func TestConfirmFilter_AppliesTrimmedQueryAndReloads(t *testing.T) {
	m := CreateTestModel(t)
	apply(m, startFilterMsg{})
	m.filter.Text = "  hollow knight  "

	res := apply(m, confirmFilterMsg{})
	AssertModelField(t, "query", m.searchQuery, "hollow knight")
	AssertModelField(t, "editing", m.filter.Editing, false)
	AssertModelField(t, "needsReload", res.needsReload, true)
}

func TestConfirmFilter_SameQueryDoesNotReload(t *testing.T) {
	m := CreateTestModel(t)
	m.searchQuery = "celeste"
	apply(m, startFilterMsg{})
	AssertModelField(t, "buffer seeded", m.filter.Text, "celeste")

	res := apply(m, confirmFilterMsg{})
	AssertModelField(t, "needsReload", res.needsReload, false)
}

func TestConfirmFilter_EmptyQueryLeavesSearchMode(t *testing.T) {
	m := CreateTestModel(t)
	m.searchQuery = "celeste"
	apply(m, startFilterMsg{})
	m.filter.Text = "   "

	res := apply(m, confirmFilterMsg{})
	AssertModelField(t, "query", m.searchQuery, "")
	AssertModelField(t, "needsReload", res.needsReload, true)
}

func TestConfirmFilter_CoercesUnsupportedSortForSearch(t *testing.T) {
	m := CreateTestModel(t)
	m.sortState.Criteria = SortHottest
	apply(m, startFilterMsg{})
	m.filter.Text = "portal"

	apply(m, confirmFilterMsg{})
	AssertModelField(t, "criteria", m.sortState.Criteria, SortPrice)
}

func TestClearFilters_ReloadsOnlyWhenSearchWasActive(t *testing.T) {
	m := CreateTestModel(t)

	res := apply(m, clearFiltersMsg{})
	AssertModelField(t, "no reload without search", res.needsReload, false)

	m.searchQuery = "portal"
	res = apply(m, clearFiltersMsg{})
	AssertModelField(t, "query", m.searchQuery, "")
	AssertModelField(t, "reload after search", res.needsReload, true)
}

func TestClearFilters_IsIdempotent(t *testing.T) {
	m := CreateTestModel(t)
	m.searchQuery = "portal"

	apply(m, clearFiltersMsg{})
	first := *m
	res := apply(m, clearFiltersMsg{})
	AssertModelField(t, "second clear reload", res.needsReload, false)
	AssertModelField(t, "query stable", m.searchQuery, first.searchQuery)
}

func TestSortCriteria_SearchModeTogglesBetweenPriceAndCut(t *testing.T) {
	m := CreateTestModel(t)
	m.searchQuery = "portal"
	m.sortState.Criteria = SortPrice

	res := apply(m, nextSortCriteriaMsg{})
	AssertModelField(t, "criteria", m.sortState.Criteria, SortCut)
	AssertModelField(t, "no reload in search mode", res.needsReload, false)
	AssertModelField(t, "selection reset", res.selectionChanged, true)

	apply(m, nextSortCriteriaMsg{})
	AssertModelField(t, "criteria back", m.sortState.Criteria, SortPrice)
}

func TestSortCriteria_BrowseModeCyclesAndReloads(t *testing.T) {
	m := CreateTestModel(t)
	m.sortState.Criteria = SortPrice

	res := apply(m, nextSortCriteriaMsg{})
	AssertModelField(t, "criteria", m.sortState.Criteria, SortCut)
	AssertModelField(t, "needsReload", res.needsReload, true)

	res = apply(m, prevSortCriteriaMsg{})
	AssertModelField(t, "criteria back", m.sortState.Criteria, SortPrice)
	AssertModelField(t, "needsReload", res.needsReload, true)
}

func TestToggleSortDirection_ReloadsInBrowseMode(t *testing.T) {
	m := CreateTestModel(t)

	res := apply(m, toggleSortDirectionMsg{})
	AssertModelField(t, "direction", m.sortState.Direction, Descending)
	AssertModelField(t, "needsReload", res.needsReload, true)
}

func TestPlatformPopupSelect_ReloadsOnlyOnChange(t *testing.T) {
	m := CreateTestModel(t)

	apply(m, openPlatformPopupMsg{})
	AssertModelField(t, "popup", m.ui.Popup, PopupPlatform)

	// Index 0 is "All", which is already active.
	res := apply(m, platformPopupSelectMsg{})
	AssertModelField(t, "no reload", res.needsReload, false)
	AssertModelField(t, "popup closed", m.ui.Popup, PopupNone)

	apply(m, openPlatformPopupMsg{})
	apply(m, platformPopupNextMsg{})
	res = apply(m, platformPopupSelectMsg{})
	AssertModelField(t, "reload on change", res.needsReload, true)
	if m.platformFilter == models.PlatformAll {
		t.Error("platform filter should have changed")
	}
}

func TestPriceFilterApply_ResetsSelection(t *testing.T) {
	m := CreateTestModel(t)
	loadDeals(m, testDeals(10))
	m.ui.Selected = 7

	apply(m, openPriceFilterMsg{})
	for _, ch := range "5.00" {
		apply(m, priceFilterPushMsg{ch: ch})
	}
	res := apply(m, priceFilterApplyMsg{})

	AssertModelField(t, "popup closed", m.ui.Popup, PopupNone)
	AssertModelField(t, "selected", m.ui.Selected, 0)
	AssertModelField(t, "selectionChanged", res.selectionChanged, true)
	if m.priceFilter.ActiveMin == nil || *m.priceFilter.ActiveMin != 5.0 {
		t.Errorf("ActiveMin = %v, want 5.00", m.priceFilter.ActiveMin)
	}
}

func TestMenuQuit_ChainsIntoQuit(t *testing.T) {
	m := CreateTestModel(t)
	apply(m, toggleMenuMsg{})
	m.ui.MenuSelected = int(MenuQuit)

	res := apply(m, menuSelectMsg{})
	if _, ok := res.chain.(quitMsg); !ok {
		t.Fatalf("chain = %T, want quitMsg", res.chain)
	}
	apply(m, res.chain)
	AssertModelField(t, "quitting", m.quitting, true)
}

func TestGameInfoLoaded_CachesAndClearsLoading(t *testing.T) {
	m := CreateTestModel(t)
	m.loading.GameInfo = "game-1"

	apply(m, gameInfoLoadedMsg{id: "game-1", info: models.GameInfo{ID: "game-1", Title: "Game 1"}, ok: true})
	AssertModelField(t, "loading cleared", m.loading.GameInfo, "")
	if _, ok := m.gameInfoCache["game-1"]; !ok {
		t.Error("game info should be cached")
	}
}

func TestGameInfoLoaded_FailureIsSilent(t *testing.T) {
	m := CreateTestModel(t)
	m.loading.GameInfo = "game-1"

	apply(m, gameInfoLoadedMsg{id: "game-1"})
	AssertModelField(t, "loading cleared", m.loading.GameInfo, "")
	AssertModelField(t, "no error surfaced", m.errMsg, "")
	if _, ok := m.gameInfoCache["game-1"]; ok {
		t.Error("failed load must not cache")
	}
}

func TestOptionsToggle_RegionChangeReloadsAndClosesPopup(t *testing.T) {
	m := CreateTestModel(t)
	m.ui.Popup = PopupOptions
	m.options.Tab = TabRegion
	m.options.RegionIndex = 1 // anything but the current US entry

	res := apply(m, optionsToggleItemMsg{})
	if m.region == models.DefaultRegion && models.AllRegions[1] != models.DefaultRegion {
		t.Error("region should have changed")
	}
	AssertModelField(t, "needsReload", res.needsReload, true)
	AssertModelField(t, "popup closed", m.ui.Popup, PopupNone)
}

func TestOptionsToggle_DisablingDefaultPlatformFallsBackToAll(t *testing.T) {
	m := CreateTestModel(t)
	m.options.Tab = TabPlatforms
	platforms := platformsWithoutAll()
	m.options.DefaultPlatform = platforms[0]
	m.platformFilter = platforms[0]
	m.options.PlatformIndex = 1

	apply(m, optionsToggleItemMsg{})
	AssertModelField(t, "enabled", m.options.Enabled[platforms[0]], false)
	AssertModelField(t, "default", m.options.DefaultPlatform, models.PlatformAll)
	AssertModelField(t, "filter", m.platformFilter, models.PlatformAll)
}

func TestOptionsToggle_AdvancedCyclesPageSizeAndDelay(t *testing.T) {
	m := CreateTestModel(t)
	m.options.Tab = TabAdvanced

	m.options.AdvancedIndex = 1
	res := apply(m, optionsToggleItemMsg{})
	AssertModelField(t, "page size", m.dealsPageSize, 100)
	AssertModelField(t, "no reload", res.needsReload, false)
	apply(m, optionsToggleItemMsg{})
	AssertModelField(t, "page size", m.dealsPageSize, 200)
	apply(m, optionsToggleItemMsg{})
	AssertModelField(t, "page size wraps", m.dealsPageSize, 25)

	m.options.AdvancedIndex = 2
	res = apply(m, optionsToggleItemMsg{})
	AssertModelField(t, "delay", m.gameInfoDelayMs, 300)
	AssertModelField(t, "no reload", res.needsReload, false)
}

func TestOptionsToggle_AdvancedSortEditsDefaultWithoutReload(t *testing.T) {
	m := CreateTestModel(t)
	m.options.Tab = TabAdvanced
	m.options.AdvancedIndex = 0
	live := m.sortState

	res := apply(m, optionsToggleItemMsg{})
	AssertModelField(t, "default criteria", m.options.DefaultSort.Criteria, SortCut)
	AssertModelField(t, "live sort untouched", m.sortState, live)
	AssertModelField(t, "no reload", res.needsReload, false)

	res = apply(m, optionsToggleSortDirMsg{})
	AssertModelField(t, "default direction", m.options.DefaultSort.Direction, Descending)
	AssertModelField(t, "live sort untouched", m.sortState, live)
	AssertModelField(t, "no reload", res.needsReload, false)
}

func TestOptionsToggle_DefaultSortPersistsAndSeedsNextSession(t *testing.T) {
	m := CreateTestModel(t)
	m.options.Tab = TabAdvanced
	m.options.AdvancedIndex = 0

	apply(m, optionsToggleItemMsg{})    // Price -> Cut
	apply(m, optionsToggleSortDirMsg{}) // Ascending -> Descending

	reloaded := NewModel(m.gateway, config.Load())
	AssertModelField(t, "next-session criteria", reloaded.sortState.Criteria, SortCut)
	AssertModelField(t, "next-session direction", reloaded.sortState.Direction, Descending)
}

func TestEndToEnd_SearchThenClearRestoresBrowsing(t *testing.T) {
	m := CreateTestModel(t)
	loadDeals(m, testDeals(5))

	apply(m, startFilterMsg{})
	for _, ch := range "portal" {
		apply(m, filterPushMsg{ch: ch})
	}
	res := apply(m, confirmFilterMsg{})
	AssertModelField(t, "search reloads", res.needsReload, true)
	AssertModelField(t, "search mode", m.isSearchMode(), true)

	// Search results arrive as a closed one-shot set.
	m.tasks.startLoad(m)
	apply(m, dealsLoadedMsg{gen: m.tasks.generation(), deals: testDeals(3), isMore: false, pageSize: 3})
	AssertModelField(t, "hasMore", m.pagination.HasMore, false)
	AssertModelField(t, "shouldLoadMore", m.shouldLoadMore(), false)

	res = apply(m, clearFiltersMsg{})
	AssertModelField(t, "clear reloads", res.needsReload, true)
	AssertModelField(t, "search mode off", m.isSearchMode(), false)
}
