package tui

import (
	"time"

	"github.com/dealve/dealve/internal/models"
)

// Application messages. Every state transition flows through one of these so
// the reducer in update.go is the single place state changes; key handling
// only translates keys into messages, and background loads report back with
// the *LoadedMsg / *FailedMsg results below.

// Navigation and listing.
type (
	selectNextMsg     struct{}
	selectPreviousMsg struct{}
	openDealMsg       struct{}
	requestRefreshMsg struct{}
)

// Menu.
type (
	toggleMenuMsg struct{}
	menuNextMsg   struct{}
	menuPrevMsg   struct{}
	menuSelectMsg struct{}
	quitMsg       struct{}
)

// Title search filter.
type (
	startFilterMsg   struct{}
	cancelFilterMsg  struct{}
	confirmFilterMsg struct{}
	filterPushMsg    struct{ ch rune }
	filterPopMsg     struct{}
	clearFiltersMsg  struct{}
)

// Price filter popup.
type (
	openPriceFilterMsg        struct{}
	priceFilterSwitchFieldMsg struct{}
	priceFilterPushMsg        struct{ ch rune }
	priceFilterPopMsg         struct{}
	priceFilterApplyMsg       struct{}
	priceFilterClearMsg       struct{}
)

// Platform popup.
type (
	openPlatformPopupMsg   struct{}
	platformPopupNextMsg   struct{}
	platformPopupPrevMsg   struct{}
	platformPopupSelectMsg struct{}
)

// Sorting.
type (
	toggleSortDirectionMsg struct{}
	nextSortCriteriaMsg    struct{}
	prevSortCriteriaMsg    struct{}
)

// Options popup.
type (
	closePopupMsg           struct{}
	optionsNextTabMsg       struct{}
	optionsPrevTabMsg       struct{}
	optionsNextItemMsg      struct{}
	optionsPrevItemMsg      struct{}
	optionsToggleItemMsg    struct{}
	optionsToggleSortDirMsg struct{}
)

// Background load results. Each carries the load generation it was started
// under; results from a superseded generation are dropped by the reducer.
type dealsLoadedMsg struct {
	gen      int
	deals    []models.Deal
	isMore   bool
	pageSize int
}

type moreDealsLoadedMsg struct {
	gen      int
	deals    []models.Deal
	isMore   bool
	pageSize int
}

type dealsLoadFailedMsg struct {
	gen int
	err string
}

type gameInfoLoadedMsg struct {
	id   string
	info models.GameInfo
	ok   bool
}

type priceHistoryLoadedMsg struct {
	id     string
	points []models.PriceHistoryPoint
}

// tickMsg is the heartbeat driving debounce checks, pagination top-up and
// the reveal animation clock.
type tickMsg time.Time
