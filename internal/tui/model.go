// Package tui implements the interactive deal browser: a single Model holds
// all application state, key presses translate into messages, and a reducer
// applies every transition. Background fetches run as bubbletea commands and
// report back as messages so the model is only ever touched from Update.
package tui

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/dealve/dealve/internal/config"
	"github.com/dealve/dealve/internal/models"
)

// Gateway is the remote API surface the TUI depends on. *itad.Client
// satisfies it; tests substitute fakes.
type Gateway interface {
	ListDeals(ctx context.Context, region string, limit, offset int, shopID *int, sortToken string) ([]models.Deal, error)
	SearchDeals(ctx context.Context, query, region string, shopID *int, limit int) ([]models.Deal, error)
	GameInfo(ctx context.Context, gameID string) (models.GameInfo, error)
	PriceHistory(ctx context.Context, gameID, region string) ([]models.PriceHistoryPoint, error)
}

// MenuItem is an entry in the overlay menu.
type MenuItem int

const (
	MenuBrowse MenuItem = iota
	MenuOptions
	MenuKeybinds
	MenuQuit
)

var menuItems = []MenuItem{MenuBrowse, MenuOptions, MenuKeybinds, MenuQuit}

func (m MenuItem) Name() string {
	switch m {
	case MenuBrowse:
		return "BROWSE DEALS"
	case MenuOptions:
		return "OPTIONS"
	case MenuKeybinds:
		return "KEYBINDS"
	case MenuQuit:
		return "QUIT"
	default:
		return ""
	}
}

// Popup identifies which modal overlay is open. At most one is open at a
// time; the platform popup can sit above the options popup and returns to it
// on close.
type Popup int

const (
	PopupNone Popup = iota
	PopupOptions
	PopupKeybinds
	PopupPlatform
	PopupPriceFilter
)

// OptionsTab is a tab inside the options popup.
type OptionsTab int

const (
	TabRegion OptionsTab = iota
	TabPlatforms
	TabAdvanced
)

var optionsTabs = []OptionsTab{TabRegion, TabPlatforms, TabAdvanced}

func (t OptionsTab) Name() string {
	switch t {
	case TabRegion:
		return "Region"
	case TabPlatforms:
		return "Platforms"
	case TabAdvanced:
		return "Advanced"
	default:
		return ""
	}
}

// FilterState is the title-search input line. Editing text is separate from
// the applied query on the model so Esc can discard an edit.
type FilterState struct {
	Editing bool
	Text    string
}

// PriceFilterState holds the price-range popup inputs and the applied
// bounds. Bounds are inclusive; nil means unbounded on that side.
type PriceFilterState struct {
	MinInput      string
	MaxInput      string
	SelectedField int // 0 = min, 1 = max
	ActiveMin     *float64
	ActiveMax     *float64
}

const priceInputMaxLen = 8

func (p *PriceFilterState) push(ch rune) {
	if ch != '.' && (ch < '0' || ch > '9') {
		return
	}
	if p.SelectedField == 0 {
		if len(p.MinInput) < priceInputMaxLen {
			p.MinInput += string(ch)
		}
	} else {
		if len(p.MaxInput) < priceInputMaxLen {
			p.MaxInput += string(ch)
		}
	}
}

func (p *PriceFilterState) pop() {
	if p.SelectedField == 0 {
		if len(p.MinInput) > 0 {
			p.MinInput = p.MinInput[:len(p.MinInput)-1]
		}
	} else {
		if len(p.MaxInput) > 0 {
			p.MaxInput = p.MaxInput[:len(p.MaxInput)-1]
		}
	}
}

// apply parses the inputs into active bounds. Unparseable or empty inputs
// leave that side unbounded.
func (p *PriceFilterState) apply() {
	p.ActiveMin = parsePrice(p.MinInput)
	p.ActiveMax = parsePrice(p.MaxInput)
}

func parsePrice(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func (p *PriceFilterState) clear() {
	*p = PriceFilterState{}
}

// IsActive reports whether any bound is applied.
func (p PriceFilterState) IsActive() bool {
	return p.ActiveMin != nil || p.ActiveMax != nil
}

// Matches reports whether a price falls within the applied bounds. Both
// bounds are inclusive.
func (p PriceFilterState) Matches(price float64) bool {
	if p.ActiveMin != nil && price < *p.ActiveMin {
		return false
	}
	if p.ActiveMax != nil && price > *p.ActiveMax {
		return false
	}
	return true
}

// Label is the short status-bar form of the active range.
func (p PriceFilterState) Label() string {
	switch {
	case p.ActiveMin != nil && p.ActiveMax != nil:
		return formatPrice(*p.ActiveMin) + "-" + formatPrice(*p.ActiveMax)
	case p.ActiveMin != nil:
		return ">" + formatPrice(*p.ActiveMin)
	case p.ActiveMax != nil:
		return "<" + formatPrice(*p.ActiveMax)
	default:
		return ""
	}
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// PaginationState tracks windowed loading of the browse listing.
type PaginationState struct {
	Offset      int
	HasMore     bool
	LoadingMore bool
}

// LoadingState tracks in-flight fetches. GameInfo and PriceHistory hold the
// game id being fetched, empty when idle.
type LoadingState struct {
	Deals        bool
	GameInfo     string
	PriceHistory string
}

func (l LoadingState) any() bool {
	return l.Deals || l.GameInfo != "" || l.PriceHistory != ""
}

// UIState is presentation-only state: which overlay is open and what each
// list has selected.
type UIState struct {
	ShowMenu           bool
	MenuSelected       int
	Popup              Popup
	Selected           int
	PlatformPopupIndex int
	Spinner            spinner.Model
	Keybinds           viewport.Model
}

// OptionsState holds the options-popup cursor positions plus the preference
// values edited there. DefaultSort is the persisted startup sort; editing it
// never touches the live sort state, it applies on the next session.
type OptionsState struct {
	Tab             OptionsTab
	RegionIndex     int
	PlatformIndex   int
	AdvancedIndex   int
	DefaultPlatform models.Platform
	Enabled         map[models.Platform]bool
	DefaultSort     SortState
}

// newOptionsState resolves persisted preferences, restoring the invariant
// that the default platform is either "All" or one of the enabled set.
func newOptionsState(cfg config.Settings) OptionsState {
	enabled := cfg.EnabledPlatformSet()
	if len(enabled) == 0 {
		for _, p := range models.AllPlatforms {
			enabled[p] = true
		}
	}
	def := cfg.DefaultPlatformValue()
	if def != models.PlatformAll && !enabled[def] {
		def = models.PlatformAll
	}
	return OptionsState{
		DefaultPlatform: def,
		Enabled:         enabled,
		DefaultSort: SortState{
			Criteria:  SortCriteriaFromName(cfg.DefaultSortCriteria),
			Direction: SortDirectionFromName(cfg.DefaultSortDirection),
		},
	}
}

// Model is the whole application state.
type Model struct {
	gateway Gateway

	deals             []models.Deal
	gameInfoCache     map[string]models.GameInfo
	priceHistoryCache map[string][]models.PriceHistoryPoint

	ui          UIState
	filter      FilterState
	searchQuery string // active title search, empty while browsing
	priceFilter PriceFilterState
	sortState   SortState

	platformFilter models.Platform
	region         models.Region

	pagination PaginationState
	loading    LoadingState
	options    OptionsState

	dealsPageSize   int
	gameInfoDelayMs int

	errMsg   string
	quitting bool

	width  int
	height int

	tasks *taskRunner
	anim  revealState
}

var spinnerFrames = spinner.Spinner{
	Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	FPS:    time.Second / 10,
}

// NewModel builds the initial model from persisted settings. The first load
// is issued by Init.
func NewModel(gw Gateway, cfg config.Settings) *Model {
	sp := spinner.New(spinner.WithSpinner(spinnerFrames))
	sp.Style = spinnerStyle

	opts := newOptionsState(cfg)
	return &Model{
		gateway:           gw,
		gameInfoCache:     make(map[string]models.GameInfo),
		priceHistoryCache: make(map[string][]models.PriceHistoryPoint),
		ui: UIState{
			Spinner:  sp,
			Keybinds: viewport.New(0, 0),
		},
		sortState:       opts.DefaultSort,
		platformFilter:  opts.DefaultPlatform,
		region:          cfg.RegionValue(),
		pagination:      PaginationState{HasMore: true},
		options:         opts,
		dealsPageSize:   cfg.DealsPageSize,
		gameInfoDelayMs: cfg.GameInfoDelayMs,
		tasks:           newTaskRunner(),
	}
}

// saveOptions writes the current preferences through to disk. Persistence
// failures are ignored; preferences still apply for the session.
func (m *Model) saveOptions() {
	enabled := make([]string, 0, len(m.options.Enabled))
	for _, p := range models.AllPlatforms {
		if m.options.Enabled[p] {
			enabled = append(enabled, p.Name())
		}
	}
	s := config.Load()
	s.DefaultPlatform = m.options.DefaultPlatform.Name()
	s.EnabledPlatforms = enabled
	s.Region = m.region.Code()
	s.DealsPageSize = m.dealsPageSize
	s.GameInfoDelayMs = m.gameInfoDelayMs
	s.DefaultSortCriteria = m.options.DefaultSort.Criteria.Name()
	s.DefaultSortDirection = m.options.DefaultSort.Direction.Name()
	_ = config.Save(s)
}

// isSearchMode reports whether a title search is active. Search results are
// a one-shot set: pagination is disabled until the search is cleared.
func (m *Model) isSearchMode() bool {
	return m.searchQuery != ""
}

// filteredDeals applies the platform and price filters, and in search mode
// the client-side sort, returning the list the table displays.
func (m *Model) filteredDeals() []models.Deal {
	shopID := ""
	if id, ok := m.platformFilter.ShopID(); ok {
		shopID = strconv.Itoa(id)
	}

	out := make([]models.Deal, 0, len(m.deals))
	for _, d := range m.deals {
		if shopID != "" && d.Shop.ID != shopID {
			continue
		}
		if !m.priceFilter.Matches(d.Price.Amount) {
			continue
		}
		out = append(out, d)
	}

	if m.isSearchMode() && m.sortState.Criteria.SupportsSearch() {
		sort.SliceStable(out, func(i, j int) bool {
			if m.sortState.Criteria == SortCut {
				return out[i].Price.Discount < out[j].Price.Discount
			}
			return out[i].Price.Amount < out[j].Price.Amount
		})
		if m.sortState.Direction == Descending {
			for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}

// selectedDeal returns the deal under the cursor, nil when the filtered list
// is empty.
func (m *Model) selectedDeal() *models.Deal {
	filtered := m.filteredDeals()
	if len(filtered) == 0 || m.ui.Selected >= len(filtered) {
		return nil
	}
	d := filtered[m.ui.Selected]
	return &d
}

func (m *Model) selectedGameInfo() (models.GameInfo, bool) {
	d := m.selectedDeal()
	if d == nil {
		return models.GameInfo{}, false
	}
	info, ok := m.gameInfoCache[d.ID]
	return info, ok
}

func (m *Model) selectedPriceHistory() ([]models.PriceHistoryPoint, bool) {
	d := m.selectedDeal()
	if d == nil {
		return nil, false
	}
	points, ok := m.priceHistoryCache[d.ID]
	return points, ok
}

// needsGameInfoLoad returns the selected game id when its metadata is
// neither cached nor already being fetched, empty otherwise.
func (m *Model) needsGameInfoLoad() string {
	d := m.selectedDeal()
	if d == nil {
		return ""
	}
	if _, cached := m.gameInfoCache[d.ID]; cached {
		return ""
	}
	if m.loading.GameInfo == d.ID {
		return ""
	}
	return d.ID
}

// needsPriceHistoryLoad mirrors needsGameInfoLoad for the history chart.
func (m *Model) needsPriceHistoryLoad() string {
	d := m.selectedDeal()
	if d == nil {
		return ""
	}
	if _, cached := m.priceHistoryCache[d.ID]; cached {
		return ""
	}
	if m.loading.PriceHistory == d.ID {
		return ""
	}
	return d.ID
}

// loadMoreThreshold is how close to the end of the list the cursor must be
// before the next page is requested.
const loadMoreThreshold = 10

// shouldLoadMore reports whether the cursor is near the end of the filtered
// list and another page can be fetched.
func (m *Model) shouldLoadMore() bool {
	if !m.pagination.HasMore || m.pagination.LoadingMore || m.loading.Deals {
		return false
	}
	filtered := m.filteredDeals()
	if len(filtered) == 0 {
		return false
	}
	return m.ui.Selected >= len(filtered)-loadMoreThreshold
}

// resetPagination clears the listing back to an empty first page.
func (m *Model) resetPagination() {
	m.deals = nil
	m.pagination = PaginationState{HasMore: true}
	m.ui.Selected = 0
}

// enabledPlatforms returns the platform-popup entries: "All" first, then the
// enabled platforms in canonical order.
func (m *Model) enabledPlatforms() []models.Platform {
	out := []models.Platform{models.PlatformAll}
	for _, p := range models.AllPlatforms {
		if p != models.PlatformAll && m.options.Enabled[p] {
			out = append(out, p)
		}
	}
	return out
}

// platformsWithoutAll is the options-popup platform list (the "All" sentinel
// cannot be disabled).
func platformsWithoutAll() []models.Platform {
	out := make([]models.Platform, 0, len(models.AllPlatforms)-1)
	for _, p := range models.AllPlatforms {
		if p != models.PlatformAll {
			out = append(out, p)
		}
	}
	return out
}

// optionsItemCount is the number of navigable rows on the current options
// tab. The platforms tab has one extra leading row for the default-platform
// cycler.
func (m *Model) optionsItemCount() int {
	switch m.options.Tab {
	case TabRegion:
		return len(models.AllRegions)
	case TabPlatforms:
		return 1 + len(platformsWithoutAll())
	case TabAdvanced:
		return 3
	default:
		return 0
	}
}

func (m *Model) optionsItemIndex() int {
	switch m.options.Tab {
	case TabRegion:
		return m.options.RegionIndex
	case TabPlatforms:
		return m.options.PlatformIndex
	default:
		return m.options.AdvancedIndex
	}
}

func (m *Model) setOptionsItemIndex(i int) {
	switch m.options.Tab {
	case TabRegion:
		m.options.RegionIndex = i
	case TabPlatforms:
		m.options.PlatformIndex = i
	default:
		m.options.AdvancedIndex = i
	}
}

func (m *Model) clearError() {
	m.errMsg = ""
}
