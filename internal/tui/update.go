package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"

	"github.com/dealve/dealve/internal/models"
)

// updateResult is what one reducer step produces besides the mutated model:
// an optional follow-up message, whether the listing must be refetched, and
// whether the cursor moved (which restarts the metadata debounce).
type updateResult struct {
	chain            tea.Msg
	needsReload      bool
	selectionChanged bool
}

// maxChainDepth bounds chained messages so a reducer bug cannot loop the UI.
const maxChainDepth = 8

// Heartbeat intervals: fast while the reveal animation runs, relaxed
// otherwise.
const (
	heartbeatIdle = 50 * time.Millisecond
	heartbeatFast = 16 * time.Millisecond
)

func heartbeat(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) heartbeatInterval(now time.Time) time.Duration {
	if m.anim.active(now) {
		return heartbeatFast
	}
	return heartbeatIdle
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.ui.Spinner.Tick, heartbeat(heartbeatIdle), m.tasks.startLoad(m))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		appMsg := m.mapKey(msg)
		if appMsg == nil {
			return m, nil
		}
		return m, m.dispatch(appMsg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ui.Keybinds.Width = popupInnerWidth(msg.Width)
		m.ui.Keybinds.Height = popupInnerHeight(msg.Height)
		m.ui.Keybinds.SetContent(keybindsContent())
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.ui.Spinner, cmd = m.ui.Spinner.Update(msg)
		return m, cmd

	case tickMsg:
		now := time.Time(msg)
		cmds := m.tasks.onTick(m, now)
		cmds = append(cmds, heartbeat(m.heartbeatInterval(now)))
		return m, tea.Batch(cmds...)

	default:
		return m, m.dispatch(msg)
	}
}

// dispatch runs the reducer, draining chained messages, and turns the
// accumulated effects into commands.
func (m *Model) dispatch(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	reload := false
	for depth := 0; msg != nil && depth < maxChainDepth; depth++ {
		res := apply(m, msg)
		if res.selectionChanged {
			m.tasks.noteSelectionChange(time.Now())
		}
		reload = reload || res.needsReload
		msg = res.chain
	}
	if reload {
		cmds = append(cmds, m.tasks.startLoad(m))
	}
	if m.quitting {
		cmds = append(cmds, tea.Quit)
	}
	return tea.Batch(cmds...)
}

// apply is the reducer: every state transition lives here.
func apply(m *Model, msg tea.Msg) updateResult {
	switch msg := msg.(type) {

	case selectNextMsg:
		count := len(m.filteredDeals())
		if count == 0 {
			return updateResult{}
		}
		m.ui.Selected = (m.ui.Selected + 1) % count
		return updateResult{selectionChanged: true}

	case selectPreviousMsg:
		count := len(m.filteredDeals())
		if count == 0 {
			return updateResult{}
		}
		m.ui.Selected = (m.ui.Selected + count - 1) % count
		return updateResult{selectionChanged: true}

	case openDealMsg:
		if d := m.selectedDeal(); d != nil && d.URL != "" {
			_ = browser.OpenURL(d.URL)
		}
		return updateResult{}

	case requestRefreshMsg:
		return updateResult{needsReload: true}

	case toggleMenuMsg:
		m.ui.ShowMenu = !m.ui.ShowMenu
		if m.ui.ShowMenu {
			m.ui.MenuSelected = 0
		}
		return updateResult{}

	case menuNextMsg:
		m.ui.MenuSelected = (m.ui.MenuSelected + 1) % len(menuItems)
		return updateResult{}

	case menuPrevMsg:
		m.ui.MenuSelected = (m.ui.MenuSelected + len(menuItems) - 1) % len(menuItems)
		return updateResult{}

	case menuSelectMsg:
		switch menuItems[m.ui.MenuSelected] {
		case MenuBrowse:
			m.ui.ShowMenu = false
		case MenuOptions:
			m.ui.ShowMenu = false
			m.ui.Popup = PopupOptions
			m.options.Tab = TabRegion
			m.options.RegionIndex = 0
			m.options.PlatformIndex = 0
			m.options.AdvancedIndex = 0
		case MenuKeybinds:
			m.ui.ShowMenu = false
			m.ui.Popup = PopupKeybinds
			m.ui.Keybinds.GotoTop()
		case MenuQuit:
			return updateResult{chain: quitMsg{}}
		}
		return updateResult{}

	case quitMsg:
		m.quitting = true
		return updateResult{}

	case startFilterMsg:
		m.filter.Editing = true
		m.filter.Text = m.searchQuery
		return updateResult{}

	case cancelFilterMsg:
		m.filter.Editing = false
		m.filter.Text = ""
		return updateResult{}

	case confirmFilterMsg:
		m.filter.Editing = false
		query := strings.TrimSpace(m.filter.Text)
		m.filter.Text = query
		if query == m.searchQuery {
			return updateResult{}
		}
		m.searchQuery = query
		if query != "" && !m.sortState.Criteria.SupportsSearch() {
			m.sortState.Criteria = SortPrice
		}
		return updateResult{needsReload: true}

	case filterPushMsg:
		if m.filter.Editing {
			m.filter.Text += string(msg.ch)
			m.ui.Selected = 0
			return updateResult{selectionChanged: true}
		}
		return updateResult{}

	case filterPopMsg:
		if m.filter.Editing && len(m.filter.Text) > 0 {
			runes := []rune(m.filter.Text)
			m.filter.Text = string(runes[:len(runes)-1])
			m.ui.Selected = 0
			return updateResult{selectionChanged: true}
		}
		return updateResult{}

	case clearFiltersMsg:
		hadSearch := m.searchQuery != ""
		m.searchQuery = ""
		m.filter = FilterState{}
		return updateResult{needsReload: hadSearch}

	case openPriceFilterMsg:
		m.ui.Popup = PopupPriceFilter
		m.priceFilter.SelectedField = 0
		return updateResult{}

	case priceFilterSwitchFieldMsg:
		m.priceFilter.SelectedField = 1 - m.priceFilter.SelectedField
		return updateResult{}

	case priceFilterPushMsg:
		m.priceFilter.push(msg.ch)
		return updateResult{}

	case priceFilterPopMsg:
		m.priceFilter.pop()
		return updateResult{}

	case priceFilterApplyMsg:
		m.priceFilter.apply()
		m.ui.Popup = PopupNone
		m.ui.Selected = 0
		return updateResult{selectionChanged: true}

	case priceFilterClearMsg:
		m.priceFilter.clear()
		m.ui.Popup = PopupNone
		m.ui.Selected = 0
		return updateResult{selectionChanged: true}

	case openPlatformPopupMsg:
		m.ui.Popup = PopupPlatform
		m.ui.PlatformPopupIndex = 0
		for i, p := range m.enabledPlatforms() {
			if p == m.platformFilter {
				m.ui.PlatformPopupIndex = i
				break
			}
		}
		return updateResult{}

	case platformPopupNextMsg:
		count := len(m.enabledPlatforms())
		m.ui.PlatformPopupIndex = (m.ui.PlatformPopupIndex + 1) % count
		return updateResult{}

	case platformPopupPrevMsg:
		count := len(m.enabledPlatforms())
		m.ui.PlatformPopupIndex = (m.ui.PlatformPopupIndex + count - 1) % count
		return updateResult{}

	case platformPopupSelectMsg:
		choices := m.enabledPlatforms()
		if m.ui.PlatformPopupIndex >= len(choices) {
			m.ui.PlatformPopupIndex = 0
		}
		chosen := choices[m.ui.PlatformPopupIndex]
		m.ui.Popup = PopupNone
		if chosen == m.platformFilter {
			return updateResult{}
		}
		m.platformFilter = chosen
		return updateResult{needsReload: true}

	case toggleSortDirectionMsg:
		m.sortState.Direction = m.sortState.Direction.Toggle()
		if m.isSearchMode() {
			m.ui.Selected = 0
			return updateResult{selectionChanged: true}
		}
		return updateResult{needsReload: true}

	case nextSortCriteriaMsg:
		if m.isSearchMode() {
			m.sortState.Criteria = m.sortState.Criteria.ToggleSearch()
			m.ui.Selected = 0
			return updateResult{selectionChanged: true}
		}
		m.sortState.Criteria = m.sortState.Criteria.Next()
		return updateResult{needsReload: true}

	case prevSortCriteriaMsg:
		if m.isSearchMode() {
			m.sortState.Criteria = m.sortState.Criteria.ToggleSearch()
			m.ui.Selected = 0
			return updateResult{selectionChanged: true}
		}
		m.sortState.Criteria = m.sortState.Criteria.Prev()
		return updateResult{needsReload: true}

	case closePopupMsg:
		if m.ui.Popup == PopupOptions {
			m.options.RegionIndex = 0
			m.options.PlatformIndex = 0
			m.options.AdvancedIndex = 0
		}
		m.ui.Popup = PopupNone
		return updateResult{}

	case optionsNextTabMsg:
		m.options.Tab = optionsTabs[(int(m.options.Tab)+1)%len(optionsTabs)]
		m.setOptionsItemIndex(0)
		return updateResult{}

	case optionsPrevTabMsg:
		m.options.Tab = optionsTabs[(int(m.options.Tab)+len(optionsTabs)-1)%len(optionsTabs)]
		m.setOptionsItemIndex(0)
		return updateResult{}

	case optionsNextItemMsg:
		count := m.optionsItemCount()
		if count > 0 {
			m.setOptionsItemIndex((m.optionsItemIndex() + 1) % count)
		}
		return updateResult{}

	case optionsPrevItemMsg:
		count := m.optionsItemCount()
		if count > 0 {
			m.setOptionsItemIndex((m.optionsItemIndex() + count - 1) % count)
		}
		return updateResult{}

	case optionsToggleItemMsg:
		return applyOptionsToggle(m)

	case optionsToggleSortDirMsg:
		// Edits the persisted default only; the live sort is untouched.
		if m.options.Tab == TabAdvanced && m.options.AdvancedIndex == 0 {
			m.options.DefaultSort.Direction = m.options.DefaultSort.Direction.Toggle()
			m.saveOptions()
		}
		return updateResult{}

	case dealsLoadedMsg:
		if msg.gen != m.tasks.generation() {
			return updateResult{}
		}
		m.tasks.finishPrimary()
		if !msg.isMore {
			m.pagination.HasMore = false
		}
		m.deals = msg.deals
		m.pagination.Offset = msg.pageSize
		m.pagination.LoadingMore = false
		m.ui.Selected = 0
		m.loading.Deals = false
		m.clearError()
		m.anim.start(time.Now())
		return updateResult{selectionChanged: true}

	case moreDealsLoadedMsg:
		if msg.gen != m.tasks.generation() {
			return updateResult{}
		}
		m.tasks.finishMore()
		if !msg.isMore {
			m.pagination.HasMore = false
		}
		m.deals = append(m.deals, msg.deals...)
		m.pagination.Offset += msg.pageSize
		m.pagination.LoadingMore = false
		m.clearError()
		return updateResult{}

	case dealsLoadFailedMsg:
		if msg.gen != m.tasks.generation() {
			return updateResult{}
		}
		m.tasks.finishPrimary()
		m.tasks.finishMore()
		m.errMsg = msg.err
		m.loading.Deals = false
		m.pagination.LoadingMore = false
		return updateResult{}

	case gameInfoLoadedMsg:
		if msg.ok {
			m.gameInfoCache[msg.id] = msg.info
		}
		if m.loading.GameInfo == msg.id {
			m.loading.GameInfo = ""
		}
		return updateResult{}

	case priceHistoryLoadedMsg:
		m.priceHistoryCache[msg.id] = msg.points
		if m.loading.PriceHistory == msg.id {
			m.loading.PriceHistory = ""
		}
		return updateResult{}

	default:
		return updateResult{}
	}
}

// applyOptionsToggle handles Enter/Space on the current options row.
func applyOptionsToggle(m *Model) updateResult {
	res := updateResult{}
	switch m.options.Tab {
	case TabRegion:
		if m.options.RegionIndex < len(models.AllRegions) {
			chosen := models.AllRegions[m.options.RegionIndex]
			if chosen != m.region {
				m.region = chosen
				m.ui.Popup = PopupNone
				res.needsReload = true
			}
		}

	case TabPlatforms:
		if m.options.PlatformIndex == 0 {
			// Cycle the default platform through "All" plus the enabled set.
			choices := m.enabledPlatforms()
			next := 0
			for i, p := range choices {
				if p == m.options.DefaultPlatform {
					next = (i + 1) % len(choices)
					break
				}
			}
			m.options.DefaultPlatform = choices[next]
			m.platformFilter = choices[next]
		} else {
			platforms := platformsWithoutAll()
			idx := m.options.PlatformIndex - 1
			if idx < len(platforms) {
				p := platforms[idx]
				m.options.Enabled[p] = !m.options.Enabled[p]
				if !m.options.Enabled[p] {
					if m.options.DefaultPlatform == p {
						m.options.DefaultPlatform = models.PlatformAll
					}
					if m.platformFilter == p {
						m.platformFilter = models.PlatformAll
					}
				}
			}
		}

	case TabAdvanced:
		switch m.options.AdvancedIndex {
		case 0:
			// Default sort for the next session, not the live listing.
			m.options.DefaultSort.Criteria = m.options.DefaultSort.Criteria.Next()
		case 1:
			m.dealsPageSize = nextInCycle(m.dealsPageSize, []int{25, 50, 100, 200})
		case 2:
			m.gameInfoDelayMs = nextInCycle(m.gameInfoDelayMs, []int{100, 200, 300, 500})
		}
	}
	m.saveOptions()
	return res
}

// nextInCycle advances through the allowed values, snapping unknown current
// values to the first entry.
func nextInCycle(current int, values []int) int {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}
