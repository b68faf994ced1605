package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMapKey_MainViewBindings(t *testing.T) {
	m := CreateTestModel(t)

	cases := []struct {
		key  string
		want tea.Msg
	}{
		{"j", selectNextMsg{}},
		{"down", selectNextMsg{}},
		{"k", selectPreviousMsg{}},
		{"up", selectPreviousMsg{}},
		{"p", openPlatformPopupMsg{}},
		{"f", startFilterMsg{}},
		{"enter", openDealMsg{}},
		{"r", requestRefreshMsg{}},
		{"s", toggleSortDirectionMsg{}},
		{"left", prevSortCriteriaMsg{}},
		{"right", nextSortCriteriaMsg{}},
		{"c", clearFiltersMsg{}},
		{"$", openPriceFilterMsg{}},
		{"esc", toggleMenuMsg{}},
		{"q", toggleMenuMsg{}},
	}
	for _, c := range cases {
		if got := m.mapKey(keyMsg(c.key)); got != c.want {
			t.Errorf("mapKey(%q) = %T, want %T", c.key, got, c.want)
		}
	}
}

func TestMapKey_FilterEditingCapturesText(t *testing.T) {
	m := CreateTestModel(t)
	m.filter.Editing = true

	if got := m.mapKey(keyMsg("j")); got != (filterPushMsg{ch: 'j'}) {
		t.Errorf("typing j while filtering = %T %v", got, got)
	}
	if got := m.mapKey(keyMsg("enter")); got != (confirmFilterMsg{}) {
		t.Errorf("enter while filtering = %T", got)
	}
	if got := m.mapKey(keyMsg("esc")); got != (cancelFilterMsg{}) {
		t.Errorf("esc while filtering = %T", got)
	}
	if got := m.mapKey(keyMsg("backspace")); got != (filterPopMsg{}) {
		t.Errorf("backspace while filtering = %T", got)
	}
}

func TestMapKey_MenuTakesPriorityOverMainView(t *testing.T) {
	m := CreateTestModel(t)
	m.ui.ShowMenu = true

	if got := m.mapKey(keyMsg("j")); got != (menuNextMsg{}) {
		t.Errorf("j in menu = %T, want menuNextMsg", got)
	}
	if got := m.mapKey(keyMsg("enter")); got != (menuSelectMsg{}) {
		t.Errorf("enter in menu = %T, want menuSelectMsg", got)
	}
	if got := m.mapKey(keyMsg("q")); got != (quitMsg{}) {
		t.Errorf("q in menu = %T, want quitMsg", got)
	}
	if got := m.mapKey(keyMsg("esc")); got != (toggleMenuMsg{}) {
		t.Errorf("esc in menu = %T, want toggleMenuMsg", got)
	}
}

func TestMapKey_PopupPriorityOverMenuAndFilter(t *testing.T) {
	m := CreateTestModel(t)
	m.ui.ShowMenu = true
	m.filter.Editing = true
	m.ui.Popup = PopupPlatform

	if got := m.mapKey(keyMsg("j")); got != (platformPopupNextMsg{}) {
		t.Errorf("j with platform popup = %T, want platformPopupNextMsg", got)
	}

	m.ui.Popup = PopupOptions
	if got := m.mapKey(keyMsg("tab")); got != (optionsNextTabMsg{}) {
		t.Errorf("tab with options popup = %T, want optionsNextTabMsg", got)
	}
	if got := m.mapKey(keyMsg("s")); got != (optionsToggleSortDirMsg{}) {
		t.Errorf("s with options popup = %T, want optionsToggleSortDirMsg", got)
	}

	m.ui.Popup = PopupPriceFilter
	if got := m.mapKey(keyMsg("5")); got != (priceFilterPushMsg{ch: '5'}) {
		t.Errorf("digit with price popup = %T %v", got, got)
	}
	if got := m.mapKey(keyMsg("c")); got != (priceFilterClearMsg{}) {
		t.Errorf("c with price popup = %T, want priceFilterClearMsg", got)
	}
}

func TestMapKey_UnboundKeyDoesNothing(t *testing.T) {
	m := CreateTestModel(t)
	if got := m.mapKey(keyMsg("z")); got != nil {
		t.Errorf("unbound key = %T, want nil", got)
	}
}
