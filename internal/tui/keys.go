package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// mapKey translates a key press into an application message. Overlays take
// priority over each other and over the main view: platform popup, options,
// keybinds, price filter, then the menu, then filter typing, then the main
// bindings. A nil result means the key does nothing in the current context.
func (m *Model) mapKey(msg tea.KeyMsg) tea.Msg {
	switch {
	case m.ui.Popup == PopupPlatform:
		return platformPopupKey(msg)
	case m.ui.Popup == PopupOptions:
		return optionsKey(msg)
	case m.ui.Popup == PopupKeybinds:
		return m.keybindsKey(msg)
	case m.ui.Popup == PopupPriceFilter:
		return priceFilterKey(msg)
	case m.ui.ShowMenu:
		return menuKey(msg)
	case m.filter.Editing:
		return filterKey(msg)
	default:
		return mainKey(msg)
	}
}

func platformPopupKey(msg tea.KeyMsg) tea.Msg {
	switch msg.String() {
	case "j", "down":
		return platformPopupNextMsg{}
	case "k", "up":
		return platformPopupPrevMsg{}
	case "enter":
		return platformPopupSelectMsg{}
	case "esc", "q", "p":
		return closePopupMsg{}
	}
	return nil
}

func optionsKey(msg tea.KeyMsg) tea.Msg {
	switch msg.String() {
	case "tab", "right":
		return optionsNextTabMsg{}
	case "shift+tab", "left":
		return optionsPrevTabMsg{}
	case "j", "down":
		return optionsNextItemMsg{}
	case "k", "up":
		return optionsPrevItemMsg{}
	case "s":
		return optionsToggleSortDirMsg{}
	case "enter", " ":
		return optionsToggleItemMsg{}
	case "esc", "q":
		return closePopupMsg{}
	}
	return nil
}

// keybindsKey scrolls the reference viewport directly; only closing emits a
// message.
func (m *Model) keybindsKey(msg tea.KeyMsg) tea.Msg {
	switch msg.String() {
	case "j", "down":
		m.ui.Keybinds.LineDown(1)
	case "k", "up":
		m.ui.Keybinds.LineUp(1)
	case "esc", "q", "enter":
		return closePopupMsg{}
	}
	return nil
}

func priceFilterKey(msg tea.KeyMsg) tea.Msg {
	switch msg.String() {
	case "tab", "up", "down":
		return priceFilterSwitchFieldMsg{}
	case "backspace":
		return priceFilterPopMsg{}
	case "enter":
		return priceFilterApplyMsg{}
	case "c":
		return priceFilterClearMsg{}
	case "esc":
		return closePopupMsg{}
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
		return priceFilterPushMsg{ch: msg.Runes[0]}
	}
	return nil
}

func menuKey(msg tea.KeyMsg) tea.Msg {
	switch msg.String() {
	case "j", "down":
		return menuNextMsg{}
	case "k", "up":
		return menuPrevMsg{}
	case "enter":
		return menuSelectMsg{}
	case "q":
		return quitMsg{}
	case "esc":
		return toggleMenuMsg{}
	}
	return nil
}

func filterKey(msg tea.KeyMsg) tea.Msg {
	switch msg.String() {
	case "esc":
		return cancelFilterMsg{}
	case "enter":
		return confirmFilterMsg{}
	case "backspace":
		return filterPopMsg{}
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
		return filterPushMsg{ch: msg.Runes[0]}
	}
	if msg.Type == tea.KeySpace {
		return filterPushMsg{ch: ' '}
	}
	return nil
}

func mainKey(msg tea.KeyMsg) tea.Msg {
	switch msg.String() {
	case "esc", "q":
		return toggleMenuMsg{}
	case "j", "down":
		return selectNextMsg{}
	case "k", "up":
		return selectPreviousMsg{}
	case "p":
		return openPlatformPopupMsg{}
	case "f":
		return startFilterMsg{}
	case "enter":
		return openDealMsg{}
	case "r":
		return requestRefreshMsg{}
	case "s":
		return toggleSortDirectionMsg{}
	case "left":
		return prevSortCriteriaMsg{}
	case "right":
		return nextSortCriteriaMsg{}
	case "c":
		return clearFiltersMsg{}
	case "$":
		return openPriceFilterMsg{}
	}
	return nil
}
