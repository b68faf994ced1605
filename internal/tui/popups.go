package tui

import (
	"fmt"
	"strings"

	"github.com/dealve/dealve/internal/models"
)

var asciiLogo = []string{
	"██████╗ ███████╗ █████╗ ██╗    ██╗   ██╗███████╗",
	"██╔══██╗██╔════╝██╔══██╗██║    ██║   ██║██╔════╝",
	"██║  ██║█████╗  ███████║██║    ██║   ██║█████╗  ",
	"██║  ██║██╔══╝  ██╔══██║██║    ╚██╗ ██╔╝██╔══╝  ",
	"██████╔╝███████╗██║  ██║███████╗╚████╔╝ ███████╗",
	"╚═════╝ ╚══════╝╚═╝  ╚═╝╚══════╝ ╚═══╝  ╚══════╝",
}

func (m *Model) menuView() string {
	var b strings.Builder
	for _, line := range asciiLogo {
		b.WriteString(titleStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for i, item := range menuItems {
		if i == m.ui.MenuSelected {
			b.WriteString(selectedRowStyle.Render("  " + item.Name() + "  "))
		} else {
			b.WriteString(textStyle.Render("  " + item.Name() + "  "))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("j/k move · enter select · q quit · esc close"))
	return popupStyle.Render(b.String())
}

func (m *Model) platformPopupView() string {
	choices := m.enabledPlatforms()

	var b strings.Builder
	b.WriteString(titleStyle.Render("PLATFORM"))
	b.WriteString("\n\n")
	for i, p := range choices {
		marker := "  "
		if p == m.platformFilter {
			marker = "● "
		}
		line := marker + p.Name()
		if i == m.ui.PlatformPopupIndex {
			b.WriteString(selectedRowStyle.Render(line))
		} else {
			b.WriteString(textStyle.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter select · esc cancel"))
	return popupStyle.Render(b.String())
}

func (m *Model) optionsPopupView() string {
	var tabs []string
	for _, t := range optionsTabs {
		if t == m.options.Tab {
			tabs = append(tabs, selectedRowStyle.Render(" "+t.Name()+" "))
		} else {
			tabs = append(tabs, textStyle.Render(" "+t.Name()+" "))
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("OPTIONS"))
	b.WriteString("  ")
	b.WriteString(strings.Join(tabs, dimStyle.Render("│")))
	b.WriteString("\n\n")

	switch m.options.Tab {
	case TabRegion:
		b.WriteString(m.regionTabView())
	case TabPlatforms:
		b.WriteString(m.platformsTabView())
	case TabAdvanced:
		b.WriteString(m.advancedTabView())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("tab switch · j/k move · enter toggle · esc close"))
	return popupStyle.Render(b.String())
}

// regionTabView shows a window of the region list around the cursor so the
// popup height stays bounded.
func (m *Model) regionTabView() string {
	const visible = 12
	start := 0
	if m.options.RegionIndex >= visible {
		start = m.options.RegionIndex - visible + 1
	}

	var b strings.Builder
	for i := start; i < len(models.AllRegions) && i < start+visible; i++ {
		r := models.AllRegions[i]
		marker := "  "
		if r == m.region {
			marker = "● "
		}
		line := fmt.Sprintf("%s%s  %s", marker, r.Code(), r.Name())
		if i == m.options.RegionIndex {
			b.WriteString(selectedRowStyle.Render(line))
		} else {
			b.WriteString(textStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) platformsTabView() string {
	const visible = 14
	platforms := platformsWithoutAll()

	var b strings.Builder
	defLine := "Default platform: " + m.options.DefaultPlatform.Name()
	if m.options.PlatformIndex == 0 {
		b.WriteString(selectedRowStyle.Render(defLine))
	} else {
		b.WriteString(valueStyle.Render(defLine))
	}
	b.WriteString("\n\n")

	start := 0
	if m.options.PlatformIndex-1 >= visible {
		start = m.options.PlatformIndex - visible
	}
	for i := start; i < len(platforms) && i < start+visible; i++ {
		p := platforms[i]
		check := "[ ] "
		if m.options.Enabled[p] {
			check = "[x] "
		}
		line := check + p.Name()
		if m.options.PlatformIndex == i+1 {
			b.WriteString(selectedRowStyle.Render(line))
		} else {
			b.WriteString(textStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) advancedTabView() string {
	rows := []string{
		fmt.Sprintf("Default sort      %s %s", m.options.DefaultSort.Criteria.Name(), m.options.DefaultSort.Direction.Arrow()),
		fmt.Sprintf("Page size         %d", m.dealsPageSize),
		fmt.Sprintf("Details delay     %d ms", m.gameInfoDelayMs),
	}

	var b strings.Builder
	for i, row := range rows {
		if i == m.options.AdvancedIndex {
			b.WriteString(selectedRowStyle.Render(row))
		} else {
			b.WriteString(textStyle.Render(row))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("s toggles sort direction on the sort row"))
	return b.String()
}

func (m *Model) keybindsPopupView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("KEYBINDS"))
	b.WriteString("\n\n")
	b.WriteString(m.ui.Keybinds.View())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("j/k scroll · esc close"))
	return popupStyle.Render(b.String())
}

func keybindsContent() string {
	bindings := [][2]string{
		{"j / ↓", "next deal"},
		{"k / ↑", "previous deal"},
		{"enter", "open deal in browser"},
		{"f", "search titles"},
		{"c", "clear search"},
		{"p", "platform filter"},
		{"$", "price filter"},
		{"← / →", "sort criteria"},
		{"s", "sort direction"},
		{"r", "refresh"},
		{"esc / q", "menu"},
		{"ctrl+c", "quit"},
	}

	var b strings.Builder
	for _, kb := range bindings {
		b.WriteString(shortcutStyle.Render(padRight(kb[0], 10)))
		b.WriteString(textStyle.Render(kb[1]))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) priceFilterPopupView() string {
	minField := m.priceFilter.MinInput
	maxField := m.priceFilter.MaxInput
	if m.priceFilter.SelectedField == 0 {
		minField += "_"
	} else {
		maxField += "_"
	}

	renderField := func(label, value string, selected bool) string {
		line := padRight(label, 6) + "[" + padRight(value, priceInputMaxLen+1) + "]"
		if selected {
			return selectedRowStyle.Render(line)
		}
		return textStyle.Render(line)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("PRICE RANGE"))
	b.WriteString("\n\n")
	b.WriteString(renderField("Min", minField, m.priceFilter.SelectedField == 0))
	b.WriteString("\n")
	b.WriteString(renderField("Max", maxField, m.priceFilter.SelectedField == 1))
	b.WriteString("\n\n")
	if m.priceFilter.IsActive() {
		b.WriteString(textStyle.Render("Active: " + m.priceFilter.Label()))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("tab switch · enter apply · c clear · esc cancel"))
	return popupStyle.Render(b.String())
}

func popupInnerWidth(total int) int {
	w := total - 20
	if w < 24 {
		w = 24
	}
	if w > 60 {
		w = 60
	}
	return w
}

func popupInnerHeight(total int) int {
	h := total - 10
	if h < 6 {
		h = 6
	}
	if h > 20 {
		h = 20
	}
	return h
}
