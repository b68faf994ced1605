package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dealve/dealve/internal/models"
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	switch {
	case m.ui.Popup == PopupPlatform:
		return m.centered(m.platformPopupView())
	case m.ui.Popup == PopupOptions:
		return m.centered(m.optionsPopupView())
	case m.ui.Popup == PopupKeybinds:
		return m.centered(m.keybindsPopupView())
	case m.ui.Popup == PopupPriceFilter:
		return m.centered(m.priceFilterPopupView())
	case m.ui.ShowMenu:
		return m.centered(m.menuView())
	}

	listWidth := m.width * 3 / 5
	detailWidth := m.width - listWidth
	bodyHeight := m.height - 2 // status line and header

	list := m.dealsListView(listWidth, bodyHeight)
	details := m.detailsView(detailWidth, bodyHeight)

	body := lipgloss.JoinHorizontal(lipgloss.Top, list, details)
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), body, m.statusLineView())
}

func (m *Model) centered(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) headerView() string {
	title := titleStyle.Render(" DEALVE ")
	context := textStyle.Render(fmt.Sprintf("%s · %s", m.region.Name(), m.platformFilter.Name()))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, context)
}

// dealsListView renders the filtered listing with the selection counter in
// its header row. While the reveal animation runs, rows fade in from the
// top.
func (m *Model) dealsListView(width, height int) string {
	inner := width - 4 // border and padding
	rows := height - 5 // border, header row, column row
	if rows < 1 {
		rows = 1
	}

	filtered := m.filteredDeals()
	now := time.Now()

	var b strings.Builder
	b.WriteString(m.listHeaderRow(inner, len(filtered)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(padRight("TITLE", inner-30) + padRight("PRICE", 10) + padRight("DEAL", 8) + "ATL"))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(truncate(m.errMsg, inner)))
		b.WriteString("\n")
		b.WriteString(textStyle.Render("press ") + shortcutStyle.Render("r") + textStyle.Render(" to retry"))
	} else if len(filtered) == 0 {
		if m.loading.Deals {
			b.WriteString(textStyle.Render("Loading deals " + m.ui.Spinner.View()))
		} else {
			b.WriteString(textStyle.Render("No deals match the current filters"))
		}
	} else {
		start := 0
		if m.ui.Selected >= rows {
			start = m.ui.Selected - rows + 1
		}
		revealed := len(filtered)
		if m.anim.active(now) {
			revealed = int(m.anim.progress(now) * float64(len(filtered)))
			if revealed <= m.ui.Selected {
				revealed = m.ui.Selected + 1
			}
		}
		for i := start; i < len(filtered) && i < start+rows; i++ {
			if i >= revealed {
				break
			}
			b.WriteString(m.dealRow(filtered[i], inner, i == m.ui.Selected, rowProgress(m.anim, now, i, len(filtered))))
			if i < start+rows-1 {
				b.WriteString("\n")
			}
		}
	}

	return panelStyle.Width(width - 2).Height(height - 2).Render(b.String())
}

// rowProgress staggers the fade so rows near the top finish first.
func rowProgress(a revealState, now time.Time, row, total int) float64 {
	if !a.active(now) || total == 0 {
		return 1
	}
	p := a.progress(now)*float64(total) - float64(row)
	if p > 1 {
		p = 1
	}
	if p < 0 {
		p = 0
	}
	return p
}

func (m *Model) listHeaderRow(width, shown int) string {
	left := titleStyle.Render("DEALS")

	counter := fmt.Sprintf("%d/%d", min(m.ui.Selected+1, shown), shown)
	if m.pagination.HasMore && !m.isSearchMode() {
		counter += "+"
	}
	if m.loading.Deals || m.pagination.LoadingMore {
		counter += " " + m.ui.Spinner.View()
	}
	if m.isSearchMode() {
		counter = "search: " + m.searchQuery + "  " + counter
	}
	right := textStyle.Render(counter)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) dealRow(d models.Deal, width int, selected bool, progress float64) string {
	titleWidth := width - 30
	if titleWidth < 10 {
		titleWidth = 10
	}

	price := fmt.Sprintf("%s%.2f", d.Price.CurrencySymbol(), d.Price.Amount)
	cut := ""
	if d.Price.Discount > 0 {
		cut = fmt.Sprintf("-%d%%", d.Price.Discount)
	}
	atl := ""
	if d.IsAllTimeLow() {
		atl = "ATL"
	}

	if selected {
		line := padRight("▸ "+truncate(d.Title, titleWidth-2), titleWidth) +
			padRight(price, 10) + padRight(cut, 8) + atl
		return selectedRowStyle.Render(padRight(line, width))
	}

	row := revealStyle(progress).Render(padRight(truncate(d.Title, titleWidth), titleWidth)) +
		valueStyle.Render(padRight(price, 10)) +
		discountStyle(d.Price.Discount).Render(padRight(cut, 8))
	if atl != "" {
		row += atlStyle.Render(atl)
	}
	return row
}

// statusLineView is the shortcut bar: each segment shows its key in the
// accent color with the current value where one applies.
func (m *Model) statusLineView() string {
	sep := dimStyle.Render(" │ ")
	var segments []string

	switch {
	case m.filter.Editing:
		segments = append(segments, shortcutStyle.Render("f ")+valueStyle.Render(m.filter.Text+"_")+shortcutStyle.Render(" ⏎"))
	case m.searchQuery != "":
		segments = append(segments, shortcutStyle.Render("f")+valueStyle.Render("["+m.searchQuery+"] ")+shortcutStyle.Render("c")+textStyle.Render("lear"))
	default:
		segments = append(segments, shortcutStyle.Render("f")+textStyle.Render("ilter"))
	}

	segments = append(segments, shortcutStyle.Render("p")+textStyle.Render("latform"))

	price := shortcutStyle.Render("$")
	if m.priceFilter.IsActive() {
		price += valueStyle.Render("[" + m.priceFilter.Label() + "]")
	}
	segments = append(segments, price)

	segments = append(segments,
		shortcutStyle.Render("s")+textStyle.Render("ort[")+
			shortcutStyle.Render("←")+
			valueStyle.Render(m.sortState.Criteria.Name()+m.sortState.Direction.Arrow())+
			shortcutStyle.Render("→")+textStyle.Render("]"))

	if m.isSearchMode() {
		segments = append(segments, textStyle.Render("API-search"))
	}

	segments = append(segments, shortcutStyle.Render("r")+textStyle.Render("efresh"))
	segments = append(segments, shortcutStyle.Render("esc")+textStyle.Render(" menu"))

	return " " + strings.Join(segments, sep)
}

func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= w {
		return s
	}
	if w <= 1 {
		return string(runes[:w])
	}
	return string(runes[:w-1]) + "…"
}

func padRight(s string, w int) string {
	gap := w - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
