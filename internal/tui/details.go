package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dealve/dealve/internal/models"
)

// detailsView renders the right-hand pane: the selected deal, its metadata
// once the debounced fetch lands, and the price history chart.
func (m *Model) detailsView(width, height int) string {
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	d := m.selectedDeal()
	if d == nil {
		return panelStyle.Width(width - 2).Height(height - 2).
			Render(textStyle.Render("No deal selected"))
	}

	var b strings.Builder
	title := titleStyle.Render(truncate(d.Title, inner))
	if d.IsAllTimeLow() {
		title += " " + atlStyle.Render("[ALL-TIME LOW]")
	}
	b.WriteString(title)
	b.WriteString("\n\n")

	b.WriteString(m.metadataLines(d, inner))
	b.WriteString("\n")
	b.WriteString(textStyle.Render("Shop       ") + valueStyle.Render(d.Shop.Name))
	b.WriteString("\n\n")

	b.WriteString(m.priceLines(d))
	b.WriteString("\n\n")
	b.WriteString(m.chartView(d, inner))

	return panelStyle.Width(width - 2).Height(height - 2).Render(b.String())
}

func (m *Model) metadataLines(d *models.Deal, width int) string {
	info, ok := m.gameInfoCache[d.ID]
	if !ok {
		if m.loading.GameInfo == d.ID || m.tasks.pendingGameInfo {
			return textStyle.Render("Loading details " + m.ui.Spinner.View())
		}
		return dimStyle.Render("No details available")
	}

	var b strings.Builder
	if info.ReleaseDate != "" {
		b.WriteString(textStyle.Render("Released   ") + valueStyle.Render(info.ReleaseDate) + "\n")
	}
	if len(info.Developers) > 0 {
		b.WriteString(textStyle.Render("Developer  ") + valueStyle.Render(truncate(strings.Join(info.Developers, ", "), width-11)) + "\n")
	}
	if len(info.Publishers) > 0 {
		b.WriteString(textStyle.Render("Publisher  ") + valueStyle.Render(truncate(strings.Join(info.Publishers, ", "), width-11)) + "\n")
	}
	if len(info.Tags) > 0 {
		tags := info.Tags
		if len(tags) > 5 {
			tags = tags[:5]
		}
		b.WriteString(dimStyle.Render(truncate(strings.Join(tags, " | "), width)) + "\n")
	}
	return b.String()
}

func (m *Model) priceLines(d *models.Deal) string {
	symbol := d.Price.CurrencySymbol()

	var b strings.Builder
	if d.Price.Discount > 0 {
		struck := lipgloss.NewStyle().Strikethrough(true).Foreground(colorTextDimmed).
			Render(fmt.Sprintf("%s%.2f", symbol, d.RegularPrice))
		b.WriteString(struck + " → ")
	}
	b.WriteString(valueStyle.Bold(true).Render(fmt.Sprintf("%s%.2f", symbol, d.Price.Amount)))
	if d.Price.Discount > 0 {
		b.WriteString(" " + discountStyle(d.Price.Discount).Render(fmt.Sprintf("(-%d%%)", d.Price.Discount)))
		b.WriteString("\n" + textStyle.Render("You save   ") + greenStyle.Render(fmt.Sprintf("%s%.2f", symbol, d.Savings())))
	}
	if d.HistoryLow != nil {
		low := fmt.Sprintf("%s%.2f", symbol, *d.HistoryLow)
		if d.IsAllTimeLow() {
			low += " (current!)"
		}
		b.WriteString("\n" + textStyle.Render("Low ever   ") + atlStyle.Render(low))
	}
	return b.String()
}

// chartView renders the one-year price history as a colored sparkline with a
// Low/High/Now summary. Points are bucketed evenly across the pane width.
func (m *Model) chartView(d *models.Deal, width int) string {
	points, ok := m.priceHistoryCache[d.ID]
	if !ok {
		if m.loading.PriceHistory == d.ID {
			return textStyle.Render("Loading history " + m.ui.Spinner.View())
		}
		return ""
	}
	if len(points) == 0 {
		return dimStyle.Render("No price history")
	}

	low, high := points[0].Price, points[0].Price
	for _, p := range points[1:] {
		if p.Price < low {
			low = p.Price
		}
		if p.Price > high {
			high = p.Price
		}
	}

	symbol := d.Price.CurrencySymbol()
	summary := textStyle.Render("Low ") + greenStyle.Render(fmt.Sprintf("%s%.2f", symbol, low)) +
		textStyle.Render("  High ") + errorStyle.Render(fmt.Sprintf("%s%.2f", symbol, high)) +
		textStyle.Render("  Now ") + valueStyle.Render(fmt.Sprintf("%s%.2f", symbol, d.Price.Amount))

	return titleStyle.Render("PRICE HISTORY") + "\n" + summary + "\n" + sparkline(points, width, low, high)
}

var sparkChars = []rune("▁▂▃▄▅▆▇█")

// sparkline buckets the series across width columns; each column shows the
// bucket minimum, colored green near the historic low and red near the high.
func sparkline(points []models.PriceHistoryPoint, width int, low, high float64) string {
	if width < 2 {
		width = 2
	}
	if width > len(points) {
		width = len(points)
	}

	buckets := make([]float64, width)
	for i := range buckets {
		start := i * len(points) / width
		end := (i + 1) * len(points) / width
		if end <= start {
			end = start + 1
		}
		minPrice := points[start].Price
		for _, p := range points[start:end] {
			if p.Price < minPrice {
				minPrice = p.Price
			}
		}
		buckets[i] = minPrice
	}

	span := high - low
	var b strings.Builder
	for _, v := range buckets {
		t := 0.0
		if span > 0 {
			t = (v - low) / span
		}
		level := int(t * float64(len(sparkChars)-1))
		style := lipgloss.NewStyle().Foreground(blendHex(hexGreen, hexError, t))
		b.WriteString(style.Render(string(sparkChars[level])))
	}
	return b.String()
}
