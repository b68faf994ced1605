// Package models holds the core entities shared by the gateway and the TUI:
// deals, game metadata, price history points, and the Platform/Region
// enumerations used for filtering.
package models

import "math"

// Deal is a single offer for a game as reported by the deals API. Deals are
// immutable once fetched; the TUI replaces or appends whole pages.
type Deal struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Shop         Shop     `json:"shop"`
	Price        Price    `json:"price"`
	RegularPrice float64  `json:"regular_price"`
	URL          string   `json:"url"`
	HistoryLow   *float64 `json:"history_low,omitempty"`
}

// Shop identifies the store offering a deal.
type Shop struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Price is the current price with its discount off the regular price.
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Discount int     `json:"discount"`
}

// CurrencySymbol returns a display symbol for the price currency, falling
// back to the currency code itself.
func (p Price) CurrencySymbol() string {
	switch p.Currency {
	case "USD", "CAD", "AUD", "NZD", "MXN", "SGD", "HKD":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	case "JPY", "CNY":
		return "¥"
	case "BRL":
		return "R$"
	case "PLN":
		return "zł"
	case "KRW":
		return "₩"
	case "INR":
		return "₹"
	default:
		return p.Currency
	}
}

// IsAllTimeLow reports whether the current price matches the lowest ever
// recorded for this title, within float tolerance.
func (d Deal) IsAllTimeLow() bool {
	if d.HistoryLow == nil {
		return false
	}
	return math.Abs(*d.HistoryLow-d.Price.Amount) < 0.01
}

// Savings is the absolute amount saved versus the regular price.
func (d Deal) Savings() float64 {
	return d.RegularPrice - d.Price.Amount
}

// GameInfo is per-title metadata, fetched lazily and cached for the process
// lifetime.
type GameInfo struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	ReleaseDate string   `json:"release_date,omitempty"`
	Developers  []string `json:"developers"`
	Publishers  []string `json:"publishers"`
	Tags        []string `json:"tags"`
}

// PriceHistoryPoint is one sample of a title's price over time. Histories
// are stored ascending by timestamp (oldest first).
type PriceHistoryPoint struct {
	Timestamp int64   `json:"timestamp"`
	Price     float64 `json:"price"`
	ShopName  string  `json:"shop_name"`
}
