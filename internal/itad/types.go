package itad

import "github.com/dealve/dealve/internal/models"

// Wire types for the ITAD API responses. Only the fields this client reads
// are declared.

type dealsResponse struct {
	List []dealItem `json:"list"`
}

type dealItem struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Deal  dealInfo `json:"deal"`
}

type dealInfo struct {
	Shop       shopInfo   `json:"shop"`
	Price      priceInfo  `json:"price"`
	Regular    priceInfo  `json:"regular"`
	Cut        int        `json:"cut"`
	URL        string     `json:"url"`
	HistoryLow *priceInfo `json:"historyLow"`
}

type shopInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type priceInfo struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type gameSearchItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type gamePriceItem struct {
	ID         string           `json:"id"`
	Deals      []dealInfo       `json:"deals"`
	HistoryLow *historyLowEntry `json:"historyLow"`
}

type historyLowEntry struct {
	All *priceInfo `json:"all"`
}

type gameInfoResponse struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	ReleaseDate string      `json:"releaseDate"`
	Developers  []namedItem `json:"developers"`
	Publishers  []namedItem `json:"publishers"`
	Tags        []string    `json:"tags"`
}

type namedItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type priceHistoryItem struct {
	Timestamp string          `json:"timestamp"`
	Shop      shopInfo        `json:"shop"`
	Deal      *historyDealRef `json:"deal"`
}

type historyDealRef struct {
	Price priceInfo `json:"price"`
}

func (d dealItem) toDeal() models.Deal {
	return models.Deal{
		ID:    d.ID,
		Title: d.Title,
		Shop: models.Shop{
			ID:   itoa(d.Deal.Shop.ID),
			Name: d.Deal.Shop.Name,
		},
		Price: models.Price{
			Amount:   d.Deal.Price.Amount,
			Currency: d.Deal.Price.Currency,
			Discount: d.Deal.Cut,
		},
		RegularPrice: d.Deal.Regular.Amount,
		URL:          d.Deal.URL,
		HistoryLow:   historyLowAmount(d.Deal.HistoryLow),
	}
}

func historyLowAmount(p *priceInfo) *float64 {
	if p == nil {
		return nil
	}
	amount := p.Amount
	return &amount
}

func namesOf(items []namedItem) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func (g gameInfoResponse) toGameInfo() models.GameInfo {
	return models.GameInfo{
		ID:          g.ID,
		Title:       g.Title,
		ReleaseDate: g.ReleaseDate,
		Developers:  namesOf(g.Developers),
		Publishers:  namesOf(g.Publishers),
		Tags:        g.Tags,
	}
}
