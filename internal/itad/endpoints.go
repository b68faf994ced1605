package itad

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/dealve/dealve/internal/models"
)

// MaxSearchResults is the upstream cap on /games/search/v1.
const MaxSearchResults = 100

func itoa(n int) string { return strconv.Itoa(n) }

func (c *Client) requireKey() (string, error) {
	if c.apiKey == "" {
		return "", models.NewError(models.KindConfig, "API key is required")
	}
	return c.apiKey, nil
}

// get issues a GET with the given query parameters and decodes the JSON
// response into out, classifying failures per the error taxonomy.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return models.NewError(models.KindNetwork, "%v", err)
	}
	return c.do(req, out)
}

// post issues a POST with a JSON body and decodes the response into out.
func (c *Client) post(ctx context.Context, path string, params url.Values, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return models.NewError(models.KindParse, "%v", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path+"?"+params.Encode(), bytes.NewReader(payload))
	if err != nil {
		return models.NewError(models.KindNetwork, "%v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return models.NewError(models.KindNetwork, "%v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return models.NewError(models.KindAPI, "API returned status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return models.NewError(models.KindParse, "%v", err)
	}
	return nil
}

// ListDeals fetches one page of the deals listing. shopID is nil for no shop
// filter; sort is an API sort token ("price", "-cut", ...) or empty.
func (c *Client) ListDeals(ctx context.Context, region string, limit, offset int, shopID *int, sortToken string) ([]models.Deal, error) {
	key, err := c.requireKey()
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("key", key)
	params.Set("country", region)
	params.Set("limit", itoa(limit))
	params.Set("offset", itoa(offset))
	if shopID != nil {
		params.Set("shops", itoa(*shopID))
	}
	if sortToken != "" {
		params.Set("sort", sortToken)
	}

	var resp dealsResponse
	if err := c.get(ctx, "/deals/v2", params, &resp); err != nil {
		return nil, err
	}

	deals := make([]models.Deal, 0, len(resp.List))
	for _, item := range resp.List {
		deals = append(deals, item.toDeal())
	}
	return deals, nil
}

// searchGames runs the title search, capped upstream at MaxSearchResults.
func (c *Client) searchGames(ctx context.Context, title string, results int) ([]gameSearchItem, error) {
	key, err := c.requireKey()
	if err != nil {
		return nil, err
	}
	if title == "" || results <= 0 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("key", key)
	params.Set("title", title)
	params.Set("results", itoa(results))

	var items []gameSearchItem
	if err := c.get(ctx, "/games/search/v1", params, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// pricesForGames resolves current prices for a set of game ids. With a shop
// filter a single deal per game is enough, so capacity is capped at 1.
func (c *Client) pricesForGames(ctx context.Context, ids []string, region string, shopID *int) ([]gamePriceItem, error) {
	key, err := c.requireKey()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("key", key)
	params.Set("country", region)
	params.Set("deals", "true")
	if shopID != nil {
		params.Set("capacity", "1")
		params.Set("shops", itoa(*shopID))
	}

	var items []gamePriceItem
	if err := c.post(ctx, "/games/prices/v3", params, ids, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SearchDeals performs a title search and resolves the best current offer
// for each matched title: lowest price, ties broken by larger discount.
// Titles with no resolvable price are dropped. Result order follows the
// original search-relevance order.
func (c *Client) SearchDeals(ctx context.Context, query, region string, shopID *int, limit int) ([]models.Deal, error) {
	if limit > MaxSearchResults {
		limit = MaxSearchResults
	}

	results, err := c.searchGames(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(results))
	titlesByID := make(map[string]string, len(results))
	for _, r := range results {
		if _, dup := titlesByID[r.ID]; dup {
			continue
		}
		ids = append(ids, r.ID)
		titlesByID[r.ID] = r.Title
	}

	prices, err := c.pricesForGames(ctx, ids, region, shopID)
	if err != nil {
		return nil, err
	}

	type resolved struct {
		deal       dealInfo
		historyLow *float64
	}
	byID := make(map[string]resolved, len(prices))
	for _, item := range prices {
		best, ok := selectBestDeal(item.Deals)
		if !ok {
			continue
		}
		var low *float64
		if item.HistoryLow != nil && item.HistoryLow.All != nil {
			amount := item.HistoryLow.All.Amount
			low = &amount
		}
		byID[item.ID] = resolved{deal: best, historyLow: low}
	}

	deals := make([]models.Deal, 0, len(byID))
	for _, id := range ids {
		r, ok := byID[id]
		if !ok {
			continue
		}
		historyLow := r.historyLow
		if historyLow == nil {
			historyLow = historyLowAmount(r.deal.HistoryLow)
		}
		deals = append(deals, models.Deal{
			ID:    id,
			Title: titlesByID[id],
			Shop: models.Shop{
				ID:   itoa(r.deal.Shop.ID),
				Name: r.deal.Shop.Name,
			},
			Price: models.Price{
				Amount:   r.deal.Price.Amount,
				Currency: r.deal.Price.Currency,
				Discount: r.deal.Cut,
			},
			RegularPrice: r.deal.Regular.Amount,
			URL:          r.deal.URL,
			HistoryLow:   historyLow,
		})
	}
	return deals, nil
}

// selectBestDeal picks the representative offer: minimum price, ties broken
// by the larger discount percentage.
func selectBestDeal(deals []dealInfo) (dealInfo, bool) {
	if len(deals) == 0 {
		return dealInfo{}, false
	}
	best := deals[0]
	for _, d := range deals[1:] {
		if d.Price.Amount < best.Price.Amount ||
			(d.Price.Amount == best.Price.Amount && d.Cut > best.Cut) {
			best = d
		}
	}
	return best, true
}

// GameInfo fetches per-title metadata.
func (c *Client) GameInfo(ctx context.Context, gameID string) (models.GameInfo, error) {
	key, err := c.requireKey()
	if err != nil {
		return models.GameInfo{}, err
	}

	params := url.Values{}
	params.Set("key", key)
	params.Set("id", gameID)

	var resp gameInfoResponse
	if err := c.get(ctx, "/games/info/v2", params, &resp); err != nil {
		return models.GameInfo{}, err
	}
	return resp.toGameInfo(), nil
}

// PriceHistory fetches up to one year of price history for a title, drops
// entries with no associated deal, and returns points ascending by time.
func (c *Client) PriceHistory(ctx context.Context, gameID, region string) ([]models.PriceHistoryPoint, error) {
	key, err := c.requireKey()
	if err != nil {
		return nil, err
	}

	since := time.Now().UTC().AddDate(-1, 0, 0).Format(time.RFC3339)

	params := url.Values{}
	params.Set("key", key)
	params.Set("id", gameID)
	params.Set("country", region)
	params.Set("since", since)

	var items []priceHistoryItem
	if err := c.get(ctx, "/games/history/v2", params, &items); err != nil {
		return nil, err
	}

	points := make([]models.PriceHistoryPoint, 0, len(items))
	for _, item := range items {
		if item.Deal == nil {
			continue
		}
		ts, err := time.Parse(time.RFC3339, item.Timestamp)
		if err != nil {
			continue
		}
		points = append(points, models.PriceHistoryPoint{
			Timestamp: ts.Unix(),
			Price:     item.Deal.Price.Amount,
			ShopName:  item.Shop.Name,
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Timestamp < points[j].Timestamp
	})
	return points, nil
}

// ValidateKey checks an API key with a minimal listing request. Used by the
// onboarding wizard before persisting a key.
func ValidateKey(ctx context.Context, apiKey string) error {
	return NewClient(apiKey).validate(ctx)
}

func (c *Client) validate(ctx context.Context) error {
	key, err := c.requireKey()
	if err != nil {
		return err
	}

	params := url.Values{}
	params.Set("key", key)
	params.Set("limit", "1")
	params.Set("country", "US")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/deals/v2?"+params.Encode(), nil)
	if err != nil {
		return models.NewError(models.KindNetwork, "%v", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return models.NewError(models.KindNetwork, "%v", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode <= 299:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return models.NewError(models.KindAPI, "Invalid API key")
	case resp.StatusCode == http.StatusTooManyRequests:
		return models.NewError(models.KindAPI, "Rate limited - please wait and try again")
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return models.NewError(models.KindAPI, "API error: %s", bytes.TrimSpace(body))
	}
}
