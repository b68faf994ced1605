package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/dealve/dealve/internal/config"
	"github.com/dealve/dealve/internal/models"
)

// fakeGateway is a Gateway whose responses are canned per call. Unset
// functions return empty results.
type fakeGateway struct {
	listDeals    func(region string, limit, offset int, shopID *int, sortToken string) ([]models.Deal, error)
	searchDeals  func(query, region string, shopID *int, limit int) ([]models.Deal, error)
	gameInfo     func(gameID string) (models.GameInfo, error)
	priceHistory func(gameID, region string) ([]models.PriceHistoryPoint, error)
}

func (f *fakeGateway) ListDeals(_ context.Context, region string, limit, offset int, shopID *int, sortToken string) ([]models.Deal, error) {
	if f.listDeals == nil {
		return nil, nil
	}
	return f.listDeals(region, limit, offset, shopID, sortToken)
}

func (f *fakeGateway) SearchDeals(_ context.Context, query, region string, shopID *int, limit int) ([]models.Deal, error) {
	if f.searchDeals == nil {
		return nil, nil
	}
	return f.searchDeals(query, region, shopID, limit)
}

func (f *fakeGateway) GameInfo(_ context.Context, gameID string) (models.GameInfo, error) {
	if f.gameInfo == nil {
		return models.GameInfo{}, nil
	}
	return f.gameInfo(gameID)
}

func (f *fakeGateway) PriceHistory(_ context.Context, gameID, region string) ([]models.PriceHistoryPoint, error) {
	if f.priceHistory == nil {
		return nil, nil
	}
	return f.priceHistory(gameID, region)
}

// CreateTestModel builds a Model on default settings with a fake gateway and
// the settings file redirected into a temp directory.
func CreateTestModel(t *testing.T) *Model {
	t.Helper()
	return CreateTestModelWithGateway(t, &fakeGateway{})
}

// CreateTestModelWithGateway is CreateTestModel with a caller-supplied
// gateway.
func CreateTestModelWithGateway(t *testing.T, gw Gateway) *Model {
	t.Helper()

	original := config.ConfigFilePath
	config.ConfigFilePath = filepath.Join(t.TempDir(), "config.json")
	t.Cleanup(func() {
		config.ConfigFilePath = original
	})

	return NewModel(gw, config.Default())
}

// testDeal builds a deal with a predictable id, title and shop.
func testDeal(n int, price float64, cut int) models.Deal {
	return models.Deal{
		ID:    fmt.Sprintf("game-%d", n),
		Title: fmt.Sprintf("Game %d", n),
		Shop:  models.Shop{ID: "61", Name: "Steam"},
		Price: models.Price{
			Amount:   price,
			Currency: "USD",
			Discount: cut,
		},
		RegularPrice: price * 2,
		URL:          fmt.Sprintf("https://example.com/deal/%d", n),
	}
}

func testDeals(count int) []models.Deal {
	deals := make([]models.Deal, 0, count)
	for i := 0; i < count; i++ {
		deals = append(deals, testDeal(i, float64(i)+0.99, 50))
	}
	return deals
}

// loadDeals replaces the listing as a finished primary load would.
func loadDeals(m *Model, deals []models.Deal) {
	apply(m, dealsLoadedMsg{
		gen:      m.tasks.generation(),
		deals:    deals,
		isMore:   len(deals) >= m.dealsPageSize,
		pageSize: m.dealsPageSize,
	})
	m.anim = revealState{}
}

// AssertModelField fails the test when a model field does not hold the
// expected value.
func AssertModelField(t *testing.T, name string, got, want any) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}
