package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dealve/dealve/internal/models"
)

// taskRunner owns the background fetches. A primary load supersedes anything
// in flight: the old contexts are cancelled and the generation counter is
// bumped so stragglers that already produced a message are dropped by the
// reducer. Metadata and history fetches are never cancelled; their results
// land in caches and stale ones are simply ignored.
type taskRunner struct {
	gen int

	primaryCancel context.CancelFunc
	moreCancel    context.CancelFunc

	lastSelectionChange time.Time
	pendingGameInfo     bool
}

func newTaskRunner() *taskRunner {
	return &taskRunner{}
}

func (t *taskRunner) generation() int {
	return t.gen
}

// noteSelectionChange restarts the metadata debounce window.
func (t *taskRunner) noteSelectionChange(now time.Time) {
	t.lastSelectionChange = now
	t.pendingGameInfo = true
}

func (t *taskRunner) finishPrimary() {
	if t.primaryCancel != nil {
		t.primaryCancel()
		t.primaryCancel = nil
	}
}

func (t *taskRunner) finishMore() {
	if t.moreCancel != nil {
		t.moreCancel()
		t.moreCancel = nil
	}
}

// startLoad begins a fresh primary load: cancels in-flight listing fetches,
// clears the listing back to page one and fetches it. In search mode the
// whole result set arrives in one shot and pagination stays closed.
func (t *taskRunner) startLoad(m *Model) tea.Cmd {
	t.finishPrimary()
	t.finishMore()
	t.gen++
	gen := t.gen

	m.resetPagination()
	m.loading.Deals = true

	ctx, cancel := context.WithCancel(context.Background())
	t.primaryCancel = cancel

	gw := m.gateway
	region := m.region.Code()
	shopID := shopIDParam(m.platformFilter)
	pageSize := m.dealsPageSize
	sortToken := m.sortState.APIParam()

	if query := m.searchQuery; query != "" {
		return func() tea.Msg {
			deals, err := gw.SearchDeals(ctx, query, region, shopID, pageSize)
			if ctx.Err() != nil {
				return nil
			}
			if err != nil {
				return dealsLoadFailedMsg{gen: gen, err: "Search failed: " + err.Error()}
			}
			return dealsLoadedMsg{gen: gen, deals: deals, isMore: false, pageSize: len(deals)}
		}
	}

	return func() tea.Msg {
		deals, err := gw.ListDeals(ctx, region, pageSize, 0, shopID, sortToken)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return dealsLoadFailedMsg{gen: gen, err: err.Error()}
		}
		return dealsLoadedMsg{gen: gen, deals: deals, isMore: len(deals) >= pageSize, pageSize: pageSize}
	}
}

// onTick runs the opportunistic checks on each heartbeat: top up pagination
// when the cursor nears the end, and fire the debounced metadata and history
// loads once the window has elapsed and the reveal animation is done.
func (t *taskRunner) onTick(m *Model, now time.Time) []tea.Cmd {
	var cmds []tea.Cmd
	if cmd := t.maybeLoadMore(m); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := t.maybeLoadGameInfo(m, now); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := t.maybeLoadPriceHistory(m, now); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return cmds
}

func (t *taskRunner) maybeLoadMore(m *Model) tea.Cmd {
	if m.isSearchMode() || !m.shouldLoadMore() {
		return nil
	}
	if t.primaryCancel != nil || t.moreCancel != nil {
		return nil
	}
	gen := t.gen

	m.pagination.LoadingMore = true

	ctx, cancel := context.WithCancel(context.Background())
	t.moreCancel = cancel

	gw := m.gateway
	region := m.region.Code()
	shopID := shopIDParam(m.platformFilter)
	pageSize := m.dealsPageSize
	offset := m.pagination.Offset
	sortToken := m.sortState.APIParam()

	return func() tea.Msg {
		deals, err := gw.ListDeals(ctx, region, pageSize, offset, shopID, sortToken)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return dealsLoadFailedMsg{gen: gen, err: err.Error()}
		}
		return moreDealsLoadedMsg{gen: gen, deals: deals, isMore: len(deals) >= pageSize, pageSize: pageSize}
	}
}

// maybeLoadGameInfo fires the metadata fetch once the selection has rested
// for the configured delay. The fetch is silent on failure; the details pane
// simply keeps showing "Loading...".
func (t *taskRunner) maybeLoadGameInfo(m *Model, now time.Time) tea.Cmd {
	if !t.pendingGameInfo || m.loading.Deals || m.anim.active(now) {
		return nil
	}
	if now.Sub(t.lastSelectionChange) < time.Duration(m.gameInfoDelayMs)*time.Millisecond {
		return nil
	}

	id := m.needsGameInfoLoad()
	t.pendingGameInfo = false
	if id == "" {
		return nil
	}

	m.loading.GameInfo = id
	gw := m.gateway
	return func() tea.Msg {
		info, err := gw.GameInfo(context.Background(), id)
		if err != nil {
			return gameInfoLoadedMsg{id: id}
		}
		return gameInfoLoadedMsg{id: id, info: info, ok: true}
	}
}

// maybeLoadPriceHistory fires the history fetch once the metadata fetch for
// the selection is no longer pending. Failures cache an empty series so the
// fetch is not retried on every heartbeat.
func (t *taskRunner) maybeLoadPriceHistory(m *Model, now time.Time) tea.Cmd {
	if m.loading.Deals || m.anim.active(now) {
		return nil
	}
	if t.pendingGameInfo || m.loading.GameInfo != "" || m.loading.PriceHistory != "" {
		return nil
	}

	id := m.needsPriceHistoryLoad()
	if id == "" {
		return nil
	}

	m.loading.PriceHistory = id
	gw := m.gateway
	region := m.region.Code()
	return func() tea.Msg {
		points, err := gw.PriceHistory(context.Background(), id, region)
		if err != nil {
			return priceHistoryLoadedMsg{id: id}
		}
		return priceHistoryLoadedMsg{id: id, points: points}
	}
}

// shopIDParam maps the platform filter to the upstream shops parameter, nil
// for "All".
func shopIDParam(p models.Platform) *int {
	id, ok := p.ShopID()
	if !ok {
		return nil
	}
	return &id
}
