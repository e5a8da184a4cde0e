package controllers

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/labelsight/labelsight/app/models"
	"github.com/labelsight/labelsight/app/services"
	"github.com/labelsight/labelsight/pkg/collection"
)

// DefaultRangeDays is how far back the initial dashboard window reaches.
const DefaultRangeDays = 30

// DateRange is an inclusive day range. To's entire day counts: the range
// effectively ends at To 23:59:59.999999999.
type DateRange struct {
	From time.Time
	To   time.Time
}

// DefaultDateRange returns the last 30 days through today. The day is built
// in now's location; truncating would floor to UTC midnight and push To onto
// yesterday for anyone west of Greenwich.
func DefaultDateRange(now time.Time) DateRange {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return DateRange{From: day.AddDate(0, 0, -DefaultRangeDays), To: day}
}

// Contains reports whether t falls inside the range, counting the whole
// final day.
func (r DateRange) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	from := time.Date(r.From.Year(), r.From.Month(), r.From.Day(), 0, 0, 0, 0, t.Location())
	to := time.Date(r.To.Year(), r.To.Month(), r.To.Day(), 23, 59, 59, 999999999, t.Location())
	return !t.Before(from) && !t.After(to)
}

// DashboardStats are the stat-card numbers, taken from the server-computed
// metrics (not recomputed from the local inspection list).
type DashboardStats struct {
	TotalProducts         int
	TotalInspections      int
	SuccessfulInspections int
	ErrorInspections      int
	SuccessRate           int // rounded percentage, 0 when no inspections
}

// FailedProductRank is one row of the client-derived failure ranking.
type FailedProductRank struct {
	ProductCode string
	Failures    int
}

// Activity is one row of the recent-activity view.
type Activity struct {
	Time           string // HH:MM of the inspection
	Action         string // "inspection passed" | "defect detected"
	ProductCode    string
	Status         string // "success" | "error"
	Inspector      string
	InspectionCode string
}

// DashboardController aggregates the dashboard screen: server-computed
// metrics plus client-side views derived from the full inspection list.
// The two paths are intentionally independent and may disagree when the two
// endpoints filter differently.
type DashboardController struct {
	mu sync.Mutex

	dashboards  *services.DashboardService
	inspections *services.InspectionService

	ctx    context.Context
	cancel context.CancelFunc

	defaultRange   DateRange
	dateRange      DateRange
	productCode    string
	inspectorEmail string
	keyword        string

	overview *models.DashboardOverview
	list     []models.Inspection

	loading    bool
	refreshing bool
	errMsg     string

	seq uint64
}

// DashboardOption seeds filter state at construction time, without
// triggering a refresh.
type DashboardOption func(*DashboardController)

// WithDateRange starts the controller on a window other than the default.
func WithDateRange(rng DateRange) DashboardOption {
	return func(c *DashboardController) { c.dateRange = rng }
}

// WithProductCode starts with a product-code substring filter.
func WithProductCode(code string) DashboardOption {
	return func(c *DashboardController) { c.productCode = code }
}

// WithInspectorEmail starts with an inspector-email substring filter.
func WithInspectorEmail(email string) DashboardOption {
	return func(c *DashboardController) { c.inspectorEmail = email }
}

// WithDashboardKeyword starts with a free-text keyword.
func WithDashboardKeyword(keyword string) DashboardOption {
	return func(c *DashboardController) { c.keyword = keyword }
}

// NewDashboardController builds the aggregator with the default last-30-days
// window.
func NewDashboardController(ctx context.Context, dashboards *services.DashboardService, inspections *services.InspectionService, opts ...DashboardOption) *DashboardController {
	cctx, cancel := context.WithCancel(ctx)
	rng := DefaultDateRange(time.Now())
	c := &DashboardController{
		dashboards:   dashboards,
		inspections:  inspections,
		ctx:          cctx,
		cancel:       cancel,
		defaultRange: rng,
		dateRange:    rng,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close cancels any self-initiated refresh.
func (c *DashboardController) Close() { c.cancel() }

// ─── Fetching ─────────────────────────────────────────────────────────────────

// Refresh issues the two reads in parallel: the pre-aggregated overview,
// filtered server-side by the same parameters, and the full inspection list
// feeding the client-side views. Either failing fails the refresh; a stale
// refresh (superseded by a newer one) is discarded without touching state.
func (c *DashboardController) Refresh(ctx context.Context) error {
	c.mu.Lock()
	params := services.DashboardParams{
		StartDate:      c.dateRange.From.Format("2006-01-02"),
		EndDate:        c.dateRange.To.Format("2006-01-02"),
		ProductCode:    c.productCode,
		Keyword:        c.keyword,
		InspectorEmail: c.inspectorEmail,
	}
	if c.overview == nil {
		c.loading = true
	} else {
		c.refreshing = true
	}
	c.errMsg = ""
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	var (
		wg       sync.WaitGroup
		overview *models.DashboardOverview
		page     *models.InspectionPage
		ovErr    error
		listErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		overview, ovErr = c.dashboards.Overview(ctx, params)
	}()
	go func() {
		defer wg.Done()
		page, listErr = c.inspections.List(ctx)
	}()
	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		return nil // superseded
	}
	c.loading = false
	c.refreshing = false

	err := ovErr
	if err == nil {
		err = listErr
	}
	if err != nil {
		c.errMsg = err.Error()
		return err
	}

	c.overview = overview
	c.list = page.Inspections
	return nil
}

// ─── Filter state ─────────────────────────────────────────────────────────────

// SetDateRange commits a new window and refreshes.
func (c *DashboardController) SetDateRange(rng DateRange) error {
	c.mu.Lock()
	c.dateRange = rng
	c.mu.Unlock()
	return c.Refresh(c.ctx)
}

// SetProductCodeFilter commits a product-code substring and refreshes.
func (c *DashboardController) SetProductCodeFilter(code string) error {
	c.mu.Lock()
	c.productCode = code
	c.mu.Unlock()
	return c.Refresh(c.ctx)
}

// SetInspectorEmailFilter commits an inspector-email substring and refreshes.
func (c *DashboardController) SetInspectorEmailFilter(email string) error {
	c.mu.Lock()
	c.inspectorEmail = email
	c.mu.Unlock()
	return c.Refresh(c.ctx)
}

// SetKeywordFilter commits a free-text keyword and refreshes.
func (c *DashboardController) SetKeywordFilter(keyword string) error {
	c.mu.Lock()
	c.keyword = keyword
	c.mu.Unlock()
	return c.Refresh(c.ctx)
}

// ClearFilters resets every filter to its initial value and refreshes.
func (c *DashboardController) ClearFilters() error {
	c.mu.Lock()
	c.dateRange = c.defaultRange
	c.productCode = ""
	c.inspectorEmail = ""
	c.keyword = ""
	c.mu.Unlock()
	return c.Refresh(c.ctx)
}

// HasActiveFilters reports whether any input differs from its initial value.
func (c *DashboardController) HasActiveFilters() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.productCode != "" ||
		c.inspectorEmail != "" ||
		c.keyword != "" ||
		!c.dateRange.From.Equal(c.defaultRange.From) ||
		!c.dateRange.To.Equal(c.defaultRange.To)
}

// DateRange returns the committed window.
func (c *DashboardController) DateRange() DateRange {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dateRange
}

// ─── Derived views ────────────────────────────────────────────────────────────

// Stats maps the server metrics into stat-card numbers. The success rate is
// a rounded percentage, pinned to 0 when there are no inspections.
func (c *DashboardController) Stats() DashboardStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.overview == nil {
		return DashboardStats{}
	}

	m := c.overview.Metrics
	rate := 0
	if m.TotalInspections > 0 {
		rate = int(math.Round(float64(m.TotalPassed) / float64(m.TotalInspections) * 100))
	}

	return DashboardStats{
		TotalProducts:         m.TotalProducts,
		TotalInspections:      m.TotalInspections,
		SuccessfulInspections: m.TotalPassed,
		ErrorInspections:      m.TotalFailed,
		SuccessRate:           rate,
	}
}

// Overview exposes the raw server response, including its own ranked
// failure list.
func (c *DashboardController) Overview() *models.DashboardOverview {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.overview
}

// TopFailedProducts ranks products by failure count over the locally
// filtered inspection list: failures only, grouped by product code, sorted
// descending, top 4. The sort is stable, so ties keep input order.
func (c *DashboardController) TopFailedProducts() []FailedProductRank {
	failed := collection.Filter(c.filteredInspections(), func(i models.Inspection) bool {
		return !i.Passed()
	})

	counts := collection.CountBy(failed, func(i models.Inspection) string { return i.ProductCode })

	// Ranking preserves first-seen order for equal counts.
	var order []string
	seen := map[string]bool{}
	for _, i := range failed {
		if !seen[i.ProductCode] {
			seen[i.ProductCode] = true
			order = append(order, i.ProductCode)
		}
	}

	ranks := collection.Map(order, func(code string) FailedProductRank {
		return FailedProductRank{ProductCode: code, Failures: counts[code]}
	})
	ranks = collection.SortBy(ranks, func(a, b FailedProductRank) bool { return a.Failures > b.Failures })
	return collection.Take(ranks, 4)
}

// RecentActivities maps the newest five filtered inspections to display
// rows, newest first.
func (c *DashboardController) RecentActivities() []Activity {
	sorted := collection.SortBy(c.filteredInspections(), func(a, b models.Inspection) bool {
		return a.CreatedTime().After(b.CreatedTime())
	})

	return collection.Map(collection.Take(sorted, 5), func(i models.Inspection) Activity {
		action, status := "defect detected", "error"
		if i.Passed() {
			action, status = "inspection passed", "success"
		}
		return Activity{
			Time:           i.CreatedTime().Format("15:04"),
			Action:         action,
			ProductCode:    i.ProductCode,
			Status:         status,
			Inspector:      i.InspectorEmail,
			InspectionCode: i.InspectionCode,
		}
	})
}

// filteredInspections applies the committed date range and substring filters
// to the locally held list.
func (c *DashboardController) filteredInspections() []models.Inspection {
	c.mu.Lock()
	list := c.list
	rng := c.dateRange
	code := strings.ToLower(c.productCode)
	inspector := strings.ToLower(c.inspectorEmail)
	c.mu.Unlock()

	return collection.Filter(list, func(i models.Inspection) bool {
		if !rng.Contains(i.CreatedTime()) {
			return false
		}
		if code != "" && !strings.Contains(strings.ToLower(i.ProductCode), code) {
			return false
		}
		if inspector != "" && !strings.Contains(strings.ToLower(i.InspectorEmail), inspector) {
			return false
		}
		return true
	})
}

// ─── Flags ────────────────────────────────────────────────────────────────────

// Loading reports the first fetch; Refreshing any subsequent one.
func (c *DashboardController) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *DashboardController) Refreshing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshing
}

// Err returns the user-facing message of the last failed refresh.
func (c *DashboardController) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}
