// Package controllers holds the screen-facing state containers: paged,
// filtered collections for products and employees, and the dashboard
// aggregator. Each controller owns its own copy of the data and refetches on
// demand; a result set is always the product of the committed filter values
// that requested it.
package controllers

import (
	"context"
	"sync"
	"time"

	"github.com/labelsight/labelsight/pkg/debounce"
)

// DefaultPerPage is the page size used when none is configured.
const DefaultPerPage = 50

// keywordDebounce is the quiet interval before raw keyword input is
// committed to the fetch-triggering state.
const keywordDebounce = 500 * time.Millisecond

// FetchParams is one committed page/filter combination.
type FetchParams struct {
	Skip    int
	Limit   int
	Filter  string // category or role, empty for all
	Keyword string
}

// PageFetcher loads one page for the given params, returning the items and
// the server-side total.
type PageFetcher[T any] func(ctx context.Context, p FetchParams) ([]T, int, error)

// Deleter removes one entity by its identifier (product code, email).
type Deleter func(ctx context.Context, id string) error

// ListController is the reusable paged-collection state container. Items and
// total always move together: a fetch either replaces both or clears both.
type ListController[T any] struct {
	mu sync.Mutex

	fetch  PageFetcher[T]
	remove Deleter

	ctx       context.Context
	cancel    context.CancelFunc
	debouncer *debounce.Debouncer

	perPage    int
	page       int
	filter     string
	keyword    string // committed
	rawKeyword string

	items    []T
	total    int
	loading  bool
	deleting bool
	errMsg   string

	seq        uint64
	lastParams *FetchParams // params of the last successful fetch
}

// ListOption configures a ListController.
type ListOption func(*listConfig)

type listConfig struct {
	perPage int
	page    int
	filter  string
	keyword string
}

// WithPerPage overrides the default page size.
func WithPerPage(n int) ListOption {
	return func(c *listConfig) {
		if n > 0 {
			c.perPage = n
		}
	}
}

// WithPage starts the controller on a 1-based page.
func WithPage(n int) ListOption {
	return func(c *listConfig) {
		if n > 1 {
			c.page = n
		}
	}
}

// WithFilter pre-commits a category/role filter, without triggering a fetch.
func WithFilter(filter string) ListOption {
	return func(c *listConfig) { c.filter = filter }
}

// WithKeyword pre-commits a keyword, bypassing the debounce window.
func WithKeyword(keyword string) ListOption {
	return func(c *listConfig) { c.keyword = keyword }
}

// NewListController builds a controller around a fetcher and a deleter.
// ctx bounds the controller's self-initiated fetches (debounced keyword
// commits, filter changes); Close releases it.
func NewListController[T any](ctx context.Context, fetch PageFetcher[T], remove Deleter, opts ...ListOption) *ListController[T] {
	cfg := listConfig{perPage: DefaultPerPage, page: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	cctx, cancel := context.WithCancel(ctx)
	c := &ListController[T]{
		fetch:      fetch,
		remove:     remove,
		ctx:        cctx,
		cancel:     cancel,
		perPage:    cfg.perPage,
		page:       cfg.page,
		filter:     cfg.filter,
		keyword:    cfg.keyword,
		rawKeyword: cfg.keyword,
	}
	c.debouncer = debounce.New(keywordDebounce, c.commitKeyword)
	return c
}

// Close stops the keyword debouncer and cancels any self-initiated fetches.
func (c *ListController[T]) Close() {
	c.debouncer.Stop()
	c.cancel()
}

// ─── Fetching ─────────────────────────────────────────────────────────────────

// Fetch loads the current page/filter combination.
func (c *ListController[T]) Fetch(ctx context.Context) error {
	c.mu.Lock()
	params := c.currentParams()
	c.loading = true
	c.errMsg = ""
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	return c.runFetch(ctx, seq, params)
}

// runFetch issues one read and applies the result unless a newer fetch has
// been issued meanwhile — stale responses never overwrite fresher state.
func (c *ListController[T]) runFetch(ctx context.Context, seq uint64, params FetchParams) error {
	items, total, err := c.fetch(ctx, params)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		return nil // superseded
	}
	c.loading = false

	if err != nil {
		c.errMsg = err.Error()
		c.items = nil
		c.total = 0
		return err
	}

	c.items = items
	c.total = total
	c.lastParams = &params
	return nil
}

func (c *ListController[T]) currentParams() FetchParams {
	return FetchParams{
		Skip:    (c.page - 1) * c.perPage,
		Limit:   c.perPage,
		Filter:  c.filter,
		Keyword: c.keyword,
	}
}

// ─── Deleting ─────────────────────────────────────────────────────────────────

// Delete removes one entity. There is no optimistic local removal: on
// success the controller refetches with the parameters of the last
// successful fetch, so displayed counts stay authoritative. On failure the
// loaded collection is left untouched.
func (c *ListController[T]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	c.deleting = true
	c.mu.Unlock()

	err := c.remove(ctx, id)

	c.mu.Lock()
	c.deleting = false
	if err != nil {
		c.errMsg = err.Error()
		c.mu.Unlock()
		return err
	}

	params := c.currentParams()
	if c.lastParams != nil {
		params = *c.lastParams
	}
	c.loading = true
	c.errMsg = ""
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	return c.runFetch(ctx, seq, params)
}

// ─── Filter and keyword state ─────────────────────────────────────────────────

// SetFilter commits the category/role filter immediately and refetches from
// the first page.
func (c *ListController[T]) SetFilter(filter string) error {
	c.mu.Lock()
	c.filter = filter
	c.page = 1
	params := c.currentParams()
	c.loading = true
	c.errMsg = ""
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	return c.runFetch(c.ctx, seq, params)
}

// SetKeyword records raw input and starts (or restarts) the debounce timer.
// The keyword reaches the committed filter state only after 500ms of
// inactivity; every keystroke inside that window resets the timer.
func (c *ListController[T]) SetKeyword(keyword string) {
	c.mu.Lock()
	c.rawKeyword = keyword
	c.mu.Unlock()
	c.debouncer.Trigger(keyword)
}

// commitKeyword is the debouncer callback.
func (c *ListController[T]) commitKeyword(keyword string) {
	c.mu.Lock()
	c.keyword = keyword
	c.page = 1
	params := c.currentParams()
	c.loading = true
	c.errMsg = ""
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	_ = c.runFetch(c.ctx, seq, params)
}

// FlushKeyword commits any pending keyword immediately (submit-on-enter).
func (c *ListController[T]) FlushKeyword() {
	c.debouncer.Flush()
}

// SetPage moves to a 1-based page and refetches.
func (c *ListController[T]) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	c.page = page
	params := c.currentParams()
	c.loading = true
	c.errMsg = ""
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	return c.runFetch(ctx, seq, params)
}

// ─── Accessors ────────────────────────────────────────────────────────────────

// Items returns a copy of the loaded page.
func (c *ListController[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Total is the server-side total for the committed filters — the global
// count, unlike any statistic derived from the loaded page.
func (c *ListController[T]) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Page is the current 1-based page.
func (c *ListController[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// PerPage is the configured page size.
func (c *ListController[T]) PerPage() int { return c.perPage }

// Keyword is the committed keyword; RawKeyword is what is being typed.
func (c *ListController[T]) Keyword() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.keyword
}

func (c *ListController[T]) RawKeyword() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rawKeyword
}

// Filter is the committed category/role filter.
func (c *ListController[T]) Filter() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// Loading reports an in-flight fetch; Deleting an in-flight delete;
// Searching a keyword waiting out its debounce window.
func (c *ListController[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *ListController[T]) Deleting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deleting
}

func (c *ListController[T]) Searching() bool {
	return c.debouncer.Pending()
}

// Err returns the user-facing message of the last failure, "" when healthy.
func (c *ListController[T]) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}
