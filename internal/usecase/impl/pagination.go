package impl

import (
	"math"

	"quicksell/config"
	"quicksell/internal/usecase"
)

const (
	fallbackPageSize    = 20
	fallbackMaxPageSize = 100
)

// pager turns 1-based page requests into limit/offset pairs.
type pager struct {
	size    int
	maxSize int
}

func newPager(cfg *config.Config) pager {
	p := pager{size: fallbackPageSize, maxSize: fallbackMaxPageSize}
	if cfg == nil || cfg.Listing == nil {
		return p
	}

	if cfg.Listing.PageSize > 0 {
		p.size = cfg.Listing.PageSize
	}
	if cfg.Listing.MaxPageSize >= p.size {
		p.maxSize = cfg.Listing.MaxPageSize
	}

	return p
}

func (p pager) limitOffset(page usecase.PageInput) (limit, offset int) {
	size := page.PageSize
	if size <= 0 {
		size = p.size
	}
	size = min(size, p.maxSize)

	number := max(page.Page, 1)
	// Pages past the addressable range clamp to the last one instead of wrapping.
	number = min(number, math.MaxInt/size)

	return size, (number - 1) * size
}
