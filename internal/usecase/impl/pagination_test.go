package impl

import (
	"math"
	"testing"

	"quicksell/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestPager_LimitOffset(t *testing.T) {
	p := newPager(newTestConfig())

	tests := []struct {
		name       string
		page       usecase.PageInput
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", page: usecase.PageInput{}, wantLimit: 10, wantOffset: 0},
		{name: "second page", page: usecase.PageInput{Page: 2}, wantLimit: 10, wantOffset: 10},
		{name: "custom size", page: usecase.PageInput{Page: 3, PageSize: 5}, wantLimit: 5, wantOffset: 10},
		{name: "capped size", page: usecase.PageInput{Page: 1, PageSize: 1000}, wantLimit: 50, wantOffset: 0},
		{name: "negative page", page: usecase.PageInput{Page: -4}, wantLimit: 10, wantOffset: 0},
		{name: "huge page", page: usecase.PageInput{Page: math.MaxInt / 10}, wantLimit: 10, wantOffset: (math.MaxInt/10 - 1) * 10},
		{name: "max page", page: usecase.PageInput{Page: math.MaxInt, PageSize: 20}, wantLimit: 20, wantOffset: (math.MaxInt/20 - 1) * 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := p.limitOffset(tt.page)

			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestNewPager_WithoutConfig(t *testing.T) {
	p := newPager(nil)

	limit, offset := p.limitOffset(usecase.PageInput{})

	assert.Equal(t, fallbackPageSize, limit)
	assert.Zero(t, offset)
}

func TestPager_LimitOffset_NeverNegative(t *testing.T) {
	p := newPager(nil)

	for _, page := range []int{math.MaxInt, math.MaxInt / 10, math.MaxInt/20 + 1} {
		limit, offset := p.limitOffset(usecase.PageInput{Page: page})

		assert.Equal(t, fallbackPageSize, limit)
		assert.Positive(t, offset)
	}
}
