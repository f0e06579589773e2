package handler

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GildedRose_Go/internal/catalog"
)

func TestFormatValidationError(t *testing.T) {
	tests := []struct {
		name string
		req  AdvanceRequest
		want map[string]string
	}{
		{
			name: "missing items",
			req:  AdvanceRequest{Days: 1},
			want: map[string]string{"items": "This field is required"},
		},
		{
			name: "days out of range",
			req: AdvanceRequest{
				Days:  4000,
				Items: []catalog.Entry{{Name: "Vest", Category: "depreciating"}},
			},
			want: map[string]string{"days": "Must be at most 3650"},
		},
		{
			name: "negative days",
			req: AdvanceRequest{
				Days:  -1,
				Items: []catalog.Entry{{Name: "Vest", Category: "depreciating"}},
			},
			want: map[string]string{"days": "Must be at least 1"},
		},
		{
			name: "nested entry errors",
			req: AdvanceRequest{
				Items: []catalog.Entry{
					{Name: "Vest", Category: "depreciating"},
					{Name: "", Category: "perishable"},
				},
			},
			want: map[string]string{
				"items[1].name":     "This field is required",
				"items[1].category": "Unknown item category",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GetValidator().ValidateStruct(tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.want, FormatValidationError(err))
		})
	}
}

func TestFormatValidationError_Other(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("boom")))
}

func TestValidator_AcceptsValidRequest(t *testing.T) {
	req := AdvanceRequest{Items: []catalog.Entry{{Name: "Sulfuras", Category: "Legendary"}}}
	assert.NoError(t, GetValidator().ValidateStruct(req))
}

func TestGetValidator_Concurrent(t *testing.T) {
	validate = nil
	validateOnce = sync.Once{}

	var wg sync.WaitGroup
	instances := make([]*Validator, 8)
	for i := range instances {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			instances[i] = GetValidator()
			_ = instances[i].ValidateStruct(AdvanceRequest{})
		}(i)
	}
	wg.Wait()

	for _, v := range instances {
		assert.Same(t, instances[0], v)
	}
}
