package metrics

import "github.com/osse101/GildedRose_Go/internal/domain"

// InventoryRecorder records simulation progress into the inventory counters
type InventoryRecorder struct{}

// NewInventoryRecorder creates a new inventory recorder
func NewInventoryRecorder() *InventoryRecorder {
	return &InventoryRecorder{}
}

// RecordRun counts a simulation run
func (r *InventoryRecorder) RecordRun() {
	SimulationsRun.Inc()
}

// RecordDay counts one simulated business day
func (r *InventoryRecorder) RecordDay() {
	DaysSimulated.Inc()
}

// RecordAdvance counts an item aged by one day, and an expiry when the
// item crossed its sell-by date on that day
func (r *InventoryRecorder) RecordAdvance(before, after domain.Item) {
	category := string(after.Category())
	ItemsAdvanced.WithLabelValues(category).Inc()

	prev, ok := before.(domain.Ordinary)
	if !ok {
		return
	}
	next, ok := after.(domain.Ordinary)
	if !ok {
		return
	}
	if prev.SellIn() >= 0 && next.SellIn() < 0 {
		ItemsExpired.WithLabelValues(category).Inc()
	}
}
