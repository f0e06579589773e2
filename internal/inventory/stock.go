package inventory

import "github.com/osse101/GildedRose_Go/internal/domain"

// DefaultStock returns the shop's opening inventory
func DefaultStock() []domain.Item {
	return []domain.Item{
		domain.NewDepreciating(Dex5Vest, domain.NewQuality(20), 10),
		domain.NewAppreciating(AgedBrie, domain.NewQuality(0), 2),
		domain.NewDepreciating(Mongoose, domain.NewQuality(7), 5),
		domain.NewLegendary(Sulfuras),
		domain.NewBackstagePass(StageTix, domain.NewQuality(20), 15),
		domain.NewConjured(ManaCake, domain.NewQuality(6), 3),
	}
}
