package inventory

import (
	"fmt"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// Engine provides the pure daily aging rules (no I/O, no state)
type Engine struct{}

// NewEngine creates a new aging engine
func NewEngine() *Engine {
	return &Engine{}
}

// Advance applies the rules for the passage of a single business day and
// returns the item's next state. The input is never modified.
//
// Advance panics on a nil item or on an item type outside the closed set
// declared in the domain package; both are programming errors.
func (e *Engine) Advance(item domain.Item) domain.Item {
	switch it := item.(type) {
	case nil:
		panic("inventory: cannot advance a nil item")
	case domain.Legendary:
		// Legendary things never change
		return it
	case domain.Ordinary:
		return e.advanceOrdinary(it)
	default:
		panic(fmt.Sprintf("inventory: unknown item type %T", item))
	}
}

// AdvanceBy applies Advance once per day. Zero or negative days return the item as is.
func (e *Engine) AdvanceBy(item domain.Item, days int) domain.Item {
	for day := 0; day < days; day++ {
		item = e.Advance(item)
	}
	return item
}

func (e *Engine) advanceOrdinary(item domain.Ordinary) domain.Ordinary {
	agedTo := item.SellIn() - 1
	rate := RateNormal
	if agedTo < 0 {
		rate = RateExpired
	}

	quality := item.Quality()
	switch it := item.(type) {
	case domain.Depreciating:
		return domain.NewDepreciating(it.Name(), quality.SubN(rate), agedTo)
	case domain.Appreciating:
		return domain.NewAppreciating(it.Name(), quality.AddN(rate), agedTo)
	case domain.Conjured:
		return domain.NewConjured(it.Name(), quality.SubN(ConjuredFactor*rate), agedTo)
	case domain.BackstagePass:
		return domain.NewBackstagePass(it.Name(), backstageQuality(quality, it.SellIn(), agedTo), agedTo)
	default:
		panic(fmt.Sprintf("inventory: unknown ordinary item type %T", item))
	}
}

// backstageQuality has a hard cliff once the event has passed (agedTo < 0).
// Until then, the increase is tiered on the current shelf life, i.e. before
// advancing the clock.
func backstageQuality(quality domain.Quality, sellIn, agedTo int) domain.Quality {
	switch {
	case agedTo < 0:
		return domain.MinQuality
	case sellIn <= BackstageCloseTier:
		return quality.AddN(BackstageCloseIncrease)
	case sellIn <= BackstageNearTier:
		return quality.AddN(BackstageNearIncrease)
	default:
		return quality.AddN(BackstageDefaultIncrease)
	}
}
