package domain

import "fmt"

// Item is any piece of inventory. The set of implementations is closed:
// Legendary, Depreciating, Appreciating, Conjured and BackstagePass.
type Item interface {
	Name() string
	Category() Category
	isItem()
}

// Ordinary is an item that has both a quality and a shelf life.
// Every category except Legendary is ordinary.
type Ordinary interface {
	Item
	Quality() Quality
	// SellIn is the number of days left to sell the item; negative once expired.
	SellIn() int
}

// stock holds the state shared by all ordinary items
type stock struct {
	name    string
	quality Quality
	sellIn  int
}

func (s stock) Name() string     { return s.name }
func (s stock) Quality() Quality { return s.quality }
func (s stock) SellIn() int      { return s.sellIn }
func (stock) isItem()            {}

// Legendary is an item with a constant value and no shelf life
type Legendary struct {
	name string
}

// NewLegendary creates a legendary item
func NewLegendary(name string) Legendary {
	return Legendary{name: name}
}

func (l Legendary) Name() string        { return l.name }
func (Legendary) Category() Category    { return CategoryLegendary }
func (Legendary) Quality() MagicQuality { return MagicQuality{} }
func (Legendary) isItem()               {}

func (l Legendary) String() string {
	return fmt.Sprintf("Legendary{%s, %s}", l.name, MagicQuality{})
}

// Depreciating is an item whose value decreases as its shelf life decreases
type Depreciating struct{ stock }

// NewDepreciating creates a depreciating item
func NewDepreciating(name string, quality Quality, sellIn int) Depreciating {
	return Depreciating{stock{name: name, quality: quality, sellIn: sellIn}}
}

func (Depreciating) Category() Category { return CategoryDepreciating }

// Appreciating is an item whose value increases as its shelf life decreases
type Appreciating struct{ stock }

// NewAppreciating creates an appreciating item
func NewAppreciating(name string, quality Quality, sellIn int) Appreciating {
	return Appreciating{stock{name: name, quality: quality, sellIn: sellIn}}
}

func (Appreciating) Category() Category { return CategoryAppreciating }

// Conjured is similar to Depreciating, but deteriorates twice as quickly
type Conjured struct{ stock }

// NewConjured creates a conjured item
func NewConjured(name string, quality Quality, sellIn int) Conjured {
	return Conjured{stock{name: name, quality: quality, sellIn: sellIn}}
}

func (Conjured) Category() Category { return CategoryConjured }

// BackstagePass is an item whose value climbs in tiers as the event nears,
// then drops to nothing once the event has passed
type BackstagePass struct{ stock }

// NewBackstagePass creates a backstage pass
func NewBackstagePass(name string, quality Quality, sellIn int) BackstagePass {
	return BackstagePass{stock{name: name, quality: quality, sellIn: sellIn}}
}

func (BackstagePass) Category() Category { return CategoryBackstagePass }

func (s stock) String() string {
	return fmt.Sprintf("{%s, quality=%s, sell_in=%d}", s.name, s.quality, s.sellIn)
}

// NewItem builds the variant for category from raw values.
// Quality is clamped; legendary items ignore quality and sellIn.
func NewItem(category Category, name string, quality, sellIn int) (Item, error) {
	q := NewQuality(quality)
	switch category {
	case CategoryLegendary:
		return NewLegendary(name), nil
	case CategoryDepreciating:
		return NewDepreciating(name, q, sellIn), nil
	case CategoryAppreciating:
		return NewAppreciating(name, q, sellIn), nil
	case CategoryConjured:
		return NewConjured(name, q, sellIn), nil
	case CategoryBackstagePass:
		return NewBackstagePass(name, q, sellIn), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, string(category))
	}
}
