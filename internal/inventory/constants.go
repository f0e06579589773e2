package inventory

// Aging rates
const (
	RateNormal  = 1 // per day while within shelf life
	RateExpired = 2 // per day once the sell-by date has passed

	// ConjuredFactor scales the depreciation of conjured items
	ConjuredFactor = 2
)

// Backstage pass tiers, measured against the shelf life before the day advances
const (
	BackstageCloseTier = 5
	BackstageNearTier  = 10

	BackstageCloseIncrease   = 3
	BackstageNearIncrease    = 2
	BackstageDefaultIncrease = 1
)

// Well-known item names
const (
	// Depreciating items
	Dex5Vest = "+5 Dexterity Vest"
	Mongoose = "Elixir of the Mongoose"

	// Conjured items
	ManaCake = "Conjured Mana Cake"

	// Appreciating items
	AgedBrie = "Aged Brie"

	// Backstage passes
	StageTix = "Backstage passes to a TAFKAL80ETC concert"

	// Legendary items
	Sulfuras = "Sulfuras, Hand of Ragnaros"
)
