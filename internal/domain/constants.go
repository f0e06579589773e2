package domain

// Quality bounds for ordinary items
const (
	MinQualityValue = 0
	MaxQualityValue = 50
)

// MagicQualityValue is the fixed quality reported for legendary items.
const MagicQualityValue = 80
