package domain

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category names the kind of an item, and therefore how it ages
type Category string

const (
	CategoryLegendary     Category = "legendary"
	CategoryDepreciating  Category = "depreciating"
	CategoryAppreciating  Category = "appreciating"
	CategoryConjured      Category = "conjured"
	CategoryBackstagePass Category = "backstage_pass"
)

// Categories lists every known category in display order
var Categories = []Category{
	CategoryDepreciating,
	CategoryAppreciating,
	CategoryConjured,
	CategoryBackstagePass,
	CategoryLegendary,
}

// ParseCategory resolves a category tag, ignoring case and surrounding space
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// IsValid reports whether c is one of the known categories
func (c Category) IsValid() bool {
	return slices.Contains(Categories, c)
}

// DisplayName returns a title-cased label, e.g. "Backstage Pass"
func (c Category) DisplayName() string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(c), "_", " "))
}

func (c Category) String() string {
	return string(c)
}
