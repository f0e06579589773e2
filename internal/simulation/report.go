package simulation

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// Report text
const (
	ReportBanner    = "OMGHAI!"
	ReportDayHeader = "-------- day %d --------"
	ReportLineFmt   = "Item { Name = %s, Quality = %s, SellIn = %d }"
)

// ItemView is the display form of an item.
// SellIn is nil for legendary items, which have no shelf life.
type ItemView struct {
	Name         string          `json:"name"`
	Category     domain.Category `json:"category"`
	CategoryName string          `json:"category_name"`
	Quality      int             `json:"quality"`
	SellIn       *int            `json:"sell_in,omitempty"`
}

// ViewOf builds the display form of an item
func ViewOf(item domain.Item) ItemView {
	view := ItemView{
		Name:         item.Name(),
		Category:     item.Category(),
		CategoryName: item.Category().DisplayName(),
	}
	switch it := item.(type) {
	case domain.Legendary:
		view.Quality = it.Quality().Int()
	case domain.Ordinary:
		sellIn := it.SellIn()
		view.Quality = it.Quality().Int()
		view.SellIn = &sellIn
	}
	return view
}

// ViewsOf builds the display form of every item
func ViewsOf(items []domain.Item) []ItemView {
	views := make([]ItemView, len(items))
	for i, item := range items {
		views[i] = ViewOf(item)
	}
	return views
}

// ReportOptions controls how a report is rendered
type ReportOptions struct {
	Color bool
	// DayHeaders prints a header above every snapshot
	DayHeaders bool
}

// FormatItem renders one report line. Legendary items report a shelf life of 0.
func FormatItem(view ItemView) string {
	return formatItem(view, fmt.Sprint(view.Quality))
}

func formatItem(view ItemView, quality string) string {
	sellIn := 0
	if view.SellIn != nil {
		sellIn = *view.SellIn
	}
	return fmt.Sprintf(ReportLineFmt, view.Name, quality, sellIn)
}

// WriteReport writes the banner followed by every snapshot after day 0
func WriteReport(w io.Writer, snapshots []Snapshot, opts ReportOptions) error {
	if _, err := fmt.Fprintln(w, ReportBanner); err != nil {
		return err
	}

	for _, snapshot := range snapshots {
		if snapshot.Day == 0 {
			continue
		}
		if opts.DayHeaders {
			if _, err := fmt.Fprintf(w, ReportDayHeader+"\n", snapshot.Day); err != nil {
				return err
			}
		}
		for _, item := range snapshot.Items {
			view := ViewOf(item)
			line := FormatItem(view)
			if opts.Color {
				line = formatItem(view, colorQuality(view))
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// colorQuality highlights legendary items, expired stock and maxed quality
func colorQuality(view ItemView) string {
	var c *color.Color
	switch {
	case view.SellIn == nil:
		c = color.New(color.FgYellow)
	case *view.SellIn < 0:
		c = color.New(color.FgRed)
	case view.Quality == domain.MaxQualityValue:
		c = color.New(color.FgGreen)
	default:
		return fmt.Sprint(view.Quality)
	}
	c.EnableColor()
	return c.Sprint(view.Quality)
}
