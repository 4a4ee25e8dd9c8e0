package media

import (
	"fmt"
	"strconv"

	"github.com/vodo-app/vodo/util"
)

// Episode is a single episode of a show, addressed either by its global ID or by the
// (Season, Number) coordinate within its show.
type Episode struct {
	ID      int    `json:"id" jsonschema:"description=ID of the episode in the catalog."`
	Name    string `json:"name" jsonschema:"description=Title of the episode."`
	Summary string `json:"summary" jsonschema:"description=Description of the episode in html format."`
	Image   *Image `json:"image" jsonschema:"description=Still image of the episode."`
	// Airdate is formatted as YYYY-MM-DD and is empty for unscheduled episodes.
	Airdate string `json:"airdate" jsonschema:"description=Air date formatted as YYYY-MM-DD."`
	// Runtime is in minutes.
	Runtime int `json:"runtime" jsonschema:"description=Runtime in minutes."`
	Season  int `json:"season" jsonschema:"description=Season the episode belongs to. Starts at 1."`
	// Number is 1-indexed and unique within its season.
	Number int `json:"number" jsonschema:"description=Position of the episode within its season. Starts at 1."`
}

func (e *Episode) String() string {
	return e.Name
}

// Key returns the episode id in the string form used by routes and catalog lookups.
func (e *Episode) Key() string {
	return strconv.Itoa(e.ID)
}

// Code returns the conventional S01E02 label.
func (e *Episode) Code() string {
	return fmt.Sprintf("S%02dE%02d", e.Season, e.Number)
}

// Cover returns the still image URL or an empty string.
func (e *Episode) Cover() string {
	return Cover(e.Image)
}

// PlainSummary returns the summary with markup removed.
func (e *Episode) PlainSummary() string {
	return util.PlainText(e.Summary)
}
