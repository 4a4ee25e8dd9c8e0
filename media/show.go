package media

import (
	"strconv"

	"github.com/vodo-app/vodo/util"
)

type Show struct {
	// ID is the catalog identifier of the show.
	ID int `json:"id" jsonschema:"description=ID of the show in the catalog."`
	// Name is the display title.
	Name string `json:"name" jsonschema:"description=Title of the show."`
	// Summary is the show description in html format. Treat it as untrusted markup.
	Summary string `json:"summary" jsonschema:"description=Description of the show in html format."`
	// Image is the show poster. Nil when the catalog has none.
	Image *Image `json:"image" jsonschema:"description=Poster of the show."`
	// Embedded carries the episodes when the show was fetched with them.
	Embedded struct {
		Episodes []*Episode `json:"episodes" jsonschema:"description=Every episode of the show in catalog order."`
	} `json:"_embedded"`
}

func (s *Show) String() string {
	return s.Name
}

// Key returns the show id in the string form used by routes and catalog lookups.
func (s *Show) Key() string {
	return strconv.Itoa(s.ID)
}

// Episodes returns the embedded episode collection, possibly empty.
func (s *Show) Episodes() []*Episode {
	return s.Embedded.Episodes
}

// Cover returns the poster URL or an empty string.
func (s *Show) Cover() string {
	return Cover(s.Image)
}

// PlainSummary returns the summary with markup removed.
func (s *Show) PlainSummary() string {
	return util.PlainText(s.Summary)
}
