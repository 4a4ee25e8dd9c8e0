package inline

import (
	"encoding/json"
	"io"

	"github.com/vodo-app/vodo/media"
	"github.com/vodo-app/vodo/season"
)

// SearchOutput is what `inline search --json` prints.
type SearchOutput struct {
	Query  string        `json:"query" jsonschema:"description=Query the catalog was searched with."`
	Result []*media.Show `json:"result" jsonschema:"description=Matching shows in catalog order."`
}

// ShowOutput is what `inline show --json` prints.
type ShowOutput struct {
	ID      int             `json:"id"`
	Name    string          `json:"name"`
	Summary string          `json:"summary" jsonschema:"description=Summary without markup."`
	Image   *media.Image    `json:"image"`
	Seasons []season.Season `json:"seasons" jsonschema:"description=Seasons newest first."`
}

// EpisodeOutput is what `inline episode --json` prints. Previous and Next are null at the
// edges of a season.
type EpisodeOutput struct {
	Show     string         `json:"show" jsonschema:"description=ID of the show the episode belongs to."`
	Episode  *media.Episode `json:"episode"`
	Previous *media.Episode `json:"previous"`
	Next     *media.Episode `json:"next"`
}

func writeJson(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
