package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/mo"
	"github.com/vodo-app/vodo/media"
	"github.com/vodo-app/vodo/util"
)

type ShowPicker func([]*media.Show) *media.Show

type Options struct {
	Out     io.Writer
	Catalog media.Catalog
	Json    bool

	// Query and ShowPicker drive Search.
	Query      string
	ShowPicker mo.Option[ShowPicker]

	// ShowID and Season drive Show. ShowID is also the show Episode resolves neighbours in.
	ShowID string
	Season mo.Option[int]

	EpisodeID string
}

// ParseShowPicker returns a picker of the given kind.
// Kinds are first, last, exact (matching query case-insensitively) and a 0 based index.
func ParseShowPicker(kind, query string) (ShowPicker, error) {
	switch kind {
	case "first":
		return func(shows []*media.Show) *media.Show {
			if len(shows) == 0 {
				return nil
			}
			return shows[0]
		}, nil
	case "last":
		return func(shows []*media.Show) *media.Show {
			if len(shows) == 0 {
				return nil
			}
			return shows[len(shows)-1]
		}, nil
	case "exact":
		return func(shows []*media.Show) *media.Show {
			for _, s := range shows {
				if strings.EqualFold(s.Name, query) {
					return s
				}
			}
			return nil
		}, nil
	default:
		idx, err := strconv.ParseUint(kind, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("unknown show picker: %s", kind)
		}
		return func(shows []*media.Show) *media.Show {
			if len(shows) == 0 {
				return nil
			}
			i := util.Min(int(idx), len(shows)-1)
			return shows[i]
		}, nil
	}
}
