package web

import (
	"html/template"
	"time"

	"github.com/gin-gonic/gin/render"
)

// pages holds one template set per page, each combined with the shared layout.
type pages map[string]*template.Template

var _ render.HTMLRender = pages(nil)

const layout = "layout"

var pageNames = []string{"shows.html", "show.html", "episode.html", "error.html"}

func parsePages() (pages, error) {
	p := make(pages, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(assets, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, err
		}
		p[name] = t
	}
	return p, nil
}

// Instance implements render.HTMLRender.
func (p pages) Instance(name string, data any) render.Render {
	return render.HTML{
		Template: p[name],
		Name:     layout,
		Data:     data,
	}
}

// meta is the part of every page the layout renders.
type meta struct {
	Title       string
	Description string
	Site        string
	Year        int
}

func newMeta(title, description string) meta {
	site := siteTitle()
	return meta{
		Title:       title + " - " + site,
		Description: description,
		Site:        site,
		Year:        time.Now().Year(),
	}
}
