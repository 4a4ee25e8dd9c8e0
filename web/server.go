// Package web serves the server-rendered show browser.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/vodo-app/vodo/key"
	"github.com/vodo-app/vodo/log"
	"github.com/vodo-app/vodo/media"
)

//go:embed templates static
var assets embed.FS

// PlaceholderPath is where the image shown for shows and episodes without artwork is served.
const PlaceholderPath = "/static/placeholder.svg"

const shutdownTimeout = 5 * time.Second

// Server renders catalog pages. Handler may be used on its own, e.g. with httptest.
type Server struct {
	catalog media.Catalog
	engine  *gin.Engine
}

// New builds the router for catalog. The gin mode is taken from server.mode.
func New(catalog media.Catalog) (*Server, error) {
	if mode := viper.GetString(key.ServerMode); mode != "" {
		gin.SetMode(mode)
	}

	pages, err := parsePages()
	if err != nil {
		return nil, err
	}

	static, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, err
	}

	s := &Server{catalog: catalog, engine: gin.New()}

	s.engine.HTMLRender = pages
	s.engine.Use(requestLogger(), recovery())
	s.engine.StaticFS("/static", http.FS(static))

	s.engine.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, "/shows")
	})
	s.engine.GET("/healthz", handleHealth)
	s.engine.GET("/shows", s.handleShows)
	s.engine.GET("/shows/:showId", s.handleShow)
	s.engine.GET("/shows/:showId/episodes/:episodeId", s.handleEpisode)
	s.engine.NoRoute(func(c *gin.Context) {
		renderError(c, http.StatusNotFound, "This page could not be found.")
	})

	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Serve accepts connections on l until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Listening on %s", l.Addr())
		errCh <- srv.Serve(l)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down web server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

func siteTitle() string {
	if title := viper.GetString(key.SiteTitle); title != "" {
		return title
	}
	return "VODo"
}

var funcs = template.FuncMap{
	"cover": func(url string) string {
		if url == "" {
			return PlaceholderPath
		}
		return url
	},
}
