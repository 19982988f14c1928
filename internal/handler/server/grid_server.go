package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"socialite/internal/core/domain"
	"socialite/internal/core/ports"
	"socialite/internal/core/usecases"
)

var gridTemplate = template.Must(template.New("grid").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>SociaLite</title>
<style>
body { background: #111; color: #ddd; font-family: sans-serif; margin: 1rem; }
.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(320px, 1fr)); gap: 1rem; }
.card { background: #222; border-radius: 10px; padding: .5rem; }
.card iframe { width: 100%; aspect-ratio: 16 / 9; border: 0; border-radius: 6px; }
.title { font-size: .9rem; margin: .4rem 0 .2rem; }
.meta { font-size: .8rem; color: #888; }
</style>
</head>
<body>
<h1>SociaLite</h1>
{{if .Videos}}
<div class="grid">
{{range .Videos}}
<div class="card">
<iframe src="{{.EmbedURL}}" title="{{.Title}}" allowfullscreen loading="lazy"></iframe>
<div class="title">{{.Title}}</div>
<div class="meta">{{.ChannelName}} · {{.Duration}}</div>
</div>
{{end}}
</div>
{{else}}
<p>No videos yet. Refresh the feed in the terminal.</p>
{{end}}
{{if not .RefreshedAt.IsZero}}<p class="meta">Last refresh: {{.RefreshedAt.Format "2006-01-02 15:04"}}</p>{{end}}
</body>
</html>
`))

type gridPage struct {
	Videos      domain.Feed
	RefreshedAt time.Time
}

type GridServer interface {
	Handler() http.Handler
	// ListenAndServe starts serving in the background and returns the page URL.
	// The server shuts down when ctx is cancelled.
	ListenAndServe(ctx context.Context, addr string) (string, error)
}

type gridServerImpl struct {
	feedUseCase    usecases.FeedUseCase
	metricsHandler http.Handler
	logger         ports.LoggerPort
}

func NewGridServer(feedUseCase usecases.FeedUseCase, metricsHandler http.Handler, logger ports.LoggerPort) GridServer {
	return &gridServerImpl{
		feedUseCase:    feedUseCase,
		metricsHandler: metricsHandler,
		logger:         logger,
	}
}

func (h *gridServerImpl) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.renderGrid)
	if h.metricsHandler != nil {
		mux.Handle("GET /metrics", h.metricsHandler)
	}

	return mux
}

func (h *gridServerImpl) renderGrid(w http.ResponseWriter, r *http.Request) {
	settings, err := h.feedUseCase.GetSettings()
	if err != nil {
		h.logger.Error("Failed to load settings for grid page", err)
		http.Error(w, "Could not load the feed.", http.StatusInternalServerError)
		return
	}

	page := gridPage{
		Videos:      settings.Visible(settings.Snapshot),
		RefreshedAt: settings.RefreshedAt,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := gridTemplate.Execute(w, page); err != nil {
		h.logger.Error("Failed to render grid page", err)
	}
}

func (h *gridServerImpl) ListenAndServe(ctx context.Context, addr string) (string, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	httpServer := &http.Server{
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	pageURL := "http://" + listener.Addr().String() + "/"

	go func() {
		h.logger.Info("Starting grid server on " + pageURL)

		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			h.logger.Error("Grid server stopped unexpectedly", err)
		}

		h.logger.Info("Grid server: Serve returned.")
	}()

	go func() {
		<-ctx.Done()

		h.logger.Info("Grid server: context done (" + ctx.Err().Error() + "), shutting down.")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelShutdown()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			h.logger.Error("Error shutting down grid server", err)
		} else {
			h.logger.Info("Grid server shut down.")
		}
	}()

	return pageURL, nil
}
