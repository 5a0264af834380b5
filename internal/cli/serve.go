package cli

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/protviz/pkg/errors"
	"github.com/matzehuels/protviz/pkg/render"
)

func newServeCmd() *cobra.Command {
	var (
		addr      string
		noCache   bool
		cacheDir  string
		redisAddr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve protein figures over HTTP",
		Long: `Serve starts an HTTP server that renders figures on demand. Zoom and
track selection are stateless, passed as query parameters per request:

  GET /proteins/{accession}/figure.svg?view=20:80&tracks=pdb,ted&collapse=ted`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			backend, err := newBackend(ctx, cacheOptions{
				noCache:   noCache,
				cacheDir:  cacheDir,
				redisAddr: redisAddr,
			})
			if err != nil {
				return err
			}
			ds := newSources(backend)
			defer ds.Close()

			fs := &figureServer{ds: ds}
			srv := &http.Server{
				Addr:              addr,
				Handler:           fs.routes(),
				ReadHeaderTimeout: 10 * time.Second,
				BaseContext:       func(net.Listener) context.Context { return ctx },
			}

			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			logger.Info("listening", "addr", addr)
			printInfo("Serving figures on %s", addr)
			printDetail("GET /proteins/{accession}/figure.svg")

			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return errors.Wrap(errors.ErrCodeInternal, err, "http server")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching entirely")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "cache directory (default ~/.cache/protviz)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for a shared cache")

	return cmd
}

// figureServer renders figures per request. All request state lives in the
// URL, so the server itself is stateless and safe for concurrent requests.
type figureServer struct {
	ds *sources
}

func (s *figureServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	r.Get("/proteins/{accession}/figure.svg", s.handleFigure)
	return r
}

func (s *figureServer) handleFigure(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accession := strings.ToUpper(chi.URLParam(r, "accession"))
	if err := errors.ValidateAccession(accession); err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	view, err := parseView(q.Get("view"))
	if err != nil {
		writeError(w, err)
		return
	}
	specs, err := parseTrackSpecs(splitParam(q.Get("tracks")), splitParam(q.Get("collapse")))
	if err != nil {
		writeError(w, err)
		return
	}
	refresh := q.Get("refresh") == "true"

	width := 960.0
	if ws := q.Get("width"); ws != "" {
		if parsed, err := strconv.ParseFloat(ws, 64); err == nil && parsed >= 200 && parsed <= 4000 {
			width = parsed
		}
	}

	stack, err := buildStack(ctx, s.ds, accession, specs, nil, refresh)
	if err != nil {
		writeError(w, err)
		return
	}
	arr, err := stack.Arrange(view)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(render.RenderSVG(arr, render.WithWidth(width)))
}

func splitParam(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// writeError maps structured error codes to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidAccession, errors.ErrCodeInvalidWindow, errors.ErrCodeInvalidTrack:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeProteinNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeNetwork, errors.ErrCodeTimeout:
		status = http.StatusBadGateway
	}
	http.Error(w, errors.UserMessage(err), status)
}
