package httpx

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

// ServeAssets mounts the embedded form page and client script at the root.
// Any unmatched GET falls back to the form page so shared links always land
// on the tool; unmatched non-GET requests stay 404.
func ServeAssets(r *chi.Mux, assets fs.FS) {
	fileServer := http.FileServer(http.FS(assets))
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			http.NotFound(w, req)
			return
		}
		name := strings.TrimPrefix(path.Clean(req.URL.Path), "/")
		if name != "" && name != "." {
			if _, err := fs.Stat(assets, name); err == nil {
				fileServer.ServeHTTP(w, req)
				return
			}
		}
		http.ServeFileFS(w, req, assets, "index.html")
	})
}
