package handler

import (
	"io/fs"
	"net/http"
)

type pagesHandler struct {
	pages fs.FS
}

func NewPagesHandler(pages fs.FS) *pagesHandler {
	return &pagesHandler{pages: pages}
}

// PageRoutes maps URL aliases to static page files. Every page is reachable
// both with and without the .html suffix; a few carry extra aliases kept from
// the original site.
var PageRoutes = map[string]string{
	"/{$}":           "home.html",
	"/press-release": "pleb-release.html",
}

// pageFiles lists pages that follow the standard /name and /name.html alias
// pair.
var pageFiles = []string{
	"home.html",
	"treasury.html",
	"btc-buy-tracker.html",
	"coveredcall-tracker.html",
	"account.html",
	"compound-interest-calculator.html",
	"btc-loan-ltv.html",
	"financial-planner.html",
	"pleb-release.html",
	"invoice-builder.html",
	"bitcoin-security.html",
	"retirement-calculator.html",
	"privacy-analyzer.html",
}

// Routes returns the full alias → file map.
func Routes() map[string]string {
	routes := make(map[string]string, len(PageRoutes)+2*len(pageFiles))
	for alias, file := range PageRoutes {
		routes[alias] = file
	}
	for _, file := range pageFiles {
		name := file[:len(file)-len(".html")]
		routes["/"+name] = file
		routes["/"+file] = file
	}
	return routes
}

// Serve returns a handler that serves one named page from the embedded
// filesystem.
func (h *pagesHandler) Serve(file string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, h.pages, file)
	}
}
