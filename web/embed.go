// Package web holds the embedded static calculator pages. The API treats
// them as opaque assets served by logical route key.
package web

import "embed"

//go:embed pages/*.html
var PagesFS embed.FS
