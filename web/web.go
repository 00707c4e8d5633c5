// Package web embeds the page templates and static assets.
package web

import "embed"

// Templates holds layout.html and one file per page
//
//go:embed templates/*.html
var Templates embed.FS

// Static holds assets served under /static
//
//go:embed static
var Static embed.FS
