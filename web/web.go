// Package web embeds the static browser client served at the site root.
package web

import (
	"embed"
	"net/http"
)

//go:embed index.html static
var embeddedFiles embed.FS

// Assets returns the embedded client as an http.FileSystem.
func Assets() http.FileSystem {
	return http.FS(embeddedFiles)
}
