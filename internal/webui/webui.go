// Package webui embeds the static browser client and serves it at the
// server root.
package webui

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed public
var content embed.FS

// Handler returns an http.Handler serving the embedded client files,
// with index.html at /.
func Handler() http.Handler {
	sub, err := fs.Sub(content, "public")
	if err != nil {
		// The subtree is compiled in; a failure here is a build defect.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
