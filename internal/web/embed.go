// Package web renders the dashboard pages and serves their static assets.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"os"
)

//go:embed templates static
var embedded embed.FS

// Assets returns the template/static filesystem: the embedded copy, or dir
// on disk when set.
func Assets(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	return embedded
}

// StaticHandler serves files under static/ of assets. Mount it with the
// "/static/" prefix stripped.
func StaticHandler(assets fs.FS) (http.Handler, error) {
	static, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, err
	}
	return http.FileServer(http.FS(static)), nil
}
