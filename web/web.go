// Package web embeds the static storefront served at the site root.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-faster/errors"
)

//go:embed static
var files embed.FS

// Handler returns an http.Handler serving the embedded storefront files.
func Handler() (http.Handler, error) {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		return nil, errors.Wrap(err, "sub static fs")
	}
	return http.FileServerFS(sub), nil
}
