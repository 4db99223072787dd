// Package views holds the HTML templates rendered by the page routes.
package views

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates/*.html
var files embed.FS

// New returns a template engine over the embedded pages. Templates are
// addressed by file name without extension ("home", "results",
// "comparison_results"); "layout" wraps each of them.
func New() *html.Engine {
	sub, err := fs.Sub(files, "templates")
	if err != nil {
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}
