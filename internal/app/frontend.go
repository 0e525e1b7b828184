package app

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/naveen224793-boop/assignment3/internal/shared/apperror"
	"github.com/naveen224793-boop/assignment3/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// registerFrontend serves the pre-built bundle: "/" is index.html and any
// other unmatched GET or HEAD resolves to a file inside dir. Everything else
// gets the JSON not-found envelope.
func registerFrontend(router *gin.Engine, dir string) {
	router.GET("/", func(c *gin.Context) {
		serveStatic(c, dir, "index.html")
	})

	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			notFound(c)
			return
		}
		serveStatic(c, dir, c.Request.URL.Path)
	})
}

func serveStatic(c *gin.Context, dir, name string) {
	// Cleaning against "/" keeps the result inside dir.
	clean := path.Clean("/" + name)
	file := filepath.Join(dir, filepath.FromSlash(clean))

	info, err := os.Stat(file)
	if err == nil && info.IsDir() {
		file = filepath.Join(file, "index.html")
		info, err = os.Stat(file)
	}
	if err != nil || info.IsDir() {
		notFound(c)
		return
	}

	c.File(file)
}

func notFound(c *gin.Context) {
	response.Error(c, apperror.ErrNotFound.HTTPStatus, apperror.ErrNotFound.Message, nil)
}
