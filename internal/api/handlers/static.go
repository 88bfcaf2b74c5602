package handlers

import (
	"os"
	"path/filepath"

	apperrors "org-demo-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// StaticHandler serves files from a single directory
type StaticHandler struct {
	root string
}

// NewStaticHandler creates a static handler rooted at dir
func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{root: dir}
}

// Index serves index.html
func (h *StaticHandler) Index(c *gin.Context) (interface{}, error) {
	return h.resolve("index.html")
}

// Favicon serves favicon.ico
func (h *StaticHandler) Favicon(c *gin.Context) (interface{}, error) {
	return h.resolve("favicon.ico")
}

// Robots serves robots.txt
func (h *StaticHandler) Robots(c *gin.Context) (interface{}, error) {
	return h.resolve("robots.txt")
}

// Asset serves /static/*filepath
func (h *StaticHandler) Asset(c *gin.Context) (interface{}, error) {
	return h.resolve(c.Param("filepath"))
}

// resolve maps a request path onto a regular file below root.
// Cleaning against "/" first drops any ".." that would climb out of root.
func (h *StaticHandler) resolve(name string) (interface{}, error) {
	rel := filepath.Clean("/" + filepath.FromSlash(name))
	path := filepath.Join(h.root, rel)

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, apperrors.ErrFileNotFound
	}
	return File(path), nil
}
