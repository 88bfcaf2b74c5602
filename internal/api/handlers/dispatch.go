package handlers

import (
	"errors"
	"net/http"
	"os"

	apperrors "org-demo-backend/internal/errors"
	"org-demo-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// HandlerFunc produces a response value or an error. It never writes the status itself.
type HandlerFunc func(c *gin.Context) (interface{}, error)

// File is a response value naming a file on disk to send as-is
type File string

const internalErrorMessage = "Something went wrong"

// Dispatch adapts a HandlerFunc to gin, turning its outcome into a status code and body
func Dispatch(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := h(c)
		if err != nil {
			WriteError(c, err)
			return
		}

		switch v := value.(type) {
		case File:
			serveFile(c, string(v))
		default:
			c.JSON(http.StatusOK, v)
		}
	}
}

// serveFile streams the file at path under its own name. A file that is gone
// by the time it is opened answers like any other missing file.
func serveFile(c *gin.Context, path string) {
	f, err := os.Open(path)
	if err != nil {
		WriteError(c, apperrors.ErrFileNotFound)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		WriteError(c, apperrors.ErrFileNotFound)
		return
	}
	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}

// WriteError sends err as plain text. Client errors carry their own message;
// anything unexpected is logged in full and answered with a generic 500.
func WriteError(c *gin.Context, err error) {
	log := logger.FromGin(c).WithError(err)

	switch {
	case apperrors.IsBadRequest(err):
		log.Info("Bad request")
		c.String(http.StatusBadRequest, publicMessage(err))
	case apperrors.IsNotFound(err):
		log.Info("Not found")
		c.String(http.StatusNotFound, publicMessage(err))
	default:
		log.Error("Handler error")
		c.String(http.StatusInternalServerError, internalErrorMessage)
	}
}

// publicMessage returns the message of the classified error inside err, without
// the wrapping context added on the way up.
func publicMessage(err error) string {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}
	var existsErr *apperrors.AlreadyExistsError
	if errors.As(err, &existsErr) {
		return existsErr.Error()
	}
	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		return notFoundErr.Error()
	}
	return err.Error()
}

// NotFound answers any request that matched no route
func NotFound(c *gin.Context) (interface{}, error) {
	return nil, apperrors.ErrRouteNotFound
}
