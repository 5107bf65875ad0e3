package resp

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Write renders r and writes it to w.
func Write(w http.ResponseWriter, r Intent) error {
	res := Render(r)

	if res.ContentType != "" {
		w.Header().Set("Content-Type", res.ContentType)
	} else {
		w.Header().Del("Content-Type")
	}
	w.WriteHeader(res.Status)

	if len(res.Body) == 0 {
		return nil
	}
	if _, err := w.Write(res.Body); err != nil {
		return fmt.Errorf("failed to write response body: %w", err)
	}
	return nil
}

// JSON renders r onto a gin context. Error statuses abort the handler chain.
func JSON(c *gin.Context, r Intent) {
	res := Render(r)

	if len(res.Body) == 0 {
		c.Status(res.Status)
	} else {
		c.Data(res.Status, res.ContentType, res.Body)
	}

	if res.Status >= http.StatusBadRequest {
		c.Abort()
	}
}
