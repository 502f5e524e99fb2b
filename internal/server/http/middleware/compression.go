package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DecompressRequest unwraps gzip-encoded request bodies so handlers
// always bind against plain JSON.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Content-Encoding"), "gzip") {
			c.Next()
			return
		}

		rawBody := c.Request.Body
		unzipped, err := gzip.NewReader(rawBody)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		defer unzipped.Close()
		defer rawBody.Close()

		c.Request.Body = io.NopCloser(unzipped)
		c.Request.Header.Del("Content-Encoding")
		c.Next()
	}
}
