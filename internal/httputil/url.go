package httputil

import "github.com/gin-gonic/gin"

// RequestHost returns the scheme and host the request was made against.
func RequestHost(c *gin.Context) string {
	scheme := "https"
	if c.Request.TLS == nil {
		scheme = "http"
	}

	return scheme + "://" + c.Request.Host
}

// RequestPathV1 returns the URL of the v1 API for the host the request was
// made against.
func RequestPathV1(c *gin.Context) string {
	return RequestHost(c) + "/v1"
}
