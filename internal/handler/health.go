package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// PingFunc checks one dependency.
type PingFunc func(ctx context.Context) error

// Health returns a JSON health check response. cache may be nil when Redis is
// not configured; it is then reported as "disabled". The status code follows
// the store only, since requests are still served with the cache down.
// Never exposes credentials or internals.
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func Health(store PingFunc, cache PingFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		storeStatus := "connected"
		if store(ctx) != nil {
			storeStatus = "error"
		}

		cacheStatus := "disabled"
		if cache != nil {
			cacheStatus = "connected"
			if cache(ctx) != nil {
				cacheStatus = "error"
			}
		}

		status := http.StatusOK
		if storeStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":    status == http.StatusOK,
			"store": storeStatus,
			"cache": cacheStatus,
		})
	}
}
