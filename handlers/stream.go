package handlers

import (
	"io"

	"github.com/gin-gonic/gin"
)

// StreamOrders pushes order lifecycle events over SSE until the client
// disconnects. The back office uses this instead of polling.
func StreamOrders(c *gin.Context) {
	events, cancel := Events.Subscribe()
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case e, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(e.Type, e)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
