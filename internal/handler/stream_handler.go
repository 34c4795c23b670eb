package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"tablero/internal/stream"
)

// SnapshotFunc fetches the current full snapshot of a collection.
type SnapshotFunc func(ctx context.Context) (interface{}, error)

// StreamHandler serves collection snapshots over Server-Sent Events.
// Every event carries the full collection; clients replace their local
// copy on each message.
type StreamHandler struct {
	hub       *stream.Hub
	snapshots map[string]SnapshotFunc
}

// NewStreamHandler creates a new StreamHandler.
func NewStreamHandler(hub *stream.Hub, snapshots map[string]SnapshotFunc) *StreamHandler {
	return &StreamHandler{hub: hub, snapshots: snapshots}
}

// Stream handles GET /api/v1/stream/:collection
func (h *StreamHandler) Stream(c *gin.Context) {
	collection := c.Param("collection")
	snapshot, ok := h.snapshots[collection]
	if !ok {
		RespondError(c, http.StatusNotFound, "NOT_FOUND", "unknown collection")
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	sub, cancel := h.hub.Subscribe(collection)
	defer cancel()

	// Initial snapshot so the client does not wait for the next change.
	if current, err := snapshot(c.Request.Context()); err == nil {
		if payload, err := json.Marshal(current); err == nil {
			c.SSEvent("snapshot", string(payload))
			c.Writer.Flush()
		}
	}

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, open := <-sub:
			if !open {
				return false
			}
			c.SSEvent("snapshot", string(msg))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
