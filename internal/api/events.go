package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/ringside/internal/constants"
	"github.com/ericogr/ringside/internal/engine"
	"github.com/ericogr/ringside/internal/events"
	"github.com/ericogr/ringside/internal/service"
)

const sseHeartbeatInterval = 15 * time.Second

// eventView is what the browser receives per event. Hints are only set for
// turn and finish events.
type eventView struct {
	Kind    events.Kind   `json:"kind"`
	MatchID string        `json:"match_id"`
	Turn    int           `json:"turn"`
	At      time.Time     `json:"at"`
	LogLine string        `json:"log_line,omitempty"`
	Hints   *engine.Hints `json:"hints,omitempty"`
	Winner  string        `json:"winner,omitempty"`
	Finish  string        `json:"finish,omitempty"`
	Match   *matchView    `json:"match,omitempty"`
}

func (h *MatchHandler) eventViewOf(e events.Event) eventView {
	out := eventView{Kind: e.Kind, MatchID: e.MatchID, Turn: e.Turn, At: e.At}
	if p, ok := e.Payload.(service.TurnPayload); ok {
		hints := p.Result.Hints
		mv := newMatchView(e.MatchID, p.State, h.cat.Phases, e.At)
		out.LogLine = p.Result.LogLine
		out.Hints = &hints
		out.Match = &mv
		if e.Kind == events.KindFinish {
			out.Winner = p.Result.Winner
			out.Finish = p.Result.Finish.Label()
		}
	}
	return out
}

// StreamEvents streams presentation events for one match as Server-Sent
// Events until the client disconnects or the match is discarded.
func (h *MatchHandler) StreamEvents(c *gin.Context) {
	id, ok := matchIDParam(c)
	if !ok {
		return
	}
	if _, err := service.GetMatch(h.repo, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		return
	}
	ch, cancel := h.bus.Subscribe(id)
	defer cancel()

	c.Header(constants.HeaderContentType, constants.ContentTypeEventStream)
	c.Header(constants.CacheControlHeader, constants.CacheControlNoCache)
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ticker := time.NewTicker(sseHeartbeatInterval)
	defer ticker.Stop()
	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.SSEvent("ping", gin.H{"at": time.Now().UTC()})
			c.Writer.Flush()
		case e, open := <-ch:
			if !open {
				return
			}
			c.SSEvent(string(e.Kind), h.eventViewOf(e))
			c.Writer.Flush()
			if e.Kind == events.KindDiscarded {
				return
			}
		}
	}
}
