package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/ringside/internal/constants"
	"github.com/ericogr/ringside/internal/game"
	"github.com/ericogr/ringside/internal/logging"
	"github.com/ericogr/ringside/internal/service"
)

type rosterEntry struct {
	game.Character
	MaxHealth int      `json:"max_health"`
	Moves     []string `json:"moves"`
}

// ListRoster returns every character a match can draw, with derived max
// health and the style's move list.
func (h *MatchHandler) ListRoster(c *gin.Context) {
	out := make([]rosterEntry, 0, len(h.cat.Characters))
	for _, ch := range h.cat.Characters {
		out = append(out, rosterEntry{
			Character: ch,
			MaxHealth: game.MaxHealthFor(ch.Stamina),
			Moves:     h.cat.MovesFor(ch.Style),
		})
	}
	c.JSON(http.StatusOK, out)
}

// ListPhases returns the pacing table.
func (h *MatchHandler) ListPhases(c *gin.Context) {
	c.JSON(http.StatusOK, h.cat.Phases)
}

// ListRecords returns the fighter leaderboard, limited to top 10 by default.
func (h *MatchHandler) ListRecords(c *gin.Context) {
	limit := constants.RecordsDefaultLimit
	if s := c.Query(constants.QueryRecordsLimit); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > constants.RecordsMaxLimit {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRecordsLimit})
			return
		}
		limit = n
	}
	records, err := service.TopRecords(h.repo, limit)
	if err != nil {
		logging.Error("failed to fetch records", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchRecords})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(records)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchRecords})
		return
	}
	c.JSON(http.StatusOK, out)
}

// Healthz reports whether the session store answers.
func (h *MatchHandler) Healthz(c *gin.Context) {
	if err := h.repo.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{constants.JSONKeyStatus: "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "ok"})
}
