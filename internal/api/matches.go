package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ericogr/ringside/internal/constants"
	"github.com/ericogr/ringside/internal/game"
	"github.com/ericogr/ringside/internal/logging"
	"github.com/ericogr/ringside/internal/service"
)

// matchIDParam returns the validated match id from the path, or writes a
// 400 and returns false.
func matchIDParam(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param(constants.ParamMatchID))
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidMatchID})
		return "", false
	}
	return id, true
}

// CreateMatch starts a new match with two random fighters.
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	m, err := service.StartMatch(h.repo, h.cat, h.src)
	if err != nil {
		if errors.Is(err, game.ErrConfiguration) {
			logging.Error("catalog cannot host a match", err, nil)
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrCatalogMisconfigured})
			return
		}
		logging.Error("failed to create match", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateMatch})
		return
	}
	c.JSON(http.StatusCreated, h.viewOf(m))
}

// GetMatch returns the current view of a match.
func (h *MatchHandler) GetMatch(c *gin.Context) {
	id, ok := matchIDParam(c)
	if !ok {
		return
	}
	m, err := service.GetMatch(h.repo, id)
	if err != nil {
		if errors.Is(err, service.ErrMatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
			return
		}
		logging.Error("failed to fetch match", err, logging.Fields{constants.LogFieldMatchID: id})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchMatch})
		return
	}
	c.JSON(http.StatusOK, h.viewOf(m))
}

// AdvanceTurn resolves the next exchange of a match.
func (h *MatchHandler) AdvanceTurn(c *gin.Context) {
	id, ok := matchIDParam(c)
	if !ok {
		return
	}
	out, err := service.AdvanceTurn(h.repo, h.cat, h.src, h.bus, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMatchNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		case errors.Is(err, service.ErrMatchFinished):
			body := gin.H{constants.JSONKeyError: constants.ErrMatchFinished}
			if m, gerr := service.GetMatch(h.repo, id); gerr == nil {
				body["match"] = h.viewOf(m)
			}
			c.JSON(http.StatusConflict, body)
		default:
			logging.Error("failed to advance turn", err, logging.Fields{constants.LogFieldMatchID: id})
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedAdvanceTurn})
		}
		return
	}
	c.JSON(http.StatusOK, turnResponse{Match: h.viewOf(out.Match), Turn: out.Result})
}

// DiscardMatch removes a match. Starting a new one afterwards is how the
// ring is reset.
func (h *MatchHandler) DiscardMatch(c *gin.Context) {
	id, ok := matchIDParam(c)
	if !ok {
		return
	}
	if err := service.DiscardMatch(h.repo, h.bus, id); err != nil {
		if errors.Is(err, service.ErrMatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
			return
		}
		logging.Error("failed to discard match", err, logging.Fields{constants.LogFieldMatchID: id})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedDiscardMatch})
		return
	}
	c.Status(http.StatusNoContent)
}
