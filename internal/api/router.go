package api

import (
	"github.com/gin-gonic/gin"

	"github.com/ericogr/ringside/internal/constants"
)

// NewRouter wires every route onto a gin engine. Middleware is left to the
// caller.
func NewRouter(engine *gin.Engine, h *MatchHandler) *gin.Engine {
	apiRoutes := engine.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteRoster, h.ListRoster)
		apiRoutes.GET(constants.RoutePhases, h.ListPhases)
		apiRoutes.GET(constants.RouteRecords, h.ListRecords)
		apiRoutes.GET(constants.RouteVersion, Version)

		apiRoutes.POST(constants.RouteMatches, h.CreateMatch)
		apiRoutes.GET(constants.RouteMatchByID, h.GetMatch)
		apiRoutes.DELETE(constants.RouteMatchByID, h.DiscardMatch)
		apiRoutes.POST(constants.RouteMatchTurn, h.AdvanceTurn)
		apiRoutes.GET(constants.RouteMatchEvents, h.StreamEvents)
	}
	engine.GET(constants.RouteHealthz, h.Healthz)
	return engine
}
