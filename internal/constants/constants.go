package constants

// Centralized constants for headers, env keys and routes.
const (
	// Environment variable keys
	EnvAddr        = "RINGSIDE_ADDR"
	EnvConfig      = "RINGSIDE_CONFIG"
	EnvDB          = "RINGSIDE_DB"
	EnvIdleTTL     = "RINGSIDE_MATCH_IDLE_TTL"
	EnvSeed        = "RINGSIDE_SEED"
	EnvLogLevel    = "RINGSIDE_LOG_LEVEL"
	EnvHealthcheck = "RINGSIDE_HEALTHCHECK_URL"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"

	ContentTypeEventStream = "text/event-stream"

	CacheControlHeader  = "Cache-Control"
	CacheControlNoCache = "no-cache, no-store, must-revalidate"
)

// Routes used by the backend router
const (
	RouteAPIPrefix    = "/api"
	RouteRoster       = "/roster"
	RoutePhases       = "/phases"
	RouteMatches      = "/matches"
	RouteMatchByID    = "/matches/:matchID"
	RouteMatchTurn    = "/matches/:matchID/turn"
	RouteMatchEvents  = "/matches/:matchID/events"
	RouteRecords      = "/records"
	RouteVersion      = "/version"
	RouteHealthz      = "/healthz"
	ParamMatchID      = "matchID"
	QueryRecordsLimit = "limit"
)

// Records listing bounds
const (
	RecordsDefaultLimit = 10
	RecordsMaxLimit     = 100
)

// Common JSON response keys
const (
	JSONKeyError  = "error"
	JSONKeyStatus = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidMatchID       = "Invalid match ID"
	ErrMatchNotFound        = "Match not found"
	ErrMatchFinished        = "Match already finished"
	ErrFailedCreateMatch    = "Failed to create match"
	ErrFailedAdvanceTurn    = "Failed to advance turn"
	ErrFailedFetchMatch     = "Failed to fetch match"
	ErrFailedDiscardMatch   = "Failed to discard match"
	ErrFailedFetchRecords   = "Failed to fetch records"
	ErrInvalidRecordsLimit  = "limit must be between 1 and 100"
	ErrCatalogMisconfigured = "Match catalog is misconfigured"
)

// Logging field names
const (
	LogFieldMatchID  = "match_id"
	LogFieldTurn     = "turn"
	LogFieldWinner   = "winner"
	LogFieldFinish   = "finish"
	LogFieldLeft     = "left"
	LogFieldRight    = "right"
	LogFieldDamage   = "damage"
	LogFieldMomentum = "momentum"
	LogFieldCount    = "count"
	LogFieldSeed     = "seed"
	LogFieldAddr     = "addr"
	LogFieldDSN      = "dsn"
)
