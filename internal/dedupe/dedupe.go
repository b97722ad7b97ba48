package dedupe

// Package dedupe provides shared singleflight groups used to deduplicate
// concurrent requests. Only one job runs for a given key while other
// callers wait for the same result.

import "golang.org/x/sync/singleflight"

// TurnGroup serializes turn resolution per match. Requests that arrive
// while a turn for the same match is in flight share its result, so a
// double click resolves a single turn. Keys come from TurnKey.
var TurnGroup singleflight.Group

// TurnKey builds the TurnGroup key for a match.
func TurnKey(matchID string) string {
	return "turn:" + matchID
}
