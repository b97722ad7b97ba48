package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ericogr/ringside/internal/constants"
	"github.com/ericogr/ringside/internal/dedupe"
	"github.com/ericogr/ringside/internal/engine"
	"github.com/ericogr/ringside/internal/events"
	"github.com/ericogr/ringside/internal/game"
	"github.com/ericogr/ringside/internal/logging"
)

// TurnOutcome is the stored session after a turn plus what happened in it.
type TurnOutcome struct {
	Match  *game.Match
	Result engine.TurnResult
	// Shared is true when this caller joined a turn already in flight.
	Shared bool
}

// TurnPayload is attached to turn and finish events.
type TurnPayload struct {
	State  game.MatchState   `json:"state"`
	Result engine.TurnResult `json:"result"`
}

// AdvanceTurn resolves one turn for the match and persists it. Concurrent
// calls for the same match collapse into a single resolution. Fighter
// records are updated once, on the turn that decides the match.
func AdvanceTurn(repo MatchRepo, cat *game.Catalog, src engine.Source, pub Publisher, publicID string) (*TurnOutcome, error) {
	v, err, shared := dedupe.TurnGroup.Do(dedupe.TurnKey(publicID), func() (interface{}, error) {
		return advance(repo, cat, src, pub, publicID)
	})
	if err != nil {
		return nil, err
	}
	out := *v.(*TurnOutcome)
	out.Shared = shared
	return &out, nil
}

func advance(repo MatchRepo, cat *game.Catalog, src engine.Source, pub Publisher, publicID string) (*TurnOutcome, error) {
	m, err := GetMatch(repo, publicID)
	if err != nil {
		return nil, err
	}
	next, res, err := engine.ResolveTurn(m.State, cat, src)
	if err != nil {
		return nil, err
	}
	m.State = next
	m.LastActivityAt = now()

	if err := repo.UpdateMatch(m); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// discarded while the turn was resolving
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("save match %s: %w", publicID, err)
	}
	if next.Terminal() && !m.RecordsCounted {
		countRecords(repo, m)
	}

	logging.Debug("turn resolved", logging.Fields{
		constants.LogFieldMatchID:  publicID,
		constants.LogFieldTurn:     res.Turn,
		constants.LogFieldDamage:   res.Damage,
		constants.LogFieldMomentum: res.Momentum,
	})
	payload := TurnPayload{State: next, Result: res}
	publish(pub, events.Event{Kind: events.KindTurn, MatchID: publicID, Turn: res.Turn, Payload: payload})
	if res.Terminal {
		logging.Info("match finished", logging.Fields{
			constants.LogFieldMatchID: publicID,
			constants.LogFieldTurn:    res.Turn,
			constants.LogFieldWinner:  res.Winner,
			constants.LogFieldFinish:  string(res.Finish),
		})
		publish(pub, events.Event{Kind: events.KindFinish, MatchID: publicID, Turn: res.Turn, Payload: payload})
	}
	return &TurnOutcome{Match: m, Result: res}, nil
}

// countRecords runs after the decisive turn is stored. A failure is logged
// and the result stands.
func countRecords(repo MatchRepo, m *game.Match) {
	fields := logging.Fields{constants.LogFieldMatchID: m.PublicID}
	if err := repo.UpdateRecordsOnMatchEnd(m); err != nil {
		logging.Error("failed to update fighter records", err, fields)
		return
	}
	m.RecordsCounted = true
	if err := repo.UpdateMatch(m); err != nil {
		logging.Error("failed to mark fighter records counted", err, fields)
	}
}
