package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ericogr/ringside/internal/game"
)

func newTestRepo(t *testing.T) Repository {
	t.Helper()
	db, err := OpenAndMigrate("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewSQLiteRepository(db)
}

func finishedMatch(winner, loser game.Character, finish game.FinishType) *game.Match {
	state := game.MatchState{
		Left:       game.NewFighter(winner),
		Right:      game.NewFighter(loser),
		TurnNumber: 9,
		Winner:     winner.Name,
		WinnerSide: game.SideLeft,
		Finish:     finish,
		Log:        []string{"last", "first"},
	}
	state.Right.Health = -3
	return &game.Match{PublicID: uuid.NewString(), State: state, LastActivityAt: time.Now()}
}

func TestMatchRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	roster := game.DefaultCharacters()
	m := &game.Match{
		PublicID: uuid.NewString(),
		State: game.MatchState{
			Left:        game.NewFighter(roster[0]),
			Right:       game.NewFighter(roster[1]),
			TurnNumber:  1,
			CurrentMove: game.NoMoveYet,
			Log:         []string{game.OpeningLine},
		},
		LastActivityAt: time.Now(),
	}
	require.NoError(t, repo.CreateMatch(m))

	got, err := repo.GetMatchByPublicID(m.PublicID)
	require.NoError(t, err)
	require.Equal(t, m.State.Left, got.State.Left)
	require.Equal(t, m.State.Log, got.State.Log)

	got.State.TurnNumber = 2
	got.State.Momentum = -12
	got.State.Log = append([]string{"Turn 1"}, got.State.Log...)
	require.NoError(t, repo.UpdateMatch(got))

	again, err := repo.GetMatchByPublicID(m.PublicID)
	require.NoError(t, err)
	require.Equal(t, 2, again.State.TurnNumber)
	require.Equal(t, -12, again.State.Momentum)
	require.Len(t, again.State.Log, 2)
}

func TestGetMatchByPublicID_NotFound(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.GetMatchByPublicID("nope")
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDeleteMatch(t *testing.T) {
	repo := newTestRepo(t)
	roster := game.DefaultCharacters()
	m := finishedMatch(roster[0], roster[1], game.FinishPinfall)
	require.NoError(t, repo.CreateMatch(m))

	require.NoError(t, repo.DeleteMatch(m.PublicID))
	_, err := repo.GetMatchByPublicID(m.PublicID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.ErrorIs(t, repo.DeleteMatch(m.PublicID), gorm.ErrRecordNotFound)
}

func TestUpdateMatch_DeletedStaysDeleted(t *testing.T) {
	repo := newTestRepo(t)
	roster := game.DefaultCharacters()
	m := finishedMatch(roster[0], roster[1], game.FinishPinfall)
	require.NoError(t, repo.CreateMatch(m))

	loaded, err := repo.GetMatchByPublicID(m.PublicID)
	require.NoError(t, err)
	require.NoError(t, repo.DeleteMatch(m.PublicID))

	loaded.State.TurnNumber++
	require.ErrorIs(t, repo.UpdateMatch(loaded), gorm.ErrRecordNotFound)
	_, err = repo.GetMatchByPublicID(m.PublicID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindIdleMatches(t *testing.T) {
	repo := newTestRepo(t)
	roster := game.DefaultCharacters()
	now := time.Now()

	old := finishedMatch(roster[0], roster[1], game.FinishPinfall)
	old.LastActivityAt = now.Add(-time.Hour)
	fresh := finishedMatch(roster[2], roster[3], game.FinishPinfall)
	fresh.LastActivityAt = now
	require.NoError(t, repo.CreateMatch(old))
	require.NoError(t, repo.CreateMatch(fresh))

	idle, err := repo.FindIdleMatches(now.Add(-30 * time.Minute))
	require.NoError(t, err)
	require.Len(t, idle, 1)
	require.Equal(t, old.PublicID, idle[0].PublicID)
}

func TestUpdateRecordsOnMatchEnd_Accumulates(t *testing.T) {
	repo := newTestRepo(t)
	roster := game.DefaultCharacters()
	a, b := roster[0], roster[1]

	require.NoError(t, repo.UpdateRecordsOnMatchEnd(finishedMatch(a, b, game.FinishPinfall)))
	require.NoError(t, repo.UpdateRecordsOnMatchEnd(finishedMatch(a, b, game.FinishSubmission)))
	require.NoError(t, repo.UpdateRecordsOnMatchEnd(finishedMatch(b, a, game.FinishPinfall)))

	top, err := repo.GetTopRecords(10)
	require.NoError(t, err)
	require.Len(t, top, 2)

	first, second := top[0], top[1]
	require.Equal(t, a.Name, first.Name)
	require.Equal(t, 3, first.Matches)
	require.Equal(t, 2, first.Wins)
	require.Equal(t, 1, first.Losses)
	require.Equal(t, 1, first.PinfallWins)
	require.Equal(t, 1, first.SubmissionWins)

	require.Equal(t, b.Name, second.Name)
	require.Equal(t, 3, second.Matches)
	require.Equal(t, 1, second.Wins)
	require.Equal(t, 2, second.Losses)
}

func TestUpdateRecordsOnMatchEnd_IgnoresUnfinished(t *testing.T) {
	repo := newTestRepo(t)
	roster := game.DefaultCharacters()
	m := finishedMatch(roster[0], roster[1], game.FinishPinfall)
	m.State.Winner = ""
	require.NoError(t, repo.UpdateRecordsOnMatchEnd(m))

	top, err := repo.GetTopRecords(0)
	require.NoError(t, err)
	require.Empty(t, top)
}

func TestPing(t *testing.T) {
	require.NoError(t, newTestRepo(t).Ping())
}
