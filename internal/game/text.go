package game

import "fmt"

// Match log wording.
const (
	OpeningLine = "ゴング！試合開始！"
	NoMoveYet   = "---"
	GenericMove = "エルボー"
)

// MaxLogEntries caps MatchState.Log.
const MaxLogEntries = 12

// TurnLogLine describes one exchange.
func TurnLogLine(turn int, phase, attacker, move, defender string, damage int) string {
	return fmt.Sprintf("Turn %d [%s] %sの%s！ %sに%dダメージ。", turn, phase, attacker, move, defender, damage)
}

// FinishLogSuffix is appended to the log line of the decisive turn.
func FinishLogSuffix(winner string, f FinishType) string {
	return fmt.Sprintf(" %sが%sで決着！", winner, f.Label())
}

// MoveDisplay is the "current move" banner text.
func MoveDisplay(attacker, move string) string {
	return attacker + "：" + move
}
