package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

// Session binds a board to the marks used by the automated and the human player.
type Session struct {
	Board Board
	AI    Mark
	Human Mark
}

// ValidatePlayerMarkers - true iff the two symbols are exactly {X, O}.
func ValidatePlayerMarkers(aiSymbol, humanSymbol string) bool {
	_, _, err := parsePlayerMarkers(aiSymbol, humanSymbol)
	return err == nil
}

func NewSession(board Board, aiSymbol, humanSymbol string) (*Session, error) {
	ai, human, err := parsePlayerMarkers(aiSymbol, humanSymbol)
	if err != nil {
		return nil, err
	}

	return &Session{
		Board: board,
		AI:    ai,
		Human: human,
	}, nil
}

func parsePlayerMarkers(aiSymbol, humanSymbol string) (Mark, Mark, error) {
	ai, err := ParseMark(aiSymbol)
	if err != nil || !ai.IsPlayer() {
		return Empty, Empty, fmt.Errorf("%w: ai symbol %q", apperror.ErrMarkerAssignment, aiSymbol)
	}

	human, err := ParseMark(humanSymbol)
	if err != nil || !human.IsPlayer() {
		return Empty, Empty, fmt.Errorf("%w: human symbol %q", apperror.ErrMarkerAssignment, humanSymbol)
	}

	if ai == human {
		return Empty, Empty, fmt.Errorf("%w: both players use %s", apperror.ErrMarkerAssignment, ai)
	}

	return ai, human, nil
}

// Status - evaluates the session's board.
func (that *Session) Status() WinStatus {
	return Evaluate(that.Board)
}
