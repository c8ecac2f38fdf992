package tictactoe

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

type Strategy string

const (
	StrategyMinimax   Strategy = "minimax"
	StrategyAlphaBeta Strategy = "alphabeta"
)

const (
	minScore = math.MinInt
	maxScore = math.MaxInt

	noMove = -1
)

func ParseStrategy(name string) (Strategy, error) {
	switch strategy := Strategy(name); strategy {
	case StrategyMinimax, StrategyAlphaBeta:
		return strategy, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownStrategy, name)
	}
}

// Result is the outcome of a search. Value is the predicted terminal utility under optimal play:
// +1 when X wins, -1 when O wins, 0 on a tie. Nodes counts the positions the search visited.
type Result struct {
	Move  int `json:"move"`
	Value int `json:"value"`
	Nodes int `json:"nodes"`
}

// Searcher picks the best move for ai on a board that is still in progress.
//
// X maximizes and O minimizes. When several moves are equally good, X takes the first one in
// ascending index order and O takes the last one.
type Searcher interface {
	BestMove(board entity.Board, ai entity.Mark) (Result, error)
}

func NewSearcher(strategy Strategy) (Searcher, error) {
	switch strategy {
	case StrategyMinimax:
		return NewMinimax(), nil
	case StrategyAlphaBeta:
		return NewAlphaBeta(), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownStrategy, strategy)
	}
}

// utility - score of a finished game from X's point of view.
func utility(status entity.WinStatus) int {
	if status.Status != entity.StatusWon {
		return 0
	}

	if status.Winner == entity.MarkX {
		return 1
	}

	return -1
}

func checkSearchable(board entity.Board, ai entity.Mark) error {
	if !ai.IsPlayer() {
		return fmt.Errorf("%w: ai mark %s", apperror.ErrMarkerAssignment, ai)
	}

	if status := entity.Evaluate(board); status.IsTerminal() {
		return fmt.Errorf("%w: winner %s", apperror.ErrNoMoveAvailable, status.WinnerString())
	}

	return nil
}

// prefers - reports whether value should replace best for the root player.
func prefers(ai entity.Mark, value, best int) bool {
	if ai == entity.MarkX {
		return value > best
	}

	return value <= best
}

type minimax struct{}

func NewMinimax() Searcher {
	return &minimax{}
}

func (that *minimax) BestMove(board entity.Board, ai entity.Mark) (Result, error) {
	if err := checkSearchable(board, ai); err != nil {
		return Result{Move: noMove}, err
	}

	result := Result{Move: noMove}
	for _, cell := range AvailableMoves(board) {
		child := mustApplyMove(board, cell, ai)

		var value int
		if ai == entity.MarkX {
			value = that.minValue(child, &result.Nodes)
		} else {
			value = that.maxValue(child, &result.Nodes)
		}

		if result.Move == noMove || prefers(ai, value, result.Value) {
			result.Move = cell
			result.Value = value
		}
	}

	return result, nil
}

// maxValue - value of a board where X moves next.
func (that *minimax) maxValue(board entity.Board, nodes *int) int {
	*nodes++

	if status := entity.Evaluate(board); status.IsTerminal() {
		return utility(status)
	}

	value := minScore
	for _, cell := range AvailableMoves(board) {
		value = max(value, that.minValue(mustApplyMove(board, cell, entity.MarkX), nodes))
	}

	return value
}

// minValue - value of a board where O moves next.
func (that *minimax) minValue(board entity.Board, nodes *int) int {
	*nodes++

	if status := entity.Evaluate(board); status.IsTerminal() {
		return utility(status)
	}

	value := maxScore
	for _, cell := range AvailableMoves(board) {
		value = min(value, that.maxValue(mustApplyMove(board, cell, entity.MarkO), nodes))
	}

	return value
}

type alphaBeta struct{}

func NewAlphaBeta() Searcher {
	return &alphaBeta{}
}

func (that *alphaBeta) BestMove(board entity.Board, ai entity.Mark) (Result, error) {
	if err := checkSearchable(board, ai); err != nil {
		return Result{Move: noMove}, err
	}

	result := Result{Move: noMove}
	for _, cell := range AvailableMoves(board) {
		child := mustApplyMove(board, cell, ai)
		first := result.Move == noMove

		// The window only has to be exact for values that can still win the tie-break:
		// anything above the best so far for X, anything up to and including it for O.
		var value int
		if ai == entity.MarkX {
			alpha := minScore
			if !first {
				alpha = result.Value
			}
			value = that.search(child, alpha, maxScore, false, &result.Nodes)
		} else {
			beta := maxScore
			if !first {
				beta = result.Value + 1
			}
			value = that.search(child, minScore, beta, true, &result.Nodes)
		}

		if first || prefers(ai, value, result.Value) {
			result.Move = cell
			result.Value = value
		}
	}

	return result, nil
}

// search - fail-soft alpha-beta. The returned value is exact when it lies strictly inside (alpha, beta).
func (that *alphaBeta) search(board entity.Board, alpha, beta int, maximizing bool, nodes *int) int {
	*nodes++

	if status := entity.Evaluate(board); status.IsTerminal() {
		return utility(status)
	}

	if maximizing {
		value := minScore
		for _, cell := range AvailableMoves(board) {
			value = max(value, that.search(mustApplyMove(board, cell, entity.MarkX), alpha, beta, false, nodes))
			alpha = max(alpha, value)
			if alpha >= beta {
				break
			}
		}

		return value
	}

	value := maxScore
	for _, cell := range AvailableMoves(board) {
		value = min(value, that.search(mustApplyMove(board, cell, entity.MarkO), alpha, beta, true, nodes))
		beta = min(beta, value)
		if alpha >= beta {
			break
		}
	}

	return value
}
