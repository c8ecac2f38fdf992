package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// AvailableMoves - returns the empty cells in ascending row-major order.
func AvailableMoves(board entity.Board) []int {
	moves := make([]int, 0, len(board))
	for i, cell := range board {
		if cell == entity.Empty {
			moves = append(moves, i)
		}
	}

	return moves
}

// ApplyMove - returns a copy of the board with mark placed on cell. The input board is never modified.
func ApplyMove(board entity.Board, cell int, mark entity.Mark) (entity.Board, error) {
	if err := validateMove(board, cell, mark); err != nil {
		return board, fmt.Errorf("%w: cell %d", err, cell)
	}

	board[cell] = mark

	return board, nil
}

// validateMove - checks if the move is valid.
func validateMove(board entity.Board, cell int, mark entity.Mark) error {
	if cell < 0 || cell >= len(board) {
		return fmt.Errorf("%w: index out of range", apperror.ErrIllegalMove)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: empty mark", apperror.ErrIllegalMove)
	}

	if board[cell] != entity.Empty {
		return fmt.Errorf("%w: cell is already occupied", apperror.ErrIllegalMove)
	}

	return nil
}

// mustApplyMove is used inside the search, where moves always come from AvailableMoves.
func mustApplyMove(board entity.Board, cell int, mark entity.Mark) entity.Board {
	next, err := ApplyMove(board, cell, mark)
	if err != nil {
		panic(fmt.Errorf("search produced an illegal move: %w", err))
	}

	return next
}
