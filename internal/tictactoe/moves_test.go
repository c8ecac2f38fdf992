package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

func TestAvailableMoves(t *testing.T) {
	t.Run("Empty board offers every cell in order", func(t *testing.T) {
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, AvailableMoves(entity.Board{}))
	})

	t.Run("Occupied cells are skipped", func(t *testing.T) {
		// Given: a board with three marks
		board := entity.Board{entity.MarkX, entity.Empty, entity.MarkO, entity.Empty, entity.MarkX}

		// When: listing the moves
		moves := AvailableMoves(board)

		// Then: only empty cells should be returned in ascending order
		assert.Equal(t, []int{1, 3, 5, 6, 7, 8}, moves)
	})

	t.Run("Full board offers nothing", func(t *testing.T) {
		board := entity.Board{
			entity.MarkX, entity.MarkO, entity.MarkX,
			entity.MarkX, entity.MarkO, entity.MarkX,
			entity.MarkO, entity.MarkX, entity.MarkO,
		}

		assert.Empty(t, AvailableMoves(board))
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("Returns a new board and keeps the input", func(t *testing.T) {
		// Given: an empty board
		board := entity.Board{}

		// When: X plays the center
		next, err := ApplyMove(board, 4, entity.MarkX)

		// Then: only the copy should change
		require.NoError(t, err)
		assert.Equal(t, entity.MarkX, next[4])
		assert.Equal(t, entity.Board{}, board)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where X holds cell 0
		board := entity.Board{entity.MarkX}

		// When: O tries to play the same cell
		next, err := ApplyMove(board, 0, entity.MarkO)

		// Then: ErrIllegalMove should be returned and the board left as it was
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Equal(t, board, next)
	})

	t.Run("Error on invalid cell index", func(t *testing.T) {
		for _, cell := range []int{-1, 9, 20} {
			_, err := ApplyMove(entity.Board{}, cell, entity.MarkX)

			assert.ErrorIs(t, err, apperror.ErrIllegalMove)
		}
	})

	t.Run("Error on empty mark", func(t *testing.T) {
		_, err := ApplyMove(entity.Board{}, 0, entity.Empty)

		assert.ErrorIs(t, err, apperror.ErrIllegalMove)
	})
}

func TestMustApplyMove_PanicsOnIllegalMove(t *testing.T) {
	assert.Panics(t, func() {
		mustApplyMove(entity.Board{entity.MarkX}, 0, entity.MarkO)
	})
}
