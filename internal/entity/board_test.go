package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

func TestFromFlatList(t *testing.T) {
	t.Run("Builds a board in row-major order", func(t *testing.T) {
		// Given: nine valid tokens
		values := []string{"X", "O", "?", "?", "X", "?", "?", "?", "O"}

		// When: building the board
		board, err := FromFlatList(values)

		// Then: every cell should hold the matching mark
		require.NoError(t, err)
		assert.Equal(t, Board{MarkX, MarkO, Empty, Empty, MarkX, Empty, Empty, Empty, MarkO}, board)
		assert.Equal(t, MarkX, board.At(1, 1))
		assert.Equal(t, MarkO, board.At(2, 2))
	})

	t.Run("Round-trips through Strings", func(t *testing.T) {
		// Given: a list of tokens
		values := []string{"X", "O", "O", "X", "?", "?", "X", "?", "?"}

		// When: building the board and flattening it again
		board, err := FromFlatList(values)
		require.NoError(t, err)

		// Then: the same tokens should come back
		assert.Equal(t, values, board.Strings())
	})

	t.Run("Rejects wrong lengths", func(t *testing.T) {
		for _, values := range [][]string{
			nil,
			{"X", "O", "?"},
			{"?", "?", "?", "?", "?", "?", "?", "?", "?", "?"},
		} {
			// When: building a board from a list that is not 9 cells long
			_, err := FromFlatList(values)

			// Then: ErrInvalidBoard should be returned
			assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
		}
	})

	t.Run("Rejects foreign tokens", func(t *testing.T) {
		// Given: a list with an unknown marker
		values := []string{"!", "O", "?", "?", "?", "?", "?", "?", "?"}

		// When: building the board
		_, err := FromFlatList(values)

		// Then: ErrInvalidBoard should be returned
		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
		assert.Contains(t, err.Error(), "cell 0")
	})
}

func TestValidateBoard(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		valid  bool
	}{
		{"empty board", []string{"?", "?", "?", "?", "?", "?", "?", "?", "?"}, true},
		{"X one ahead", []string{"X", "?", "?", "?", "?", "?", "?", "?", "?"}, true},
		{"equal counts", []string{"X", "O", "?", "?", "?", "?", "?", "?", "?"}, true},
		{"full tie board", []string{"X", "O", "X", "X", "O", "X", "O", "X", "O"}, true},
		{"O ahead", []string{"O", "?", "?", "?", "?", "?", "?", "?", "?"}, false},
		{"X two ahead", []string{"X", "X", "?", "?", "?", "?", "?", "?", "?"}, false},
		{"lowercase marker", []string{"x", "?", "?", "?", "?", "?", "?", "?", "?"}, false},
		{"empty string marker", []string{"", "?", "?", "?", "?", "?", "?", "?", "?"}, false},
		{"eight cells", []string{"?", "?", "?", "?", "?", "?", "?", "?"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateBoard(tt.values))
		})
	}
}

func TestParseBoardString(t *testing.T) {
	t.Run("Accepts compact notation", func(t *testing.T) {
		board, err := ParseBoardString("XO?X?????")

		require.NoError(t, err)
		assert.Equal(t, Board{MarkX, MarkO, Empty, MarkX, Empty, Empty, Empty, Empty, Empty}, board)
	})

	t.Run("Accepts comma separated notation", func(t *testing.T) {
		board, err := ParseBoardString(" X, O, ?, ?, ?, ?, ?, ?, ? ")

		require.NoError(t, err)
		assert.Equal(t, Board{MarkX, MarkO}, board)
	})

	t.Run("Rejects an unbalanced board", func(t *testing.T) {
		_, err := ParseBoardString("XXX??????")

		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})
}

func TestCoordinates(t *testing.T) {
	for i := 0; i < BoardCells; i++ {
		row, col := IndexToCoord(i)

		assert.Equal(t, i/3, row)
		assert.Equal(t, i%3, col)
		assert.Equal(t, i, CoordToIndex(row, col))
	}
}

func TestBoard_CountMarksAndTurn(t *testing.T) {
	t.Run("X moves on a balanced board", func(t *testing.T) {
		// Given: a board with two marks of each player
		board := Board{MarkX, MarkO, MarkX, MarkO}

		// Then: counts should match and X should be next
		assert.Equal(t, 2, board.CountMarks(MarkX))
		assert.Equal(t, 2, board.CountMarks(MarkO))
		assert.Equal(t, 5, board.CountMarks(Empty))
		assert.Equal(t, MarkX, board.Turn())
	})

	t.Run("O moves when X is one ahead", func(t *testing.T) {
		board := Board{MarkX}

		assert.Equal(t, MarkO, board.Turn())
	})
}

func TestMark(t *testing.T) {
	assert.Equal(t, MarkO, MarkX.Opponent())
	assert.Equal(t, MarkX, MarkO.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
	assert.False(t, Empty.IsPlayer())
	assert.Equal(t, "?", Empty.String())
}

func TestBoard_String(t *testing.T) {
	board := Board{MarkX, MarkO, Empty, Empty, MarkX}

	assert.Equal(t, "X O ?\n? X ?\n? ? ?\n", board.String())
}
