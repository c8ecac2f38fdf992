package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

const (
	BoardSide  = 3
	BoardCells = BoardSide * BoardSide
)

// Mark is the content of a single board cell.
type Mark uint8

const (
	Empty Mark = iota
	MarkX
	MarkO
)

// wire tokens.
const (
	TokenEmpty = "?"
	TokenX     = "X"
	TokenO     = "O"
)

// ParseMark - converts a wire token into a Mark.
func ParseMark(token string) (Mark, error) {
	switch token {
	case TokenEmpty:
		return Empty, nil
	case TokenX:
		return MarkX, nil
	case TokenO:
		return MarkO, nil
	default:
		return Empty, fmt.Errorf("%w: unknown marker %q", apperror.ErrInvalidBoard, token)
	}
}

func (that Mark) String() string {
	switch that {
	case MarkX:
		return TokenX
	case MarkO:
		return TokenO
	default:
		return TokenEmpty
	}
}

// Opponent - returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

// IsPlayer - reports whether the mark belongs to a player.
func (that Mark) IsPlayer() bool {
	return that == MarkX || that == MarkO
}

// Board is a 3x3 grid stored row-major: index = 3*row + col.
type Board [BoardCells]Mark

// IndexToCoord - converts a flat index to (row, col).
func IndexToCoord(index int) (int, int) {
	return index / BoardSide, index % BoardSide
}

// CoordToIndex - converts (row, col) to a flat index.
func CoordToIndex(row, col int) int {
	return BoardSide*row + col
}

// FromFlatList - builds a board from 9 wire tokens.
func FromFlatList(values []string) (Board, error) {
	var board Board

	if len(values) != BoardCells {
		return board, fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrInvalidBoard, BoardCells, len(values))
	}

	for i, token := range values {
		mark, err := ParseMark(token)
		if err != nil {
			return Board{}, fmt.Errorf("cell %d: %w", i, err)
		}

		board[i] = mark
	}

	return board, nil
}

// ParseBoard - builds a board from wire tokens and checks that the position is reachable by mark counts.
func ParseBoard(values []string) (Board, error) {
	board, err := FromFlatList(values)
	if err != nil {
		return Board{}, err
	}

	if !board.IsStructurallyValid() {
		return Board{}, fmt.Errorf("%w: %d X against %d O",
			apperror.ErrInvalidBoard, board.CountMarks(MarkX), board.CountMarks(MarkO))
	}

	return board, nil
}

// ParseBoardString - accepts either 9 comma separated tokens or 9 single-character tokens ("XO?X?????").
func ParseBoardString(raw string) (Board, error) {
	raw = strings.TrimSpace(raw)

	var tokens []string
	if strings.Contains(raw, ",") {
		tokens = strings.Split(raw, ",")
		for i := range tokens {
			tokens[i] = strings.TrimSpace(tokens[i])
		}
	} else {
		tokens = strings.Split(raw, "")
	}

	return ParseBoard(tokens)
}

// ValidateBoard - reports whether the tokens form a valid board.
func ValidateBoard(values []string) bool {
	_, err := ParseBoard(values)
	return err == nil
}

// Strings - flattens the board into wire tokens.
func (that Board) Strings() []string {
	values := make([]string, 0, BoardCells)
	for _, mark := range that {
		values = append(values, mark.String())
	}

	return values
}

func (that Board) At(row, col int) Mark {
	return that[CoordToIndex(row, col)]
}

func (that Board) CountMarks(mark Mark) int {
	count := 0
	for _, cell := range that {
		if cell == mark {
			count++
		}
	}

	return count
}

// IsStructurallyValid - X always moves first, so O is level with X or one behind.
func (that Board) IsStructurallyValid() bool {
	countX, countO := that.CountMarks(MarkX), that.CountMarks(MarkO)
	return countO == countX || countO == countX-1
}

// Turn - returns the mark expected to move next on a structurally valid board.
func (that Board) Turn() Mark {
	if that.CountMarks(MarkX) == that.CountMarks(MarkO) {
		return MarkX
	}

	return MarkO
}

func (that Board) String() string {
	var builder strings.Builder

	for row := 0; row < BoardSide; row++ {
		for col := 0; col < BoardSide; col++ {
			if col > 0 {
				builder.WriteByte(' ')
			}
			builder.WriteString(that.At(row, col).String())
		}
		builder.WriteByte('\n')
	}

	return builder.String()
}
