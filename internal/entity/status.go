package entity

import "strconv"

type Status uint8

const (
	StatusInProgress Status = iota
	StatusWon
	StatusTie
)

const (
	WinnerTie          = "tie"
	WinnerInconclusive = "inconclusive"
)

// WinCombos are checked in this order: rows, columns, diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// WinStatus is the classification of a board. Winner and Line are only set when Status is StatusWon.
type WinStatus struct {
	Status Status
	Winner Mark
	Line   [3]int
}

// Evaluate - classifies the board as won, tied or still in progress.
func Evaluate(board Board) WinStatus {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != Empty && a == b && b == c {
			return WinStatus{Status: StatusWon, Winner: a, Line: combo}
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range board {
		if cell == Empty {
			return WinStatus{Status: StatusInProgress}
		}
	}

	return WinStatus{Status: StatusTie}
}

func IsTerminal(board Board) bool {
	return Evaluate(board).IsTerminal()
}

func (that WinStatus) IsTerminal() bool {
	return that.Status != StatusInProgress
}

// WinnerString - renders the status the way clients expect it: "X", "O", "tie" or "inconclusive".
func (that WinStatus) WinnerString() string {
	switch that.Status {
	case StatusWon:
		return that.Winner.String()
	case StatusTie:
		return WinnerTie
	default:
		return WinnerInconclusive
	}
}

// Positions - returns the winning line, nil unless the game is won.
func (that WinStatus) Positions() []int {
	if that.Status != StatusWon {
		return nil
	}

	return []int{that.Line[0], that.Line[1], that.Line[2]}
}

// PositionStrings - the winning line as decimal strings, nil unless the game is won.
func (that WinStatus) PositionStrings() []string {
	positions := that.Positions()
	if positions == nil {
		return nil
	}

	values := make([]string, 0, len(positions))
	for _, position := range positions {
		values = append(values, strconv.Itoa(position))
	}

	return values
}
