package game

// Move identifies a chain by its endpoints, the (start, destination) pair a
// strategy hands back to the controller.
type Move struct {
	From Coord
	To   Coord
}

type StateHash uint64

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() Team
	LegalMoves() []Chain
	Play(Chain) State
	Hash() StateHash
	Winner() Team
}

// Evaluates the game state to a score between -1 and 1 indicating how
// favorable the current player's position is to a winning (positive) outcome.
type Evaluate func(State) float64
