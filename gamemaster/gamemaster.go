package gamemaster

import "checkers/game"

type EventKind int

const (
	Selected EventKind = iota
	Deselected
	Committed
	Undone
	GameOver
)

func (k EventKind) String() string {
	switch k {
	case Selected:
		return "selected"
	case Deselected:
		return "deselected"
	case Committed:
		return "committed"
	case Undone:
		return "undone"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

// Event describes what a click or a move did to the game.
type Event struct {
	Kind   EventKind
	Cell   game.Coord   // clicked or selected cell
	Chain  game.Chain   // committed chain
	Chains []game.Chain // candidate chains of a new selection
	Winner game.Team
}

// Transition is the click handler of the turn controller. It never mutates
// gs: the returned state is either gs itself or a fresh copy.
//
//   - a forced piece of the side to move that is not already selected gets
//     selected and the destinations of its chains become landable
//   - a landable cell commits the first candidate chain ending there
//   - anything else clears the selection
func Transition(gs *game.GameState, click game.Coord) (*game.GameState, Event) {
	if gs.Won != game.NoTeam {
		return gs, Event{Kind: GameOver, Cell: click, Winner: gs.Won}
	}

	current := gs.Current()
	cell, ok := gs.Board.Cell(click)

	if ok && cell.Holds(gs.Turn) && len(cell.Candidates) > 0 &&
		(current.Selected == nil || *current.Selected != click) {
		next := gs.Copy()
		next.Board.ClearSelection()
		chains := cell.Candidates
		next.Board.PlayableCell(click).Selected = true
		for _, chain := range chains {
			next.Board.PlayableCell(chain.Dest()).Landable = true
		}
		next.Current().Select(click, chains)
		return next, Event{Kind: Selected, Cell: click, Chains: chains}
	}

	if ok && cell.Landable && current.Selected != nil {
		for _, chain := range current.Chains {
			if chain.Dest() == click {
				return gs.Commit(chain), Event{Kind: Committed, Cell: click, Chain: chain}
			}
		}
	}

	next := gs.Copy()
	next.Board.ClearSelection()
	next.Current().Deselect()
	return next, Event{Kind: Deselected, Cell: click}
}
