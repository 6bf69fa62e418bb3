package gamemaster

import (
	"checkers/game"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Update struct {
	Event Event
	State *game.GameState
}

// Controller owns the live game: the current state, the history of committed
// states for undo and a buffered stream of updates for renderers.
type Controller struct {
	state    *game.GameState
	history  []*game.GameState
	updateCh chan Update
}

// NewController starts from state. Updates that do not fit in a buffer of
// the given size are dropped; a size of zero disables them.
func NewController(state *game.GameState, buffer int) *Controller {
	c := &Controller{
		state:   state,
		history: []*game.GameState{state},
	}
	if buffer > 0 {
		c.updateCh = make(chan Update, buffer)
	}
	return c
}

func (c *Controller) State() *game.GameState {
	return c.state
}

func (c *Controller) Updates() <-chan Update {
	return c.updateCh
}

// Click feeds a cell click through Transition.
func (c *Controller) Click(cell game.Coord) Event {
	next, ev := Transition(c.state, cell)
	c.state = next
	if ev.Kind == Committed {
		c.committed(ev)
	} else {
		c.publish(ev)
	}
	return ev
}

// Play commits the chain identified by move, as computer players do.
func (c *Controller) Play(move game.Move) error {
	if c.state.Won != game.NoTeam {
		return game.ErrGameOver
	}
	chain, ok := c.state.Find(move)
	if !ok {
		return fmt.Errorf("%w: %v -> %v", game.ErrIllegalMove, move.From, move.To)
	}
	c.state = c.state.Commit(chain)
	c.committed(Event{Kind: Committed, Cell: move.To, Chain: chain})
	return nil
}

// Undo restores the state before the last committed chain.
func (c *Controller) Undo() error {
	if len(c.history) <= 1 {
		return game.ErrNothingToUndo
	}
	c.history = c.history[:len(c.history)-1]
	c.state = c.history[len(c.history)-1]
	log.Debug().Msgf("undo: %s to move, %d states left", c.state.Turn, len(c.history))
	c.publish(Event{Kind: Undone})
	return nil
}

func (c *Controller) committed(ev Event) {
	c.history = append(c.history, c.state)
	log.Debug().Msgf("%s played %v", c.state.Turn.Opponent(), ev.Chain)
	c.publish(ev)
	if c.state.Won != game.NoTeam {
		log.Info().Msgf("%s wins", c.state.Won)
		c.publish(Event{Kind: GameOver, Winner: c.state.Won})
	}
}

func (c *Controller) publish(ev Event) {
	if c.updateCh == nil {
		return
	}
	select {
	case c.updateCh <- Update{Event: ev, State: c.state}:
	default:
		log.Warn().Msgf("update buffer full, dropping %s event", ev.Kind)
	}
}
