package game

import (
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// Player is one side of the game. Selected and Chains describe the piece the
// player picked this turn and the candidate chains it may follow.
type Player struct {
	ID       uuid.UUID
	Name     string
	Team     Team
	Score    int
	Selected *Coord
	Chains   []Chain
	Captured []Piece
}

func NewPlayer(name string, team Team) Player {
	return Player{
		ID:   uuid.New(),
		Name: name,
		Team: team,
	}
}

// Select records the piece on c and the chains it may follow.
func (p *Player) Select(c Coord, chains []Chain) {
	p.Selected = &c
	p.Chains = chains
}

func (p *Player) Deselect() {
	p.Selected = nil
	p.Chains = nil
}

// copy detaches the mutable slices so the copy can be updated independently.
func (p Player) copy() Player {
	p.Captured = slices.Clip(p.Captured)
	if p.Selected != nil {
		c := *p.Selected
		p.Selected = &c
	}
	return p
}
