package searcher

import (
	"checkers/game"
	"checkers/utils"

	"golang.org/x/exp/rand"
)

// Random picks uniformly among the candidates.
type Random struct {
	candidates
	rng *rand.Rand
}

func NewRandom(src rand.Source) *Random {
	return &Random{rng: rand.New(src)}
}

func (r *Random) ChooseMove(state *game.GameState) game.Move {
	r.ensure(state)
	return utils.Sample(r.rng, r.moves)
}
