package searcher

import (
	"checkers/game"
	"checkers/utils"
	"math"
	"sync"
)

// decision is a tree node for a position. Its statistics are kept from the
// perspective of mover, the side whose chain led to it, so a parent always
// maximizes over its children.
type decision struct {
	sync.RWMutex
	parent   *decision
	player   game.Team // side to move
	mover    game.Team
	hash     game.StateHash
	moves    []game.Chain
	keys     []game.Move
	children []*decision // children[i] follows moves[i]
	rewards  float64
	visits   float64
}

func newDecision(parent *decision, state game.State) *decision {
	moves := state.LegalMoves()
	keys := make([]game.Move, len(moves))
	for i, chain := range moves {
		keys[i] = chain.Move()
	}
	return &decision{
		parent:   parent,
		player:   state.Player(),
		mover:    state.Player().Opponent(),
		hash:     state.Hash(),
		moves:    moves,
		keys:     keys,
		children: make([]*decision, 0, len(moves)),
	}
}

// SelectOrExpand descends one level. Expanding a new child ends the descent
// (selected is false), as does reaching a terminal node, which returns itself.
func (d *decision) SelectOrExpand(state game.State) (Node, game.State, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.moves) == 0 { // Terminal node
		return d, state, false
	}

	if len(d.moves) > len(d.children) { // Expandable node
		move := d.moves[len(d.children)]
		childState := state.Play(move)
		child := newDecision(d, childState)
		d.children = append(d.children, child)
		child.ApplyLoss()
		return child, childState, false
	}

	// Fully expanded node
	ith := d.pickChild()
	child := d.children[ith]
	child.ApplyLoss()
	return child, state.Play(d.moves[ith]), true
}

func (d *decision) pickChild() int {
	// concurrent workers may fill a node before any of them backs up
	policy := newUCT(CSquared, math.Max(d.visits, 1))

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		child.RLock()
		score := policy.evaluate(child.rewards, child.visits)
		child.RUnlock()
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (d *decision) ApplyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) Backup(player game.Team, score float64) Node {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.rewards -= Loss
		d.visits--
	}

	d.rewards += computeReward(player, score, d.mover)
	d.visits++

	if d.parent == nil {
		return nil
	}
	return d.parent
}

func (d *decision) Visits() float64 {
	d.RLock()
	defer d.RUnlock()

	return d.visits
}

// Policy maps each explored move to its visit count.
func (d *decision) Policy() map[game.Move]float64 {
	d.RLock()
	defer d.RUnlock()

	policy := make(map[game.Move]float64, len(d.children))
	for i, child := range d.children {
		policy[d.keys[i]] += child.Visits()
	}
	return policy
}

// child returns the explored child reached by move, or nil.
func (d *decision) child(move game.Move) *decision {
	i := utils.FindIndex(d.keys, move)
	if i < 0 || i >= len(d.children) {
		return nil
	}
	return d.children[i]
}

// find looks for the node of the position hashed as hash within depth plies.
func (d *decision) find(hash game.StateHash, depth int) *decision {
	if d.hash == hash {
		return d
	}
	if depth == 0 {
		return nil
	}
	for _, child := range d.children {
		if found := child.find(hash, depth-1); found != nil {
			return found
		}
	}
	return nil
}
