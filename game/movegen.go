package game

// rankRule is the movement of one rank. Captures reports, for a single
// direction, the opposing piece that can be jumped and every cell the piece
// may land on behind it.
type rankRule struct {
	steps    func(b *Board, from Coord, p Piece) []Coord
	captures func(b *Board, from Coord, p Piece, d Direction, taken []Coord) (Coord, []Coord, bool)
}

var rankRules = [...]rankRule{
	Man:  {steps: manSteps, captures: manCaptures},
	King: {steps: kingSteps, captures: kingCaptures},
}

func manSteps(b *Board, from Coord, p Piece) []Coord {
	var out []Coord
	for _, d := range Diagonals {
		if d.DY != p.Team.Forward() {
			continue
		}
		to := from.Step(d, 1)
		if cell, ok := b.Cell(to); ok && cell.Playable && cell.Empty() {
			out = append(out, to)
		}
	}
	return out
}

func manCaptures(b *Board, from Coord, p Piece, d Direction, taken []Coord) (Coord, []Coord, bool) {
	over, ok := b.Cell(from.Step(d, 1))
	if !ok || !over.Holds(p.Team.Opponent()) || contains(taken, over.Coord) {
		return Coord{}, nil, false
	}
	land, ok := b.Cell(from.Step(d, 2))
	if !ok || !land.Empty() {
		return Coord{}, nil, false
	}
	return over.Coord, []Coord{land.Coord}, true
}

func kingSteps(b *Board, from Coord, _ Piece) []Coord {
	var out []Coord
	for _, d := range Diagonals {
		for i := 1; ; i++ {
			cell, ok := b.Cell(from.Step(d, i))
			if !ok || !cell.Empty() {
				break
			}
			out = append(out, cell.Coord)
		}
	}
	return out
}

func kingCaptures(b *Board, from Coord, p Piece, d Direction, taken []Coord) (Coord, []Coord, bool) {
	var (
		over  Coord
		found bool
		lands []Coord
	)
	for i := 1; ; i++ {
		cell, ok := b.Cell(from.Step(d, i))
		if !ok {
			break
		}
		if cell.Empty() {
			if found {
				lands = append(lands, cell.Coord)
			}
			continue
		}
		// a piece already jumped, a friendly piece or a second opponent all
		// end the scan
		if found || !cell.Holds(p.Team.Opponent()) || contains(taken, cell.Coord) {
			break
		}
		over, found = cell.Coord, true
	}
	if len(lands) == 0 {
		return Coord{}, nil, false
	}
	return over, lands, true
}

func contains(cs []Coord, c Coord) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}

// chainSearch enumerates capture chains of one piece by backtracking on the
// board itself. Every speculative jump is undone before the next sibling.
type chainSearch struct {
	board  *Board
	rule   rankRule
	piece  Piece
	leaves []Chain
	best   int
}

func (s *chainSearch) explore(at Coord, node Chain, explored dirSet) {
	type option struct {
		dir   Direction
		lands []Coord
	}
	var options []option
	for _, d := range Diagonals {
		if explored.has(d) {
			continue
		}
		if _, lands, ok := s.rule.captures(s.board, at, s.piece, d, node.Captured); ok {
			options = append(options, option{dir: d, lands: lands})
		}
	}
	if len(options) == 0 {
		s.record(node)
		return
	}
	for _, opt := range options {
		for _, land := range opt.lands {
			taken, ok := s.board.SimulateCapture(at, land)
			if ok {
				// the only direction closed at the new node is the one we came from
				s.explore(land, node.extend(land, taken), dirSet(0).with(opt.dir.Reverse()))
			}
			s.board.SimulateMove(land, at)
		}
	}
}

func (s *chainSearch) record(node Chain) {
	switch n := len(node.Captured); {
	case n > s.best:
		s.best = n
		s.leaves = []Chain{node}
	case n == s.best && n > 0:
		s.leaves = append(s.leaves, node)
	}
}

// CaptureChains returns the longest capture chains of the piece on c, or nil
// when it cannot capture. The board is left exactly as it was found.
func (b *Board) CaptureChains(c Coord) []Chain {
	cell := b.PlayableCell(c)
	if cell.Empty() {
		return nil
	}
	s := &chainSearch{
		board: b,
		rule:  rankRules[cell.Piece.Rank],
		piece: *cell.Piece,
	}
	s.explore(c, Chain{From: c}, 0)
	return s.leaves
}

// SimpleMoves returns one single-step chain per non-capturing destination.
func (b *Board) SimpleMoves(c Coord) []Chain {
	cell := b.PlayableCell(c)
	if cell.Empty() {
		return nil
	}
	steps := rankRules[cell.Piece.Rank].steps(b, c, *cell.Piece)
	chains := make([]Chain, 0, len(steps))
	for _, to := range steps {
		chains = append(chains, Chain{From: c, Path: []Coord{to}})
	}
	return chains
}

// PieceChains returns the maximal capture chains of the piece on c, falling
// back to its simple moves when it has no capture.
func (b *Board) PieceChains(c Coord) []Chain {
	if chains := b.CaptureChains(c); len(chains) > 0 {
		return chains
	}
	return b.SimpleMoves(c)
}

// ForcedMoves computes the forced-move set of team: the pieces achieving the
// board-wide maximum capture count, each restricted to its maximal chains,
// or every piece with a simple move when nobody can capture. The chains are
// stored on the cells as candidates. An empty result means team has lost.
func (b *Board) ForcedMoves(team Team) []Coord {
	b.ClearForcedMoves()

	var owned []Coord
	for cell := range b.Cells(func(c *Cell) bool { return c.Holds(team) }) {
		owned = append(owned, cell.Coord)
	}

	captures := make(map[Coord][]Chain, len(owned))
	best := 0
	for _, c := range owned {
		chains := b.CaptureChains(c)
		if len(chains) == 0 {
			continue
		}
		captures[c] = chains
		best = max(best, len(chains[0].Captured))
	}

	for _, c := range owned {
		var chains []Chain
		if best > 0 {
			if cs := captures[c]; len(cs) > 0 && len(cs[0].Captured) == best {
				chains = cs
			}
		} else {
			chains = b.SimpleMoves(c)
		}
		if len(chains) == 0 {
			continue
		}
		b.PlayableCell(c).Candidates = chains
		b.forced = append(b.forced, c)
	}
	return b.Forced()
}

// ClearForcedMoves empties the forced-move set and every cell's candidates.
func (b *Board) ClearForcedMoves() {
	for _, c := range b.forced {
		b.PlayableCell(c).Candidates = nil
	}
	b.forced = b.forced[:0]
}

// Candidates returns the chains stored for the forced piece on c.
func (b *Board) Candidates(c Coord) []Chain {
	cell, ok := b.Cell(c)
	if !ok {
		return nil
	}
	return cell.Candidates
}

// LegalChains computes the forced-move set of team and flattens it.
func (b *Board) LegalChains(team Team) []Chain {
	var out []Chain
	for _, c := range b.ForcedMoves(team) {
		out = append(out, b.PlayableCell(c).Candidates...)
	}
	return out
}
