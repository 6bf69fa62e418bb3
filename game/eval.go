package game

// KingValue is the material worth of a king measured in men.
const KingValue = 3.0

// Feature scores a board for team. Every feature but Pieces stays between
// -1 and 1.
type Feature struct {
	Name   string
	Weight float64
	Score  func(b *Board, team Team) float64
}

type Features []Feature

// Score is the weighted sum of every feature.
func (fs Features) Score(b *Board, team Team) float64 {
	total := 0.0
	for _, f := range fs {
		total += f.Weight * f.Score(b, team)
	}
	return total
}

var (
	Pieces      = Feature{Name: "pieces", Weight: 1, Score: pieceScore}
	Material    = Feature{Name: "material", Weight: 1, Score: materialScore}
	Kings       = Feature{Name: "kings", Weight: 0.5, Score: kingScore}
	Advancement = Feature{Name: "advancement", Weight: 0.1, Score: advancementScore}
)

// DefaultFeatures is the piece count difference only.
var DefaultFeatures = Features{Pieces}

// pieceScore is own pieces minus opposing pieces, kings counting as one.
func pieceScore(b *Board, team Team) float64 {
	return float64(b.Count(team) - b.Count(team.Opponent()))
}

func material(b *Board, team Team) float64 {
	return float64(b.CountRank(team, Man)) + KingValue*float64(b.CountRank(team, King))
}

func materialScore(b *Board, team Team) float64 {
	return normalize(material(b, team), material(b, team.Opponent()))
}

func kingScore(b *Board, team Team) float64 {
	return normalize(float64(b.CountRank(team, King)), float64(b.CountRank(team.Opponent(), King)))
}

// advancementScore rewards men for the rows they have travelled.
func advancementScore(b *Board, team Team) float64 {
	progress := func(t Team) float64 {
		sum := 0.0
		for cell := range b.Cells(func(c *Cell) bool { return c.Holds(t) && c.Piece.Rank == Man }) {
			home := b.size - 1 - t.PromotionRow(b.size)
			sum += float64(abs(cell.Coord.Y - home))
		}
		return sum
	}
	return normalize(progress(team), progress(team.Opponent()))
}

// EvaluateMaterial scores material from the perspective of the side to move.
func EvaluateMaterial(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	return materialScore(gs.Board, gs.Turn)
}

// EvaluateMaterialKings adds king count to material, averaged.
func EvaluateMaterialKings(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	return (materialScore(gs.Board, gs.Turn) + kingScore(gs.Board, gs.Turn)) / 2
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
