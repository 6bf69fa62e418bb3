// meta/meta.go
package meta

// BOARD_SIZE is the side length of the default board.
const BOARD_SIZE = 10

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 8

// EPISODES defines the number of episodes for MCTS.
const EPISODES = 150

// WITH_CUTOFF defines the cutoff value for MCTS.
const WITH_CUTOFF = 100

// DEPTH is the minimax search depth in plies.
const DEPTH = 4

// MAX_TURNS ends a game without a winner.
const MAX_TURNS = 300

// UPDATE_BUFFER is the number of controller events kept for renderers.
const UPDATE_BUFFER = 16
