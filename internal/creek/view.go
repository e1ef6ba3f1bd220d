package creek

// View is the seam through which a presentation layer attaches display data
// to cells. InitializeCellViewData is called exactly once per cell, when the
// cell is created and before any query can reach it. Implementations must
// not mutate game state.
type View interface {
	InitializeCellViewData(c *Cell)
}

// ViewFunc adapts an ordinary function to the View interface.
type ViewFunc func(c *Cell)

// InitializeCellViewData calls f(c).
func (f ViewFunc) InitializeCellViewData(c *Cell) {
	f(c)
}

// NopView attaches nothing. Headless simulations use it.
var NopView View = ViewFunc(func(*Cell) {})

// Rand is the random source consumed by row generation.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
}
