// Package vm implements the ><> dispatch loop: the instruction
// pointer's position and heading, the stack-of-stacks with its
// per-stack registers, skip/slurp modes, and the PRNG behind the `x`
// mirror. One tick looks up the cell under the IP, dispatches on its
// category, and steps the IP with toroidal wrap.
package vm

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/gofish-lang/gofish/internal/deque"
	"github.com/gofish-lang/gofish/internal/grid"
	"github.com/gofish-lang/gofish/internal/rational"
)

// Config resolves the CLI flags that affect VM-observable behavior
// into the inputs VM.New needs.
type Config struct {
	UTF8   bool  // -u: `i` returns codepoints instead of raw bytes
	NoPRNG bool  // --no-prng: `x` becomes a no-op
	Seed   *int64 // --seed: deterministic PRNG seed; nil seeds from wall clock
}

// VM owns one run of the dispatch loop: the grid, the IP, the
// stack-of-stacks with parallel registers, and the I/O this run reads
// from and writes to.
type VM struct {
	g *grid.Grid

	pcx, pcy int
	dx, dy   int

	stacks    []*deque.Deque[rational.Rational] // stacks[len-1] is current
	registers []*rational.Rational               // parallel to stacks; nil = empty slot

	skip       bool
	slurp      bool
	slurpQuote rune

	rnd          *rand.Rand
	prngDisabled bool

	input unitReader
	out   io.Writer
}

// New builds a VM ready to execute g, starting from the given initial
// current stack (nil means start with an empty stack, as for the first
// script in a chain).
func New(g *grid.Grid, initial *deque.Deque[rational.Rational], cfg Config, stdin io.Reader, stdout io.Writer) *VM {
	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	if initial == nil {
		initial = &deque.Deque[rational.Rational]{}
	}

	br := bufio.NewReader(stdin)
	var reader unitReader
	if cfg.UTF8 {
		reader = &codepointReader{r: br}
	} else {
		reader = &byteReader{r: br}
	}

	return &VM{
		g:            g,
		dx:           1,
		dy:           0,
		stacks:       []*deque.Deque[rational.Rational]{initial},
		registers:    []*rational.Rational{nil},
		rnd:          rand.New(rand.NewSource(seed)),
		prngDisabled: cfg.NoPRNG,
		input:        reader,
		out:          stdout,
	}
}

// Run executes ticks until `;` terminates the program, returning its
// current value stack, or until a fatal error is raised.
func (vm *VM) Run() (*deque.Deque[rational.Rational], error) {
	for {
		cell := vm.g.Lookup(vm.pcx, vm.pcy)

		teleported := false
		switch {
		case vm.skip:
			vm.skip = false
		case vm.slurp:
			if cell.Codepoint == vm.slurpQuote {
				vm.slurp = false
				vm.slurpQuote = 0
			} else {
				vm.push(rational.FromInt(int64(cell.Codepoint)))
			}
		default:
			var terminated bool
			var err error
			teleported, terminated, err = vm.dispatch(cell)
			if err != nil {
				return nil, err
			}
			if terminated {
				return vm.current(), nil
			}
		}

		if !teleported {
			vm.step()
		}
	}
}

// step advances the IP by its heading, wrapping toroidally over the
// current row's and column's own extents (they may differ). It must
// run against the pre-step (pcx, pcy), since row/column extents are
// looked up for the row/column being left.
func (vm *VM) step() {
	x := vm.pcx + vm.dx
	rowMax := vm.g.RowMax(vm.pcy)
	if x < 0 || x > rowMax {
		if vm.dx < 0 {
			x = rowMax
		} else if vm.dx > 0 {
			x = 0
		}
	}

	y := vm.pcy + vm.dy
	colMax := vm.g.ColMax(vm.pcx)
	if y < 0 || y > colMax {
		if vm.dy < 0 {
			y = colMax
		} else if vm.dy > 0 {
			y = 0
		}
	}

	vm.pcx, vm.pcy = x, y
}
