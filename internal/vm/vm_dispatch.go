package vm

import (
	"errors"
	"unicode/utf8"

	"github.com/gofish-lang/gofish/internal/deque"
	"github.com/gofish-lang/gofish/internal/diagnostic"
	"github.com/gofish-lang/gofish/internal/grid"
	"github.com/gofish-lang/gofish/internal/rational"
)

// dispatch runs the instruction under the IP for one tick. teleported
// reports whether `.` already repositioned the IP (so Run must skip
// the normal step); terminated reports `;`.
func (vm *VM) dispatch(cell grid.Cell) (teleported, terminated bool, err error) {
	switch cell.Category {
	case grid.Noun:
		vm.push(rational.FromInt(grid.NounValue(cell.Codepoint)))
	case grid.Dyadic:
		err = vm.execDyadic(cell.Codepoint)
	case grid.Stack:
		err = vm.execStack(cell.Codepoint)
	case grid.Mirror:
		vm.execMirror(cell.Codepoint)
	case grid.Control:
		teleported, terminated, err = vm.execControl(cell.Codepoint)
	case grid.Quote:
		vm.slurp = true
		vm.slurpQuote = cell.Codepoint
	case grid.Other:
		err = vm.fatalf(diagnostic.InvalidInstruction, "invalid instruction %q", cell.Codepoint)
	}
	return
}

func (vm *VM) execDyadic(cp rune) error {
	b, err := vm.pop()
	if err != nil {
		return err
	}
	a, err := vm.pop()
	if err != nil {
		return err
	}

	var result rational.Rational
	switch cp {
	case '+':
		result = rational.Add(a, b)
	case '-':
		result = rational.Sub(a, b)
	case '*':
		result = rational.Mul(a, b)
	case ',':
		if b.IsZeroDenominator() {
			return vm.fatalf(diagnostic.DivByZero, "division by zero")
		}
		result = rational.Div(a, b)
	case '%':
		if b.IsZeroDenominator() {
			return vm.fatalf(diagnostic.DivByZero, "modulo by zero")
		}
		result = rational.Mod(a, b)
	case '(':
		result = rational.FromBool(rational.Lt(a, b))
	case ')':
		result = rational.FromBool(rational.Gt(a, b))
	case '=':
		result = rational.FromBool(rational.Eq(a, b))
	}
	vm.push(result)
	return nil
}

func (vm *VM) execStack(cp rune) error {
	switch cp {
	case '$':
		b, err := vm.pop()
		if err != nil {
			return err
		}
		a, err := vm.pop()
		if err != nil {
			return err
		}
		vm.push(b)
		vm.push(a)
	case ':':
		v, ok := vm.current().Top()
		if !ok {
			return vm.fatalf(diagnostic.StackUnderflow, "duplicate on empty stack")
		}
		vm.push(v)
	case '@':
		c, err := vm.pop()
		if err != nil {
			return err
		}
		b, err := vm.pop()
		if err != nil {
			return err
		}
		a, err := vm.pop()
		if err != nil {
			return err
		}
		vm.push(c)
		vm.push(a)
		vm.push(b)
	case 'l':
		vm.push(rational.FromInt(int64(vm.current().Len())))
	case 'r':
		vm.current().Reverse()
	case '{':
		v, ok := vm.current().PopBottom()
		if !ok {
			return vm.fatalf(diagnostic.StackUnderflow, "shift left on empty stack")
		}
		vm.current().PushTop(v)
	case '}':
		v, ok := vm.current().PopTop()
		if !ok {
			return vm.fatalf(diagnostic.StackUnderflow, "shift right on empty stack")
		}
		vm.current().PushBottom(v)
	case '~':
		if _, err := vm.pop(); err != nil {
			return err
		}
	case '[':
		return vm.execSplit()
	case ']':
		vm.execMerge()
	}
	return nil
}

// execSplit implements `[`: pop n, carve the top n elements off the
// current stack (order preserved) into a fresh current stack, leaving
// the remainder as the new parent beneath it, with a fresh register
// alongside.
func (vm *VM) execSplit() error {
	nVal, err := vm.pop()
	if err != nil {
		return err
	}
	n := nVal.ToInt()
	if n < 0 {
		return vm.fatalf(diagnostic.StackUnderflowSplit, "negative split count %d", n)
	}

	elems, ok := vm.current().SplitTop(n)
	if !ok {
		return vm.fatalf(diagnostic.StackUnderflowSplit,
			"cannot split %d elements from a stack of %d", n, vm.current().Len())
	}

	vm.stacks = append(vm.stacks, deque.FromSlice(elems))
	vm.registers = append(vm.registers, nil)
	return nil
}

// execMerge implements `]`: discard the current stack into its
// parent, preserving order, and pop back to the parent as current. At
// the outermost stack, with no parent, it resets current to empty.
func (vm *VM) execMerge() {
	if len(vm.stacks) < 2 {
		vm.stacks[len(vm.stacks)-1] = &deque.Deque[rational.Rational]{}
		vm.registers[len(vm.registers)-1] = nil
		return
	}

	top := len(vm.stacks) - 1
	parent := vm.stacks[top-1]
	parent.AppendFrom(vm.stacks[top])

	vm.stacks = vm.stacks[:top]
	vm.registers = vm.registers[:top]
}

func (vm *VM) execMirror(cp rune) {
	switch cp {
	case '#':
		vm.dx, vm.dy = -vm.dx, -vm.dy
	case '/':
		vm.dx, vm.dy = -vm.dy, -vm.dx
	case '\\':
		vm.dx, vm.dy = vm.dy, vm.dx
	case '|':
		vm.dx = -vm.dx
	case '_':
		vm.dy = -vm.dy
	case '<':
		vm.dx, vm.dy = -1, 0
	case '>':
		vm.dx, vm.dy = 1, 0
	case '^':
		vm.dx, vm.dy = 0, -1
	case 'v':
		vm.dx, vm.dy = 0, 1
	case 'x':
		if !vm.prngDisabled {
			headings := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
			h := headings[vm.rnd.Intn(len(headings))]
			vm.dx, vm.dy = h[0], h[1]
		}
	}
}

func (vm *VM) execControl(cp rune) (teleported, terminated bool, err error) {
	switch cp {
	case 0, ' ':
		// no-op
	case '!':
		vm.skip = true
	case '?':
		v, e := vm.pop()
		if e != nil {
			return false, false, e
		}
		if !v.ToBool() {
			vm.skip = true
		}
	case '.':
		y, e := vm.pop()
		if e != nil {
			return false, false, e
		}
		x, e := vm.pop()
		if e != nil {
			return false, false, e
		}
		vm.pcx, vm.pcy = x.ToInt(), y.ToInt()
		teleported = true
	case ';':
		terminated = true
	case '&':
		slot := len(vm.registers) - 1
		if vm.registers[slot] == nil {
			v, e := vm.pop()
			if e != nil {
				return false, false, e
			}
			vm.registers[slot] = &v
		} else {
			vm.push(*vm.registers[slot])
			vm.registers[slot] = nil
		}
	case 'g':
		y, e := vm.pop()
		if e != nil {
			return false, false, e
		}
		x, e := vm.pop()
		if e != nil {
			return false, false, e
		}
		cell := vm.g.Lookup(x.ToInt(), y.ToInt())
		vm.push(rational.FromInt(int64(cell.Codepoint)))
	case 'p':
		y, e := vm.pop()
		if e != nil {
			return false, false, e
		}
		x, e := vm.pop()
		if e != nil {
			return false, false, e
		}
		v, e := vm.pop()
		if e != nil {
			return false, false, e
		}
		vm.g.Put(x.ToInt(), y.ToInt(), rune(v.ToInt()))
	case 'i':
		unit, e := vm.input.ReadUnit()
		if e != nil {
			if errors.Is(e, errMalformedUTF8) {
				return false, false, vm.fatalf(diagnostic.InvalidUTF8, "malformed UTF-8 on stdin")
			}
			return false, false, vm.fatalf(diagnostic.IOError, "reading stdin: %v", e)
		}
		vm.push(rational.FromInt(unit))
	case 'n':
		v, e := vm.pop()
		if e != nil {
			return false, false, e
		}
		if werr := vm.writeAll(v.String()); werr != nil {
			return false, false, vm.fatalf(diagnostic.IOError, "writing stdout: %v", werr)
		}
	case 'o':
		v, e := vm.pop()
		if e != nil {
			return false, false, e
		}
		cp := v.ToInt()
		if cp < 0 || int64(cp) > utf8.MaxRune || !utf8.ValidRune(rune(cp)) {
			return false, false, vm.fatalf(diagnostic.InvalidOutputCodepoint, "invalid output codepoint %d", cp)
		}
		if werr := vm.writeAll(string(rune(cp))); werr != nil {
			return false, false, vm.fatalf(diagnostic.IOError, "writing stdout: %v", werr)
		}
	}
	return
}
