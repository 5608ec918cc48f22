package vm

import (
	"github.com/gofish-lang/gofish/internal/deque"
	"github.com/gofish-lang/gofish/internal/diagnostic"
	"github.com/gofish-lang/gofish/internal/rational"
)

// current returns the top of the stack-of-stacks, the stack that
// plain instructions read and write.
func (vm *VM) current() *deque.Deque[rational.Rational] {
	return vm.stacks[len(vm.stacks)-1]
}

func (vm *VM) push(v rational.Rational) {
	vm.current().PushTop(v)
}

func (vm *VM) pop() (rational.Rational, error) {
	v, ok := vm.current().PopTop()
	if !ok {
		return rational.Zero, vm.fatalf(diagnostic.StackUnderflow, "pop from empty stack")
	}
	return v, nil
}

func (vm *VM) fatalf(kind diagnostic.Kind, format string, args ...any) error {
	return diagnostic.New(kind, diagnostic.Position{X: vm.pcx, Y: vm.pcy}, format, args...)
}
