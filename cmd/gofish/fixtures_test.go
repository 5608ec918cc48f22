package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/gofish-lang/gofish/internal/grid"
	"github.com/gofish-lang/gofish/internal/vm"
)

// TestFixtures runs whole ><> programs end-to-end: load, dispatch,
// capture stdout, and snapshot the result. The cases are small enough
// to embed as inline source rather than loading from an external
// corpus.
func TestFixtures(t *testing.T) {
	fixtures := []struct {
		name   string
		source string
		stdin  string
	}{
		{"hello_world", `"Hello, World!"r` + strings.Repeat("o", len("Hello, World!")) + `;`, ""},
		{"push_and_print", "1n;", ""},
		{"add", "12+n;", ""},
		{"div_non_integer", "15,n;", ""},
		{"mul", "48*n;", ""},
		{"sub_negative", "01-n;", ""},
		{"eq_false", "10=n;", ""},
		{"eq_true", "11=n;", ""},
		{"hex_digit_mul", "aa*n;", ""},
	}

	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			g := grid.Load(fx.source)
			var out bytes.Buffer
			m := vm.New(g, nil, vm.Config{}, strings.NewReader(fx.stdin), &out)
			if _, err := m.Run(); err != nil {
				t.Fatalf("%s: unexpected fatal error: %v", fx.name, err)
			}
			snaps.MatchSnapshot(t, out.String())
		})
	}
}

// TestFixtureDivByZeroFailsFatally covers the one scenario where the
// expected result is a fatal error rather than output.
func TestFixtureDivByZeroFailsFatally(t *testing.T) {
	g := grid.Load("10,n;")
	var out bytes.Buffer
	m := vm.New(g, nil, vm.Config{}, strings.NewReader(""), &out)
	if _, err := m.Run(); err == nil {
		t.Fatal("expected a fatal division-by-zero error")
	}
}
