package grid

import "testing"

func TestLookupUnmappedIsNulControl(t *testing.T) {
	g := New()
	c := g.Lookup(5, 5)
	if c.Codepoint != 0 || c.Category != Control {
		t.Fatalf("Lookup(unmapped) = %+v, want {0 Control}", c)
	}
}

func TestPutUpdatesExtents(t *testing.T) {
	g := New()
	g.Put(3, 1, 'a')
	if got := g.RowMax(1); got != 3 {
		t.Errorf("RowMax(1) = %d, want 3", got)
	}
	if got := g.ColMax(3); got != 1 {
		t.Errorf("ColMax(3) = %d, want 1", got)
	}

	g.Put(7, 1, 'b')
	if got := g.RowMax(1); got != 7 {
		t.Errorf("RowMax(1) after wider put = %d, want 7", got)
	}

	g.Put(3, 0, 'c') // same column, a new row with a smaller y: must not shrink col_max[3]
	if got := g.ColMax(3); got != 1 {
		t.Errorf("ColMax(3) should stay the max seen, got %d, want 1", got)
	}
}

func TestPutRecategorizesFromCodepoint(t *testing.T) {
	g := New()
	g.Put(0, 0, '+')
	if got := g.Lookup(0, 0).Category; got != Dyadic {
		t.Errorf("category of '+' = %v, want Dyadic", got)
	}
}

func TestLoadBasicGrid(t *testing.T) {
	g := Load("12+\nv")
	if got := g.Lookup(0, 0).Codepoint; got != '1' {
		t.Errorf("(0,0) = %q, want '1'", got)
	}
	if got := g.Lookup(2, 0).Codepoint; got != '+' {
		t.Errorf("(2,0) = %q, want '+'", got)
	}
	if got := g.Lookup(0, 1).Codepoint; got != 'v' {
		t.Errorf("(0,1) = %q, want 'v'", got)
	}
	if got := g.RowMax(0); got != 2 {
		t.Errorf("RowMax(0) = %d, want 2", got)
	}
	if got := g.RowMax(1); got != 0 {
		t.Errorf("RowMax(1) = %d, want 0", got)
	}
}

func TestLoadCRLFLineEndings(t *testing.T) {
	g := Load("ab\r\ncd")
	if got := g.Lookup(0, 1).Codepoint; got != 'c' {
		t.Errorf("(0,1) = %q, want 'c'", got)
	}
	if got := g.RowMax(0); got != 1 {
		t.Errorf("RowMax(0) = %d, want 1", got)
	}
}

func TestLoadMultibyteCodepointsOccupyOneColumn(t *testing.T) {
	g := Load("aéb") // 'é' is a 2-byte UTF-8 sequence, one column
	if got := g.Lookup(1, 0).Codepoint; got != 'é' {
		t.Errorf("(1,0) = %q, want 'é'", got)
	}
	if got := g.Lookup(2, 0).Codepoint; got != 'b' {
		t.Errorf("(2,0) = %q, want 'b'", got)
	}
	if got := g.RowMax(0); got != 2 {
		t.Errorf("RowMax(0) = %d, want 2", got)
	}
}
