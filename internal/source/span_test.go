package source

import "testing"

func TestPosBefore(t *testing.T) {
	tests := []struct {
		a, b Pos
		want bool
	}{
		{Pos{1, 0}, Pos{1, 1}, true},
		{Pos{1, 5}, Pos{2, 0}, true},
		{Pos{2, 0}, Pos{1, 9}, false},
		{Pos{3, 4}, Pos{3, 4}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Before(tt.b); got != tt.want {
			t.Errorf("%v.Before(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: Pos{2, 4}, End: Pos{2, 8}}
	b := Span{File: 1, Start: Pos{1, 0}, End: Pos{2, 6}}

	got := a.Cover(b)
	want := Span{File: 1, Start: Pos{1, 0}, End: Pos{2, 8}}
	if got != want {
		t.Fatalf("Cover = %v, want %v", got, want)
	}

	other := Span{File: 2, Start: Pos{1, 0}, End: Pos{9, 0}}
	if a.Cover(other) != a {
		t.Fatal("spans from different files must not merge")
	}
}

func TestPosAdvance(t *testing.T) {
	if got := (Pos{Line: 3, Col: 7}).Advance(1); got != (Pos{Line: 3, Col: 8}) {
		t.Fatalf("Advance = %v", got)
	}
}
