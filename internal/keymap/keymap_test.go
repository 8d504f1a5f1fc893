package keymap

import (
	"math/rand"
	"strings"
	"testing"
)

func TestNearbyStaysInNeighborSet(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	allowed := "uikmnh"
	for i := 0; i < 200; i++ {
		got := Nearby(rnd, 'j')
		if !strings.ContainsRune(allowed, got) {
			t.Fatalf("nearby of j produced %q, want one of %q", got, allowed)
		}
	}
}

func TestNearbyFoldsCase(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	got := Nearby(rnd, 'Q')
	if got != 'w' && got != 'a' {
		t.Fatalf("nearby of Q produced %q, want w or a", got)
	}
}

func TestNearbyUnmappedPassesThrough(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, r := range "3 @é" {
		if got := Nearby(rnd, r); got != r {
			t.Fatalf("expected %q unchanged, got %q", r, got)
		}
	}
}

func TestNeighborsPunctuation(t *testing.T) {
	if Neighbors('\'') != `"[];` {
		t.Fatalf("unexpected apostrophe neighbors %q", Neighbors('\''))
	}
	if Neighbors(':') != ";" {
		t.Fatalf("unexpected colon neighbors %q", Neighbors(':'))
	}
}
