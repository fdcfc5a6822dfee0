package resolve

import (
	"errors"
	"testing"

	"github.com/nathoo/kerker/types"
)

func items(names ...string) []types.Item {
	out := make([]types.Item, len(names))
	for i, n := range names {
		out[i] = types.Item{Name: n}
	}
	return out
}

func TestItem_FirstMatchWins(t *testing.T) {
	bag := items("Sword", "Shield", "Sword")
	i, err := Item(bag, "Sword", "the bag")
	if err != nil || i != 0 {
		t.Errorf("Item = %d, %v; want 0, nil", i, err)
	}
}

func TestItem_CaseSensitive(t *testing.T) {
	_, err := Item(items("Sword"), "sword", "the room")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if got, want := err.Error(), "No item named 'sword' in the room."; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestTake(t *testing.T) {
	bag := items("A", "B", "C")
	it, rest, err := Take(bag, "B", "the bag")
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	if it.Name != "B" || len(rest) != 2 || rest[0].Name != "A" || rest[1].Name != "C" {
		t.Errorf("took %q, rest %v", it.Name, rest)
	}
	// The caller's slice is not overwritten in place.
	if bag[1].Name != "B" {
		t.Errorf("input slice modified: %v", bag)
	}
}

func TestTake_Missing(t *testing.T) {
	bag := items("A")
	_, rest, err := Take(bag, "Z", "the bag")
	if err == nil {
		t.Fatal("expected error")
	}
	if len(rest) != 1 {
		t.Errorf("rest = %v, want unchanged", rest)
	}
}

func TestIndex(t *testing.T) {
	nums := []int{3, 5, 7}
	name := func(n int) string { return string(rune('a' + n)) }
	if got := Index(nums, name, "f"); got != 1 {
		t.Errorf("Index = %d, want 1", got)
	}
	if got := Index(nums, name, "z"); got != -1 {
		t.Errorf("Index = %d, want -1", got)
	}
}
