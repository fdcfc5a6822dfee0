// Package resolve maps player-supplied names onto items and enemies.
// Matching is exact and case-sensitive; the first match wins.
package resolve

import (
	"fmt"

	"github.com/nathoo/kerker/types"
)

// NotFoundError indicates no entry in the addressed collection matched a name.
type NotFoundError struct {
	What  string // "item", "enemy"
	Where string // human-readable collection, e.g. "the room"
	Name  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No %s named '%s' in %s.", e.What, e.Name, e.Where)
}

// Index returns the position of the first element whose name equals name.
func Index[T any](elems []T, nameOf func(T) string, name string) int {
	for i, el := range elems {
		if nameOf(el) == name {
			return i
		}
	}
	return -1
}

// Item returns the index of the first item named name, or a NotFoundError
// describing where the lookup failed.
func Item(items []types.Item, name, where string) (int, error) {
	i := Index(items, func(it types.Item) string { return it.Name }, name)
	if i < 0 {
		return -1, &NotFoundError{What: "item", Where: where, Name: name}
	}
	return i, nil
}

// Take removes and returns the first item named name.
func Take(items []types.Item, name, where string) (types.Item, []types.Item, error) {
	i, err := Item(items, name, where)
	if err != nil {
		return types.Item{}, items, err
	}
	it := items[i]
	return it, append(items[:i:i], items[i+1:]...), nil
}
