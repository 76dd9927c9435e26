// Package reorder turns pointer and keyboard drag gestures into section
// order permutations and commits them through the store.
package reorder

import "github.com/jonathan/resume-builder/internal/types"

// Permute returns order with the reference draggedID moved to the
// position overID currently occupies. When either id is missing or they
// are equal the order is returned unchanged (as a copy).
func Permute(order types.SectionOrder, draggedID, overID string) types.SectionOrder {
	from := order.Index(draggedID)
	to := order.Index(overID)
	if from < 0 || to < 0 || from == to {
		return order.Clone()
	}
	return arrayMove(order, from, to)
}

func arrayMove(order types.SectionOrder, from, to int) types.SectionOrder {
	out := make(types.SectionOrder, 0, len(order))
	moved := order[from]
	for i, ref := range order {
		if i == from {
			continue
		}
		out = append(out, ref)
	}
	out = append(out, types.SectionRef{})
	copy(out[to+1:], out[to:])
	out[to] = moved
	return out
}
