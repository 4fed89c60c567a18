package treemap

import (
	"iter"
)

// InOrder returns a lazy sequence of entries in ascending key order.
// The sequence is restartable and uses O(height) auxiliary space.
// The tree must not be mutated while the sequence is being consumed.
func (t *Tree[K, V]) InOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stack := []*node[K, V]{}
		current := t.root
		for current != t.nil || len(stack) > 0 {
			for current != t.nil {
				stack = append(stack, current)
				current = current.left
			}

			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(current.key, current.val) {
				return
			}

			current = current.right
		}
	}
}

// Reverse is InOrder in descending key order.
func (t *Tree[K, V]) Reverse() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stack := []*node[K, V]{}
		current := t.root
		for current != t.nil || len(stack) > 0 {
			for current != t.nil {
				stack = append(stack, current)
				current = current.right
			}

			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(current.key, current.val) {
				return
			}

			current = current.left
		}
	}
}
