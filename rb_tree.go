package treemap

import (
	"cmp"
)

type Color uint8

const (
	red   Color = 0
	black Color = 1
)

type node[K, V any] struct {
	key    K
	val    V
	color  Color
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
}

// Entry is one key/value pair of a Tree.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Tree is an ordered map backed by a red-black tree. Keys are unique;
// inserting an existing key overwrites its value in place. All
// operations are O(log n) except full traversal, which is O(n).
//
// A Tree is not safe for concurrent use. Callers that share one
// instance across goroutines must serialize every mutating call, and
// must not mutate the tree while consuming an iteration.
type Tree[K, V any] struct {
	cmp  func(K, K) int
	root *node[K, V]
	nil  *node[K, V] // sentinel (black)
	size int
}

// New constructs an empty tree ordered by cmp.Compare. For float
// keys, NaN sorts before all other values per cmp.Compare.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc constructs an empty tree ordered by compare, which must
// define a strict total order over keys.
func NewFunc[K, V any](compare func(K, K) int) *Tree[K, V] {
	nilNode := &node[K, V]{color: black}
	return &Tree[K, V]{
		cmp:  compare,
		root: nilNode,
		nil:  nilNode,
		size: 0,
	}
}

// Len returns the number of distinct keys currently present.
func (t *Tree[K, V]) Len() int { return t.size }

// Search returns the value stored under key, or false if absent.
func (t *Tree[K, V]) Search(key K) (V, bool) {
	n := t.searchNode(key)
	if n == t.nil {
		var zero V
		return zero, false
	}
	return n.val, true
}

// Insert stores value under key. If the key is already present only
// its value changes; the tree shape and Len are untouched.
func (t *Tree[K, V]) Insert(key K, value V) {
	y := t.nil
	x := t.root
	for x != t.nil {
		y = x
		c := t.cmp(key, x.key)
		if c < 0 {
			x = x.left
		} else if c > 0 {
			x = x.right
		} else {
			x.val = value
			return
		}
	}

	z := &node[K, V]{
		key:    key,
		val:    value,
		color:  red,
		left:   t.nil,
		right:  t.nil,
		parent: y,
	}

	if y == t.nil {
		t.root = z
	} else if t.cmp(z.key, y.key) < 0 {
		y.left = z
	} else {
		y.right = z
	}
	t.insertFixup(z)
	t.size++
}

// Delete removes key and reports whether it was present.
func (t *Tree[K, V]) Delete(key K) bool {
	z := t.searchNode(key)
	if z == t.nil {
		return false
	}
	t.deleteNode(z)
	t.size--
	return true
}

// Min returns the smallest entry, or false if the tree is empty.
func (t *Tree[K, V]) Min() (K, V, bool) {
	n := t.minNode(t.root)
	if n == t.nil {
		var zk K
		var zv V
		return zk, zv, false
	}
	return n.key, n.val, true
}

// Max returns the largest entry, or false if the tree is empty.
func (t *Tree[K, V]) Max() (K, V, bool) {
	n := t.maxNode(t.root)
	if n == t.nil {
		var zk K
		var zv V
		return zk, zv, false
	}
	return n.key, n.val, true
}

// Successor returns the smallest entry with a key strictly greater
// than key, or false if no such entry exists. key itself need not be
// present.
func (t *Tree[K, V]) Successor(key K) (K, V, bool) {
	n := t.root
	succ := t.nil
	for n != t.nil {
		if t.cmp(key, n.key) < 0 {
			succ = n
			n = n.left
		} else {
			n = n.right
		}
	}
	if succ == t.nil {
		var zk K
		var zv V
		return zk, zv, false
	}
	return succ.key, succ.val, true
}

// Predecessor returns the largest entry with a key strictly less
// than key, or false if no such entry exists.
func (t *Tree[K, V]) Predecessor(key K) (K, V, bool) {
	n := t.root
	pred := t.nil
	for n != t.nil {
		if t.cmp(key, n.key) > 0 {
			pred = n
			n = n.right
		} else {
			n = n.left
		}
	}
	if pred == t.nil {
		var zk K
		var zv V
		return zk, zv, false
	}
	return pred.key, pred.val, true
}

// ForEachAscending visits entries in increasing key order until fn
// returns false.
func (t *Tree[K, V]) ForEachAscending(fn func(K, V) bool) {
	for n := t.minNode(t.root); n != t.nil; n = t.next(n) {
		if !fn(n.key, n.val) {
			return
		}
	}
}

// ForEachDescending visits entries in decreasing key order until fn
// returns false.
func (t *Tree[K, V]) ForEachDescending(fn func(K, V) bool) {
	for n := t.maxNode(t.root); n != t.nil; n = t.prev(n) {
		if !fn(n.key, n.val) {
			return
		}
	}
}

// Entries collects every entry in ascending key order.
func (t *Tree[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, t.size)
	t.ForEachAscending(func(k K, v V) bool {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
		return true
	})
	return entries
}

// Clear resets the tree to empty.
func (t *Tree[K, V]) Clear() {
	t.root = t.nil
	t.size = 0
}

/******************** Internal helpers ********************/

func (t *Tree[K, V]) searchNode(key K) *node[K, V] {
	n := t.root
	for n != t.nil {
		c := t.cmp(key, n.key)
		if c < 0 {
			n = n.left
		} else if c > 0 {
			n = n.right
		} else {
			return n
		}
	}
	return t.nil
}

func (t *Tree[K, V]) minNode(n *node[K, V]) *node[K, V] {
	if n == t.nil {
		return t.nil
	}
	for n.left != t.nil {
		n = n.left
	}
	return n
}

func (t *Tree[K, V]) maxNode(n *node[K, V]) *node[K, V] {
	if n == t.nil {
		return t.nil
	}
	for n.right != t.nil {
		n = n.right
	}
	return n
}

func (t *Tree[K, V]) next(n *node[K, V]) *node[K, V] {
	if n == t.nil {
		return t.nil
	}
	if n.right != t.nil {
		return t.minNode(n.right)
	}
	p := n.parent
	for p != t.nil && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

func (t *Tree[K, V]) prev(n *node[K, V]) *node[K, V] {
	if n == t.nil {
		return t.nil
	}
	if n.left != t.nil {
		return t.maxNode(n.left)
	}
	p := n.parent
	for p != t.nil && n == p.left {
		n = p
		p = p.parent
	}
	return p
}

func (t *Tree[K, V]) leftRotate(x *node[K, V]) {
	y := x.right
	x.right = y.left
	if y.left != t.nil {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == t.nil {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *Tree[K, V]) rightRotate(y *node[K, V]) {
	x := y.left
	y.left = x.right
	if x.right != t.nil {
		x.right.parent = y
	}
	x.parent = y.parent
	if y.parent == t.nil {
		t.root = x
	} else if y == y.parent.right {
		y.parent.right = x
	} else {
		y.parent.left = x
	}
	x.right = y
	y.parent = x
}

func (t *Tree[K, V]) insertFixup(z *node[K, V]) {
	for z.parent.color == red {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.leftRotate(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rightRotate(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rightRotate(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.leftRotate(z.parent.parent)
			}
		}
	}
	t.root.color = black
}

func (t *Tree[K, V]) transplant(u, v *node[K, V]) {
	if u.parent == t.nil {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

func (t *Tree[K, V]) deleteNode(z *node[K, V]) {
	y := z
	yOrigColor := y.color
	var x *node[K, V]

	if z.left == t.nil {
		x = z.right
		t.transplant(z, z.right)
	} else if z.right == t.nil {
		x = z.left
		t.transplant(z, z.left)
	} else {
		y = t.minNode(z.right)
		yOrigColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yOrigColor == black {
		t.deleteFixup(x)
	}
}

func (t *Tree[K, V]) deleteFixup(x *node[K, V]) {
	for x != t.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.leftRotate(x.parent)
				w = x.parent.right
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.right.color == black {
					w.left.color = black
					w.color = red
					t.rightRotate(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color = black
				w.right.color = black
				t.leftRotate(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rightRotate(x.parent)
				w = x.parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.left.color == black {
					w.right.color = black
					w.color = red
					t.leftRotate(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = black
				w.left.color = black
				t.rightRotate(x.parent)
				x = t.root
			}
		}
	}
	x.color = black
}
