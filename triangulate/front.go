package triangulate

import (
	"strconv"

	"github.com/MauriceGit/skiplist"
)

// frontIndexEps is the key resolution of the advancing front's skiplist
// index. Distinct x values closer than this collapse onto one key, which
// falls under the documented fine-geometry limits of the algorithm.
const frontIndexEps = 1e-12

// frontNode is one vertex of the advancing front polyline. tri is the
// triangle currently adjoining the span (point, next.point) from the mesh
// side; the tail sentinel has no span and keeps tri nil.
type frontNode struct {
	point *point
	tri   *Triangle
	prev  *frontNode
	next  *frontNode
}

// frontKey is a skiplist entry mapping an x value to the rightmost front
// node holding it.
type frontKey struct {
	x    float64
	node *frontNode
}

// ExtractKey implements skiplist.ListElement.
func (k frontKey) ExtractKey() float64 {
	return k.x
}

// String implements skiplist.ListElement.
func (k frontKey) String() string {
	return strconv.FormatFloat(k.x, 'f', -1, 64)
}

// advancingFront is the x-sorted doubly-linked hull polyline of the swept
// region, from the head sentinel to the tail sentinel. The skiplist holds one
// entry per distinct x, pointing at the rightmost node with that x, which
// makes locate, insert and remove logarithmic while keeping duplicate x
// values unambiguous.
type advancingFront struct {
	head  *frontNode
	tail  *frontNode
	index *skiplist.SkipList
}

// newAdvancingFront seeds the front with head -> mid -> tail, where head and
// tail carry the sentinel points and mid the first swept point. tri is the
// initial triangle, adjoining both leading spans.
func newAdvancingFront(head, mid, tail *point, tri *Triangle) *advancingFront {
	hn := &frontNode{point: head, tri: tri}
	mn := &frontNode{point: mid, tri: tri}
	tn := &frontNode{point: tail}
	hn.next = mn
	mn.prev = hn
	mn.next = tn
	tn.prev = mn

	idx := skiplist.NewEps(frontIndexEps)
	f := &advancingFront{head: hn, tail: tn, index: &idx}
	f.index.Insert(frontKey{x: head.X, node: hn})
	f.index.Insert(frontKey{x: mid.X, node: mn})
	f.index.Insert(frontKey{x: tail.X, node: tn})
	return f
}

// locate returns the rightmost node whose x does not exceed the probe. The
// sentinels pad the swept x range, so every probe lands strictly between the
// smallest and largest keys.
func (f *advancingFront) locate(x float64) *frontNode {
	elem, ok := f.index.FindGreaterOrEqual(frontKey{x: x})
	if !ok {
		return f.index.GetLargestNode().GetValue().(frontKey).node
	}
	k := elem.GetValue().(frontKey)
	if k.x > x {
		k = f.index.Prev(elem).GetValue().(frontKey)
	}
	return k.node
}

// locatePoint returns the node holding exactly p, or nil when p is not on the
// front. Nodes sharing an x value sit adjacent in the list, so the search
// degenerates to a short scan of the equal-x run around the representative.
func (f *advancingFront) locatePoint(p *point) *frontNode {
	n := f.locate(p.X)
	if n.point == p {
		return n
	}
	if n.next != nil && n.next.point == p {
		return n.next
	}
	for m := n.prev; m != nil && m.point.X == p.X; m = m.prev {
		if m.point == p {
			return m
		}
	}
	return nil
}

// insertAfter links a new node for p to the right of node and binds tri to
// it. The caller guarantees node.X <= p.X < node.next.X at key resolution, so
// list order is preserved.
func (f *advancingFront) insertAfter(node *frontNode, p *point, tri *Triangle) *frontNode {
	nn := &frontNode{point: p, tri: tri, prev: node, next: node.next}
	node.next.prev = nn
	node.next = nn
	f.indexInsert(nn)
	return nn
}

// remove unlinks node from the front. The removed node keeps its own prev and
// next pointers: fill walks step off nodes they have just filled away.
func (f *advancingFront) remove(node *frontNode) {
	f.indexRemove(node)
	node.prev.next = node.next
	node.next.prev = node.prev
}

func (f *advancingFront) indexInsert(nn *frontNode) {
	x := nn.point.X
	if nn.next != nil && nn.next.point.X == x {
		// an equal-x node to the right stays the representative
		return
	}
	if nn.prev != nil && nn.prev.point.X == x {
		if elem, ok := f.index.FindGreaterOrEqual(frontKey{x: x}); ok {
			if k := elem.GetValue().(frontKey); k.x == x {
				f.index.ChangeValue(elem, frontKey{x: x, node: nn})
				return
			}
		}
	}
	f.index.Insert(frontKey{x: x, node: nn})
}

func (f *advancingFront) indexRemove(node *frontNode) {
	x := node.point.X
	elem, ok := f.index.FindGreaterOrEqual(frontKey{x: x})
	if !ok {
		return
	}
	k := elem.GetValue().(frontKey)
	if k.x != x || k.node != node {
		// node was not the representative for its x
		return
	}
	if node.prev != nil && node.prev.point.X == x {
		f.index.ChangeValue(elem, frontKey{x: x, node: node.prev})
		return
	}
	f.index.Delete(frontKey{x: x})
}
