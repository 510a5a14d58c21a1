package scene

import (
	"errors"
	"image/color"
)

// Handle identifies a node inside a Graph. Handles are stable for the lifetime
// of the graph, nodes are never removed.
type Handle int

// Root is the handle of the node every Graph starts with.
const Root Handle = 0

var ErrNoNode = errors.New("no such scene node")

type Material struct {
	Color color.RGBA
}

// Node is a flat plane positioned relative to its parent. A node with no size
// is a pure container and is not drawn.
type Node struct {
	Name          string
	Width, Height float32
	X, Y, Z       float32
	Material      Material

	parent Handle
}

func (n *Node) Parent() Handle {
	return n.parent
}

func (n *Node) Drawable() bool {
	return n.Width > 0 && n.Height > 0
}

type Graph struct {
	nodes []Node
}

func NewGraph() *Graph {
	return &Graph{
		nodes: []Node{{Name: "root", parent: -1}},
	}
}

func (g *Graph) valid(h Handle) bool {
	return h >= 0 && int(h) < len(g.nodes)
}

func (g *Graph) Len() int {
	return len(g.nodes)
}

// AddChild appends a copy of n under parent and returns its handle.
func (g *Graph) AddChild(parent Handle, n Node) (Handle, error) {
	if !g.valid(parent) {
		return -1, ErrNoNode
	}
	n.parent = parent
	g.nodes = append(g.nodes, n)
	return Handle(len(g.nodes) - 1), nil
}

func (g *Graph) Node(h Handle) (*Node, error) {
	if !g.valid(h) {
		return nil, ErrNoNode
	}
	return &g.nodes[h], nil
}

func (g *Graph) SetTranslation(h Handle, x, y, z float32) error {
	if !g.valid(h) {
		return ErrNoNode
	}
	n := &g.nodes[h]
	n.X, n.Y, n.Z = x, y, z
	return nil
}

func (g *Graph) Translation(h Handle) (x, y, z float32, err error) {
	if !g.valid(h) {
		return 0, 0, 0, ErrNoNode
	}
	n := &g.nodes[h]
	return n.X, n.Y, n.Z, nil
}

func (g *Graph) SetMaterial(h Handle, m Material) error {
	if !g.valid(h) {
		return ErrNoNode
	}
	g.nodes[h].Material = m
	return nil
}

// Find returns the first node, in insertion order, whose name is exactly name.
func (g *Graph) Find(name string) (Handle, bool) {
	for i := range g.nodes {
		if g.nodes[i].Name == name {
			return Handle(i), true
		}
	}
	return -1, false
}

// World returns the translation of h accumulated through all of its parents.
func (g *Graph) World(h Handle) (x, y, z float32, err error) {
	if !g.valid(h) {
		return 0, 0, 0, ErrNoNode
	}
	for ; h >= 0; h = g.nodes[h].parent {
		n := &g.nodes[h]
		x += n.X
		y += n.Y
		z += n.Z
	}
	return x, y, z, nil
}

// Walk visits every node in insertion order with its world position. Parents
// are always inserted before their children, so one pass is enough.
func (g *Graph) Walk(visit func(h Handle, n *Node, x, y, z float32)) {
	world := make([][3]float32, len(g.nodes))
	for i := range g.nodes {
		n := &g.nodes[i]
		w := [3]float32{n.X, n.Y, n.Z}
		if n.parent >= 0 {
			p := world[n.parent]
			w[0] += p[0]
			w[1] += p[1]
			w[2] += p[2]
		}
		world[i] = w
		visit(Handle(i), n, w[0], w[1], w[2])
	}
}
