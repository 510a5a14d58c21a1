package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddChildAndWorld(t *testing.T) {
	g := NewGraph()
	group, err := g.AddChild(Root, Node{Name: "group", X: 1, Y: 2})
	require.NoError(t, err)
	leaf, err := g.AddChild(group, Node{Name: "leaf", X: 0.5, Y: -1, Width: 1, Height: 1})
	require.NoError(t, err)

	x, y, _, err := g.World(leaf)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, x, 1e-6)
	assert.InDelta(t, 1.0, y, 1e-6)

	require.NoError(t, g.SetTranslation(group, 0, -3, 0))
	x, y, _, err = g.World(leaf)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, x, 1e-6)
	assert.InDelta(t, -4.0, y, 1e-6)
}

func TestInvalidHandles(t *testing.T) {
	g := NewGraph()
	_, err := g.AddChild(42, Node{})
	assert.ErrorIs(t, err, ErrNoNode)
	assert.ErrorIs(t, g.SetTranslation(-1, 0, 0, 0), ErrNoNode)
	assert.ErrorIs(t, g.SetMaterial(7, Material{}), ErrNoNode)
	_, err = g.Node(7)
	assert.ErrorIs(t, err, ErrNoNode)
	assert.Equal(t, 1, g.Len())
}

func TestFindFirstMatch(t *testing.T) {
	g := NewGraph()
	first, _ := g.AddChild(Root, Node{Name: "lane"})
	g.AddChild(Root, Node{Name: "lane"})

	h, ok := g.Find("lane")
	assert.True(t, ok)
	assert.Equal(t, first, h)

	_, ok = g.Find("lan")
	assert.False(t, ok)
}

func TestWalkMatchesWorld(t *testing.T) {
	g := NewGraph()
	a, _ := g.AddChild(Root, Node{Name: "a", X: 1})
	b, _ := g.AddChild(a, Node{Name: "b", Y: 2})
	g.AddChild(b, Node{Name: "c", X: 3, Width: 1, Height: 1})

	visited := 0
	g.Walk(func(h Handle, n *Node, x, y, z float32) {
		wx, wy, wz, err := g.World(h)
		require.NoError(t, err)
		assert.Equal(t, wx, x, n.Name)
		assert.Equal(t, wy, y, n.Name)
		assert.Equal(t, wz, z, n.Name)
		visited++
	})
	assert.Equal(t, 4, visited)
}
