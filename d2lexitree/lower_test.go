package d2lexitree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qntx/lexitrees/internal/dnode"
)

func TestLowerLeft1(t *testing.T) {
	prev := &dnode.Node[int, int]{}
	cur1 := &dnode.Node[int, int]{Key: 5}
	other1 := &dnode.Node[int, int]{Key: 3}
	cur1.Left = other1
	prev.Left = cur1

	hole := lower(prev, cur1, other1, nil)

	assert.True(t, hole)
	assert.Equal(t, other1, prev.Left)
	assert.Equal(t, cur1, other1.Right)
	assert.True(t, other1.HighRight)
	assert.Nil(t, cur1.Left)
}

func TestLowerRight1(t *testing.T) {
	prev := &dnode.Node[int, int]{}
	cur1 := &dnode.Node[int, int]{Key: 5}
	other1 := &dnode.Node[int, int]{Key: 7}
	cur1.Right = other1
	prev.Right = cur1

	hole := lower(prev, cur1, other1, nil)

	assert.True(t, hole)
	assert.True(t, cur1.HighRight)
	assert.Equal(t, cur1, prev.Right)
}

func TestLowerRightHi1(t *testing.T) {
	prev := &dnode.Node[int, int]{}
	cur1 := &dnode.Node[int, int]{Key: 5, HighRight: true}
	r := &dnode.Node[int, int]{Key: 6}
	other1 := &dnode.Node[int, int]{Key: 7}
	cur1.Right = r
	r.Left = other1
	prev.Left = cur1

	hole := lower(prev, cur1, other1, nil)

	assert.False(t, hole)
	assert.Equal(t, r, prev.Left)
	assert.Equal(t, cur1, r.Left)
	assert.Equal(t, other1, cur1.Right)
}

func TestLowerLeft2(t *testing.T) {
	prev := &dnode.Node[int, int]{}
	cur1 := &dnode.Node[int, int]{Key: 5}
	other1 := &dnode.Node[int, int]{Key: 2}
	other2 := &dnode.Node[int, int]{Key: 3}
	other1.Right = other2
	other1.HighRight = true
	cur1.Left = other1
	prev.Left = cur1

	hole := lower(prev, cur1, other1, other2)

	assert.False(t, hole)
	assert.Equal(t, other2, prev.Left)
	assert.Equal(t, other1, other2.Left)
	assert.Equal(t, cur1, other2.Right)
	assert.Nil(t, other1.Right)
	assert.False(t, other1.HighRight)
	assert.Nil(t, cur1.Left)
	assert.False(t, other2.HighRight)
}

func TestLowerRight2(t *testing.T) {
	prev := &dnode.Node[int, int]{}
	cur1 := &dnode.Node[int, int]{Key: 5, HighRight: true}
	r := &dnode.Node[int, int]{Key: 6}
	other1 := &dnode.Node[int, int]{Key: 7}
	other2 := &dnode.Node[int, int]{Key: 8}
	cur1.Right = r
	r.Left = other1
	prev.Right = cur1

	hole := lower(prev, cur1, other1, other2)

	assert.False(t, hole)
	assert.Equal(t, other1, prev.Right)
	assert.Equal(t, cur1, other1.Left)
	assert.Nil(t, cur1.Right)
	assert.False(t, cur1.HighRight)
	assert.Equal(t, r, other1.Right)
	assert.Equal(t, other2, r.Left)
}
