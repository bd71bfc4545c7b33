package d3lexitree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qntx/lexitrees/internal/dnode"
)

func TestLowerRight1(t *testing.T) {
	prev := &dnode.Node[int, int]{}
	cur1 := &dnode.Node[int, int]{Key: 5}
	other1 := &dnode.Node[int, int]{Key: 7}
	cur2 := &dnode.Node[int, int]{Key: 3}
	cur1.Left = cur2
	cur1.Right = other1
	prev.Right = cur1

	prevC1, prevC2 := lower(prev, cur1, cur2, other1, nil, nil, true)

	assert.Same(t, cur2, prevC1)
	assert.Same(t, prev, prevC2)
	assert.Equal(t, cur2, prev.Right)
	assert.True(t, cur2.HighRight)
	assert.Same(t, cur1, cur2.Right)
	assert.Nil(t, cur1.Left)
	assert.Same(t, other1, cur1.Right)
	assert.True(t, cur1.HighRight)
}

func TestLowerLeft1(t *testing.T) {
	prev := &dnode.Node[int, int]{}
	cur1 := &dnode.Node[int, int]{Key: 5}
	other1 := &dnode.Node[int, int]{Key: 2}
	cur2 := &dnode.Node[int, int]{Key: 7}
	cur1.Left = other1
	cur1.Right = cur2
	prev.Right = cur1

	prevC1, prevC2 := lower(prev, cur1, cur2, other1, nil, nil, true)

	assert.Same(t, other1, prevC1)
	assert.Same(t, cur1, prevC2)
	assert.Equal(t, other1, prev.Right)
	assert.True(t, other1.HighRight)
	assert.Same(t, cur1, other1.Right)
	assert.Nil(t, cur1.Left)
	assert.Same(t, cur2, cur1.Right)
	assert.True(t, cur1.HighRight)
}

func TestLowerRightHi1(t *testing.T) {
	prev := &dnode.Node[int, int]{}
	cur1 := &dnode.Node[int, int]{Key: 10, HighRight: true}
	r := &dnode.Node[int, int]{Key: 15}
	other1 := &dnode.Node[int, int]{Key: 20}
	cur2 := &dnode.Node[int, int]{Key: 5}
	cur1.Left = cur2
	cur1.Right = r
	r.Left = other1
	prev.Right = cur1

	prevC1, prevC2 := lower(prev, cur1, cur2, other1, nil, nil, false)

	assert.Same(t, cur2, prevC1)
	assert.Same(t, r, prevC2)
	assert.Same(t, r, prev.Right)
	assert.Same(t, cur2, r.Left)
	assert.Same(t, cur1, cur2.Right)
	assert.True(t, cur2.HighRight)
	assert.Nil(t, cur1.Left)
	assert.Same(t, other1, cur1.Right)
	assert.True(t, cur1.HighRight)
}

func TestLowerLeft2(t *testing.T) {
	prev := &dnode.Node[int, int]{}
	cur1 := &dnode.Node[int, int]{Key: 10}
	cur2 := &dnode.Node[int, int]{Key: 12}
	other1 := &dnode.Node[int, int]{Key: 2}
	other2 := &dnode.Node[int, int]{Key: 5}
	gc := &dnode.Node[int, int]{Key: 4}

	cur1.Left = other1
	cur1.Right = cur2
	other1.Right = other2
	other1.HighRight = true
	other2.Left = gc
	prev.Right = cur1

	prevC1, prevC2 := lower(prev, cur1, cur2, other1, other2, nil, false)

	assert.Same(t, other2, prevC1)
	assert.Same(t, cur1, prevC2)
	assert.Same(t, other2, prev.Right)
	assert.Same(t, gc, other1.Right)
	assert.False(t, other1.HighRight)
	assert.Same(t, other1, other2.Left)
	assert.False(t, other2.HighRight)
	assert.Nil(t, cur1.Left)
	assert.True(t, cur1.HighRight)
	assert.Same(t, cur1, other2.Right)
}

func TestLowerLeft3(t *testing.T) {
	prev := &dnode.Node[int, int]{}
	cur1 := &dnode.Node[int, int]{Key: 20}
	cur2 := &dnode.Node[int, int]{Key: 25}
	other1 := &dnode.Node[int, int]{Key: 2}
	other2 := &dnode.Node[int, int]{Key: 5}
	other3 := &dnode.Node[int, int]{Key: 8}
	gc2 := &dnode.Node[int, int]{Key: 4}

	cur1.Left = other1
	cur1.Right = cur2
	other1.Right = other2
	other1.HighRight = true
	other2.Left = gc2
	other2.Right = other3
	other2.HighRight = true
	prev.Right = cur1

	prevC1, prevC2 := lower(prev, cur1, cur2, other1, other2, other3, false)

	assert.Same(t, other3, prevC1)
	assert.Same(t, cur1, prevC2)
	assert.Same(t, other2, prev.Right)
	assert.Same(t, gc2, other1.Right)
	assert.False(t, other1.HighRight)
	assert.Same(t, other1, other2.Left)
	assert.False(t, other2.HighRight)
	assert.Nil(t, cur1.Left)
	assert.True(t, cur1.HighRight)
	assert.Same(t, cur1, other3.Right)
	assert.True(t, other3.HighRight)
}

func TestLowerRight2(t *testing.T) {
	prev := &dnode.Node[int, int]{}
	cur1 := &dnode.Node[int, int]{Key: 10}
	cur2 := &dnode.Node[int, int]{Key: 5}
	other1 := &dnode.Node[int, int]{Key: 15}
	other2 := &dnode.Node[int, int]{Key: 17}
	gc := &dnode.Node[int, int]{Key: 12}

	cur1.Left = cur2
	cur1.Right = other1
	other1.Left = gc
	other1.Right = other2
	other1.HighRight = true
	prev.Right = cur1

	prevC1, prevC2 := lower(prev, cur1, cur2, other1, other2, nil, false)

	assert.Same(t, cur2, prevC1)
	assert.Same(t, other1, prevC2)
	assert.Same(t, gc, cur1.Right)
	assert.Same(t, cur2, other1.Left)
	assert.False(t, other1.HighRight)
	assert.False(t, cur1.HighRight)
	assert.Same(t, other1, prev.Right)
	assert.Nil(t, cur1.Left)
	assert.Same(t, cur1, cur2.Right)
	assert.True(t, cur2.HighRight)
}

func TestLowerRight3(t *testing.T) {
	prev := &dnode.Node[int, int]{}
	cur1 := &dnode.Node[int, int]{Key: 10, HighRight: true}
	r := &dnode.Node[int, int]{Key: 50}
	other1 := &dnode.Node[int, int]{Key: 15, HighRight: true}
	other2 := &dnode.Node[int, int]{Key: 20, HighRight: true}
	other3 := &dnode.Node[int, int]{Key: 25}
	cur2 := &dnode.Node[int, int]{Key: 5}
	gc := &dnode.Node[int, int]{Key: 18}

	cur1.Left = cur2
	cur1.Right = r
	r.Left = other1
	other1.Right = other2
	other2.Left = gc
	other2.Right = other3
	prev.Right = cur1

	prevC1, prevC2 := lower(prev, cur1, cur2, other1, other2, other3, false)

	assert.Same(t, cur2, prevC1)
	assert.Same(t, other2, prevC2)
	assert.Same(t, other2, prev.Right)
	assert.Same(t, cur2, other2.Left)
	assert.Same(t, r, other2.Right)
	assert.True(t, other2.HighRight)
	assert.Same(t, other3, r.Left)
	assert.Same(t, gc, other1.Right)
	assert.False(t, other1.HighRight)
	assert.Same(t, other1, cur1.Right)
	assert.Nil(t, cur1.Left)
	assert.True(t, cur1.HighRight)
	assert.Same(t, cur1, cur2.Right)
	assert.True(t, cur2.HighRight)
}
