package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoxCenterRadii(t *testing.T) {
	t.Parallel()
	b := Box{X0: 10, Y0: 20, X1: 30, Y1: 60}
	xm, ym := b.Center()
	rx, ry := b.Radii()
	require.Equal(t, 20.0, xm)
	require.Equal(t, 40.0, ym)
	require.Equal(t, 10.0, rx)
	require.Equal(t, 20.0, ry)

	rx, ry = Box{X0: 30, Y0: 60, X1: 10, Y1: 20}.Radii()
	require.Equal(t, -10.0, rx)
	require.Equal(t, -20.0, ry)
}

func TestBounds(t *testing.T) {
	t.Parallel()
	require.True(t, Bounds(nil).IsEmpty())

	bb := Bounds([]Point{{3, 4}, {-1, 8}, {5, 0}})
	require.Equal(t, BBox{MinX: -1, MinY: 0, MaxX: 5, MaxY: 8}, bb)
	require.Equal(t, 6.0, bb.Width())
	require.Equal(t, 8.0, bb.Height())
}

func TestBBoxUnionPad(t *testing.T) {
	t.Parallel()
	a := Bounds([]Point{{0, 0}, {10, 10}})
	b := Bounds([]Point{{5, -5}, {20, 5}})
	require.Equal(t, BBox{MinX: 0, MinY: -5, MaxX: 20, MaxY: 10}, a.Union(b))
	require.Equal(t, a, a.Union(EmptyBBox()))
	require.Equal(t, a, EmptyBBox().Union(a))
	require.Equal(t, BBox{MinX: -2, MinY: -2, MaxX: 12, MaxY: 12}, a.Pad(2))
	require.True(t, EmptyBBox().Pad(3).IsEmpty())
}
