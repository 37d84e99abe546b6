package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelforge/carvecache/coord"
)

func TestWriteAccumulates(t *testing.T) {
	c := New()

	c.Write(3, 64, 9, TagLiquidCheck)
	c.Write(3, 64, 9, TagCarve)
	c.Write(3, 64, 9, TagDecorate)

	assert.Equal(t, TagLiquidCheck+TagCarve+TagDecorate, c.At(3, 64, 9))
	assert.Equal(t, int32(0), c.At(3, 65, 9))
}

func TestWriteAddressesPackedCell(t *testing.T) {
	c := New()
	c.Write(15, 255, 15, TagCarve)

	snap := c.Snapshot()
	assert.Equal(t, TagCarve, snap[coord.Index(15, 255, 15)])
}

func TestReset(t *testing.T) {
	c := New()
	c.Write(1, 2, 3, TagCarve)
	c.Reset()

	assert.Equal(t, int32(0), c.At(1, 2, 3))
	assert.True(t, c.Touched().IsEmpty())
}

func TestSnapshotIsIndependent(t *testing.T) {
	c := New()
	c.Write(5, 100, 5, TagCarve)

	snap := c.Snapshot()
	c.Write(5, 100, 5, TagCarve)

	assert.Equal(t, TagCarve, snap[coord.Index(5, 100, 5)])
	assert.Equal(t, 2*TagCarve, c.At(5, 100, 5))
}

func TestTouched(t *testing.T) {
	c := New()
	c.Write(0, 0, 0, TagLiquidCheck)
	c.Write(7, 128, 7, TagCarve)

	bm := c.Touched()
	require.EqualValues(t, 2, bm.GetCardinality())
	assert.True(t, bm.Contains(uint32(coord.Index(0, 0, 0))))
	assert.True(t, bm.Contains(uint32(coord.Index(7, 128, 7))))
	assert.False(t, bm.Contains(uint32(coord.Index(1, 1, 1))))
}
