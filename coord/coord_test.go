package coord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			for z := 0; z < Depth; z++ {
				gx, gy, gz := Pack(x, y, z).Unpack()
				if gx != x || gy != y || gz != z {
					t.Fatalf("round trip (%d,%d,%d) -> (%d,%d,%d)", x, y, z, gx, gy, gz)
				}
			}
		}
	}
}

func TestPackedValuesAreDistinct(t *testing.T) {
	seen := make(map[Packed]struct{}, Width*Height*Depth)
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			for z := 0; z < Depth; z++ {
				p := Pack(x, y, z)
				_, dup := seen[p]
				require.False(t, dup, "duplicate code %d", p)
				seen[p] = struct{}{}
			}
		}
	}
}

func TestIndexMatchesPack(t *testing.T) {
	assert.Equal(t, int(Pack(3, 200, 7)), Index(3, 200, 7))
	assert.Equal(t, 0, Index(0, 0, 0))
	assert.Equal(t, Width*Height*Depth-1, Index(Width-1, Height-1, Depth-1))
}

func TestClampXZ(t *testing.T) {
	assert.Equal(t, 0, ClampXZ(-5))
	assert.Equal(t, 0, ClampXZ(0))
	assert.Equal(t, 9, ClampXZ(9))
	assert.Equal(t, 16, ClampXZ(16))
	assert.Equal(t, 16, ClampXZ(23))
}

func TestClampY(t *testing.T) {
	assert.Equal(t, 1, ClampY(-12))
	assert.Equal(t, 1, ClampY(0))
	assert.Equal(t, 1, ClampY(1))
	assert.Equal(t, 128, ClampY(128))
	assert.Equal(t, 248, ClampY(248))
	assert.Equal(t, 248, ClampY(300))
}
