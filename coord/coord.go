// Package coord packs chunk-local lattice coordinates into a single
// fixed-width integer.
//
// A Packed value uses the layout x<<12 | z<<8 | y: x and z occupy
// 4-bit fields covering [0,16), y an 8-bit field covering [0,256).
// The layout is identical to the flat cell index of chunk.Chunk, so a
// packed coordinate produced by one side addresses exactly the cell
// the other side mutates.
package coord

// Axis extents of the packing domain.
const (
	Width  = 16  // x
	Height = 256 // y
	Depth  = 16  // z
)

const (
	yBits = 8
	zBits = 4
	xBits = 4

	zShift = yBits
	xShift = yBits + zBits

	yMask = 1<<yBits - 1
	zMask = 1<<zBits - 1
	xMask = 1<<xBits - 1
)

// Packed is a single lattice point encoded as x<<12 | z<<8 | y.
type Packed uint32

// Pack encodes a lattice point. Coordinates outside the field widths
// are truncated; callers are expected to clamp upstream (see ClampXZ
// and ClampY).
func Pack(x, y, z int) Packed {
	return Packed(x&xMask<<xShift | z&zMask<<zShift | y&yMask)
}

// Unpack decodes the lattice point. Pack and Unpack round-trip for
// every in-domain input.
func (p Packed) Unpack() (x, y, z int) {
	return int(p >> xShift & xMask), int(p & yMask), int(p >> zShift & zMask)
}

// Index returns the flat chunk-cell index of (x, y, z). It is the
// same computation as Pack, typed for slice indexing.
func Index(x, y, z int) int {
	return int(Pack(x, y, z))
}

// ClampXZ limits a horizontal loop bound to [0,16]. The upper value
// is inclusive because enumeration bounds are exclusive on the high
// side.
func ClampXZ(v int) int {
	if v < 0 {
		return 0
	}
	return min(v, Width)
}

// ClampY limits a vertical loop bound to [1,248], keeping carved
// volumes away from the bedrock floor and the build ceiling.
func ClampY(v int) int {
	if v < 1 {
		return 1
	}
	return min(v, 248)
}
