//go:build amd64 || arm64 || loong64 || mips64le || ppc64le || riscv64

package atomic

// laneShift returns the bit offset of a lane starting off bytes into its
// word. Byte 0 is the least significant on little-endian targets.
//
//go:nosplit
func laneShift(off, _ uintptr) uint32 {
	return uint32(off) * 8
}
