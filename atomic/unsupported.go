//go:build !(amd64 || arm64 || loong64 || mips64le || ppc64le || riscv64)

package atomic

// This package maps onto 64-bit little-endian targets only. Porting means
// supplying laneShift and the pointer binding in ptr64.go for the new target.
var _ = atomicRequiresA64BitLittleEndianTarget
