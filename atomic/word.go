package atomic

// Word is the set of types a primitive can operate on. The width of an
// operation is the size of the type argument, so any named type whose
// underlying type is one of these resolves to the matching width.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Wide is the subset of Word with native exchange instructions.
type Wide interface {
	~uint32 | ~uint64 | ~uintptr
}

// Width names a logical operand width.
type Width uint8

const (
	W8 Width = iota
	W16
	W32
	W64
	WPtr
)

// Widths lists every logical width in ascending order, pointer last.
var Widths = [...]Width{W8, W16, W32, W64, WPtr}

// Bits returns the number of bits in the width.
func (w Width) Bits() int {
	switch w {
	case W8:
		return 8
	case W16:
		return 16
	case W32:
		return 32
	case W64:
		return 64
	case WPtr:
		return PointerBits
	}
	return 0
}

// Suffix returns the type suffix used by the width-named functions.
func (w Width) Suffix() string {
	switch w {
	case W8:
		return "Uint8"
	case W16:
		return "Uint16"
	case W32:
		return "Uint32"
	case W64:
		return "Uint64"
	case WPtr:
		return "Uintptr"
	}
	return ""
}

func (w Width) String() string {
	switch w {
	case W8:
		return "8"
	case W16:
		return "16"
	case W32:
		return "32"
	case W64:
		return "64"
	case WPtr:
		return "ptr"
	}
	return "invalid"
}

// Ordering is a memory ordering contract.
type Ordering uint8

const (
	Relaxed Ordering = iota
	Acquire
	Release
	AcqRel
	SeqCst
)

// CASFailureOrdering is the ordering a failed compare-and-swap promises.
// Go's implementation is stronger, callers must not rely on it.
const CASFailureOrdering = Relaxed

func (o Ordering) String() string {
	switch o {
	case Relaxed:
		return "Relaxed"
	case Acquire:
		return "Acquire"
	case Release:
		return "Release"
	case AcqRel:
		return "AcqRel"
	case SeqCst:
		return "SeqCst"
	}
	return "Invalid"
}

// Implies reports whether o is at least as strong as p.
func (o Ordering) Implies(p Ordering) bool {
	switch o {
	case SeqCst:
		return p <= SeqCst
	case AcqRel:
		return p <= AcqRel
	case Acquire, Release:
		return p == o || p == Relaxed
	case Relaxed:
		return p == Relaxed
	}
	return false
}

// suffix is the name fragment an entry point carries for ordering o.
func (o Ordering) suffix() string {
	switch o {
	case Acquire:
		return "Acquire"
	case Release:
		return "Release"
	}
	return ""
}

// Op identifies a primitive in the catalogue.
type Op uint8

const (
	OpSet Op = iota
	OpClear
	OpAdd
	OpSubtract
	OpCompareAndSwap
	OpFetchAdd
	OpFetchSubtract
	OpLoad
	OpStore
	OpReadAndClear
)

func (op Op) String() string {
	switch op {
	case OpSet:
		return "Set"
	case OpClear:
		return "Clear"
	case OpAdd:
		return "Add"
	case OpSubtract:
		return "Subtract"
	case OpCompareAndSwap:
		return "CompareAndSwap"
	case OpFetchAdd:
		return "FetchAdd"
	case OpFetchSubtract:
		return "FetchSubtract"
	case OpLoad:
		return "Load"
	case OpStore:
		return "Store"
	case OpReadAndClear:
		return "ReadAndClear"
	}
	return "Invalid"
}
