package mem

import "unsafe"

// Alignment is the boundary every Block pointer satisfies.
const Alignment = 16

// AlignedSize rounds n up to the next multiple of Alignment. For all n >= 0:
// AlignedSize(n) >= n, AlignedSize(n)%16 == 0, AlignedSize(n) < n+16.
func AlignedSize(n int) int {
	return (n + Alignment - 1) &^ (Alignment - 1)
}

// AdjustPointerAlignment shifts base forward to the next 16-byte boundary
// and records the shift (1..16) in the byte immediately before the aligned
// address, so the original pointer can be recovered later. A base that is
// already aligned is shifted by the full 16 bytes, never 0, so the recovery
// byte always exists and is non-zero.
//
// The caller must have allocated at least AlignedSize(size)+Alignment bytes
// at base for the shifted block to fit.
func AdjustPointerAlignment(base unsafe.Pointer) unsafe.Pointer {
	shift := Alignment - uintptr(base)&(Alignment-1)
	aligned := unsafe.Add(base, shift)
	*(*byte)(unsafe.Add(aligned, -1)) = byte(shift)
	return aligned
}

// ExtractUnalignedPointer reads the recovery byte written by
// AdjustPointerAlignment and returns the original base pointer.
func ExtractUnalignedPointer(aligned unsafe.Pointer) unsafe.Pointer {
	shift := *(*byte)(unsafe.Add(aligned, -1))
	return unsafe.Add(aligned, -int(shift))
}
