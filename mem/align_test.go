package mem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestAlignedSizeProperties(t *testing.T) {
	for n := 0; n <= 1024; n++ {
		a := AlignedSize(n)
		require.GreaterOrEqual(t, a, n, "AlignedSize must not shrink n=%d", n)
		require.Zero(t, a%Alignment, "AlignedSize must be a multiple of 16, n=%d", n)
		require.Less(t, a, n+Alignment, "AlignedSize must not over-pad, n=%d", n)
	}
}

func TestAlignmentRoundTrip(t *testing.T) {
	// One buffer, every possible starting misalignment.
	buf := make([]byte, 3*Alignment)
	for off := 0; off < Alignment; off++ {
		base := unsafe.Pointer(&buf[off])
		aligned := AdjustPointerAlignment(base)

		require.Zero(t, uintptr(aligned)&(Alignment-1),
			"adjusted pointer must be 16-byte aligned, off=%d", off)

		shift := *(*byte)(unsafe.Add(aligned, -1))
		require.GreaterOrEqual(t, int(shift), 1, "recovery byte must be non-zero")
		require.LessOrEqual(t, int(shift), Alignment)

		require.Equal(t, base, ExtractUnalignedPointer(aligned),
			"round trip must recover the original pointer, off=%d", off)
	}
}

func TestAlignmentAlreadyAligned(t *testing.T) {
	buf := make([]byte, 3*Alignment)
	base := unsafe.Pointer(&buf[0])
	// Walk to a 16-byte boundary inside the buffer.
	for uintptr(base)&(Alignment-1) != 0 {
		base = unsafe.Add(base, 1)
	}

	aligned := AdjustPointerAlignment(base)
	// An already-aligned base shifts by the full 16 so the recovery byte
	// always exists.
	require.Equal(t, uintptr(base)+Alignment, uintptr(aligned))
	require.Equal(t, base, ExtractUnalignedPointer(aligned))
}
