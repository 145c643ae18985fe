// SPDX-License-Identifier: MIT

package selection

const (
	// Selected marks a kept interval in a mask.
	Selected byte = 0xFF
	// NotSelected marks a dropped interval in a mask.
	NotSelected byte = 0
)

// EncodeMask returns a fresh mask of length n with Selected at every index.
func EncodeMask(indices []int, n int) []byte {
	mask := make([]byte, n)
	WriteMask(mask, indices)

	return mask
}

// WriteMask clears dst and sets Selected at every index. Indices outside
// dst are ignored.
func WriteMask(dst []byte, indices []int) {
	for i := range dst {
		dst[i] = NotSelected
	}
	for _, i := range indices {
		if i >= 0 && i < len(dst) {
			dst[i] = Selected
		}
	}
}

// DecodeMask returns the ascending positions whose byte is non-zero.
func DecodeMask(mask []byte) []int {
	out := make([]int, 0, len(mask))
	for i, b := range mask {
		if b != NotSelected {
			out = append(out, i)
		}
	}

	return out
}
