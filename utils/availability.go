package utils

import "strings"

// Weekday availability masks are 7-character '0'/'1' strings, Monday first
// (position 1 = Monday ... position 7 = Sunday).
const maskWidth = 7

// EncodeDays converts a set of weekday numbers (1=Monday..7=Sunday) into a
// 7-character availability mask. Values outside [1,7] are silently ignored.
func EncodeDays(days []int) string {
	mask := []byte("0000000")
	for _, d := range days {
		if d < 1 || d > maskWidth {
			continue
		}
		mask[d-1] = '1'
	}
	return string(mask)
}

// DecodeDays converts an availability mask back into the ascending list of
// weekday numbers whose position is set.
//
// Masks that round-tripped through a numeric column lose their leading
// zeros ("0000001" becomes "1"), so anything shorter than 7 characters is
// left-padded with zeros before decoding.
func DecodeDays(mask string) []int {
	mask = NormalizeMask(mask)
	days := make([]int, 0, maskWidth)
	for i := 0; i < maskWidth; i++ {
		if mask[i] == '1' {
			days = append(days, i+1)
		}
	}
	return days
}

// NormalizeMask zero-pads a mask to the full 7-character width. Masks longer
// than 7 characters keep their leftmost 7.
func NormalizeMask(mask string) string {
	if len(mask) < maskWidth {
		return strings.Repeat("0", maskWidth-len(mask)) + mask
	}
	return mask[:maskWidth]
}
