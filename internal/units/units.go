package units

import "fmt"

var suffixes = []string{"B", "KB", "MB", "GB"}

// FormatBytes renders a byte count with the largest suffix that brings the
// value to 1024 or below, always with two decimal places. Values past the
// GB range stay in GB rather than indexing past the suffix table.
func FormatBytes(n int64) string {
	v := float64(n)
	i := 0
	for v > 1024 && i < len(suffixes)-1 {
		v /= 1024.0
		i++
	}
	return fmt.Sprintf("%0.2f%s", v, suffixes[i])
}
