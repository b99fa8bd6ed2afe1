package printer

import "github.com/alecthomas/units"

// FormatBytes returns a human-readable base 2 byte size string.
// Examples: "0B", "512B", "1KiB512B", "1GiB".
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		return "0B"
	}
	return units.Base2Bytes(bytes).String()
}
