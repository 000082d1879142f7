package output

import (
	"fmt"
	"os"
	"sort"
	"strconv"
)

// NextName scans dir for existing output files, strips each entry's 4-char
// suffix (the extension, e.g. ".png" or ".exr"), sorts the remaining stems
// lexicographically, parses the lexicographically-largest one as an
// integer, and returns it incremented and zero-padded to 3 digits. Returns
// ("", false) if dir contains no entries.
func NextName(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) == 0 {
		return "", false
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if len(name) <= 4 {
			continue
		}
		names = append(names, name[:len(name)-4])
	}
	if len(names) == 0 {
		return "", false
	}
	sort.Strings(names)

	largest := names[len(names)-1]
	n, err := strconv.Atoi(largest)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%03d", n+1), true
}
