// Package hexify rewrites 0b binary integer literals in a source file to
// their hexadecimal equivalents. One-shot offline utility; it has no
// relationship to the gateway runtime.
package hexify

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
)

var binaryLiteral = regexp.MustCompile(`0b[01]+`)

// Convert replaces every 0b literal in content with its 0x form and
// reports how many literals were rewritten. 0b1010 becomes 0xa.
func Convert(content []byte) ([]byte, int) {
	n := 0
	out := binaryLiteral.ReplaceAllFunc(content, func(m []byte) []byte {
		v, err := strconv.ParseUint(string(m[2:]), 2, 64)
		if err != nil {
			// longer than 64 bits; leave the literal alone
			return m
		}
		n++
		return []byte(fmt.Sprintf("%#x", v))
	})
	return out, n
}

// RewriteFile converts path in place, preserving its permissions.
func RewriteFile(path string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	out, n := Convert(content)
	if n == 0 {
		return 0, nil
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return n, nil
}
