package hatch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// HatchPattern is an ordered set of dash families. Families are hatched
// in slice order by [Hatch]; [HatchParallel] makes no ordering guarantee
// across families.
type HatchPattern []Dash

// LoadHatchPattern reads a pattern file: one dash family per line. ';'
// begins an end-of-line comment and everything from it onward is
// discarded, including when it follows real data on the same line.
// Blank lines (after comment stripping) and header lines starting with
// '*' are skipped. Every other line is parsed with [ParseDashLine] and
// scaled by scale. The first malformed line aborts the whole load; the
// returned error wraps the offending error with its 1-based line number.
func LoadHatchPattern(r io.Reader, scale float64) (HatchPattern, error) {
	var pattern HatchPattern
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := stripComment(scanner.Text())
		if line == "" {
			continue
		}
		dash, err := ParseDashLine(line, scale)
		if err != nil {
			return nil, fmt.Errorf("hatch pattern line %d: %w", lineNo, err)
		}
		pattern = append(pattern, dash)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("hatch pattern: %w", err)
	}
	Logger().Info("hatch pattern loaded", "families", len(pattern))
	return pattern, nil
}

// LoadHatchPatternFile opens path and calls [LoadHatchPattern] on it.
func LoadHatchPatternFile(path string, scale float64) (HatchPattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hatch pattern: %w", err)
	}
	defer f.Close()
	return LoadHatchPattern(f, scale)
}

// stripComment truncates line at the first ';' (an end-of-line comment,
// which may follow real data on the same line), then trims leading and
// trailing whitespace, and returns "" for blank or '*'-header lines so the
// caller can skip them with a single equality check.
func stripComment(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "*") {
		return ""
	}
	return trimmed
}
