package almanac

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/rangekit/pkg/types"
)

// Parse reads an almanac:
//   - The first content line is the seeds line: "seeds:" then integers.
//   - Each map starts with a header "<from>-to-<to> map:".
//   - Rule lines under a header hold three integers: dest source length.
//   - Blank lines end a map; lines starting with # are comments.
//
// Input may be UTF-8 (with or without BOM) or UTF-16 with a BOM; CRLF line
// endings are accepted. Maps may be empty. Rule sets are not validated here;
// see Almanac.Stages.
func Parse(r io.Reader) (*Almanac, error) {
	// BOMOverride switches to UTF-16 when a UTF-16 BOM is present and strips
	// a UTF-8 BOM; otherwise input is read as UTF-8.
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	utf8Reader := transform.NewReader(r, decoder)

	scanner := bufio.NewScanner(utf8Reader)
	buf := make([]byte, 0, ScannerInitialBufferSize)
	scanner.Buffer(buf, ScannerMaxLineSize)

	a := &Almanac{}
	var (
		lineNo   int
		haveSeed bool
		current  *Map
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			current = nil
			continue
		}
		if strings.HasPrefix(line, CommentPrefix) {
			continue
		}

		if !haveSeed {
			seeds, err := parseSeeds(line)
			if err != nil {
				return nil, types.Errorf(types.ErrKindFormat, "line %d: %w", lineNo, err)
			}
			a.Seeds = seeds
			haveSeed = true
			continue
		}

		if strings.HasSuffix(line, MapSuffix) {
			from, to, err := parseHeader(line)
			if err != nil {
				return nil, types.Errorf(types.ErrKindFormat, "line %d: %w", lineNo, err)
			}
			a.Maps = append(a.Maps, Map{From: from, To: to, Line: lineNo})
			current = &a.Maps[len(a.Maps)-1]
			continue
		}

		if current == nil {
			return nil, types.Errorf(types.ErrKindFormat, "line %d: rule %q outside of a map", lineNo, line)
		}
		triple, err := parseRule(line)
		if err != nil {
			return nil, types.Errorf(types.ErrKindFormat, "line %d: %s map: %w", lineNo, current.Label(), err)
		}
		current.Triples = append(current.Triples, triple)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning almanac: %w", err)
	}
	if !haveSeed {
		return nil, types.Errorf(types.ErrKindFormat, "missing %q line", SeedsPrefix)
	}

	return a, nil
}

// ParseBytes parses an in-memory almanac.
func ParseBytes(data []byte) (*Almanac, error) {
	return Parse(bytes.NewReader(data))
}

// parseSeeds parses "seeds: 79 14 55 13".
func parseSeeds(line string) ([]int64, error) {
	rest, ok := strings.CutPrefix(line, SeedsPrefix)
	if !ok {
		return nil, fmt.Errorf("expected %q, got %q", SeedsPrefix, line)
	}
	fields := strings.Fields(rest)
	seeds := make([]int64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("seed %q: %w", f, err)
		}
		seeds = append(seeds, v)
	}
	return seeds, nil
}

// parseHeader parses "seed-to-soil map:" into ("seed", "soil").
func parseHeader(line string) (from, to string, err error) {
	name := strings.TrimSpace(strings.TrimSuffix(line, MapSuffix))
	from, to, ok := strings.Cut(name, CategorySeparator)
	if !ok || from == "" || to == "" || strings.ContainsAny(name, " \t") {
		return "", "", fmt.Errorf("bad map header %q", line)
	}
	return from, to, nil
}

// parseRule parses "50 98 2" into {50, 98, 2}.
func parseRule(line string) ([3]int64, error) {
	var triple [3]int64
	fields := strings.Fields(line)
	if len(fields) != RuleFields {
		return triple, fmt.Errorf("expected %d integers, got %d in %q", RuleFields, len(fields), line)
	}
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return triple, fmt.Errorf("rule field %q: %w", f, err)
		}
		triple[i] = v
	}
	return triple, nil
}
