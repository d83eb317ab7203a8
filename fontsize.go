package docfrag

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// namedFontSizes maps the standard Chinese type-size names to point values.
// The table is fixed at build time and never mutated, so it is safe for
// concurrent reads.
var namedFontSizes = map[string]float64{
	"初号": 42,
	"小初": 36,
	"一号": 26,
	"小一": 24,
	"二号": 22,
	"小二": 18,
	"三号": 16,
	"小三": 15,
	"四号": 14,
	"小四": 12,
	"五号": 10.5,
	"小五": 9,
	"六号": 7.5,
	"小六": 6.5,
	"七号": 5.5,
	"八号": 5,
}

// NamedFontSizes returns the recognized type-size names in sorted order.
func NamedFontSizes() []string {
	names := make([]string, 0, len(namedFontSizes))
	for name := range namedFontSizes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveFontSize resolves a font-size specifier to a value in points.  The
// specifier is classified in priority order: a numeric value is used as-is, a
// string that parses as a number is parsed, and any other string is looked up
// in the type-size name table.  An unrecognized name returns an
// InvalidArgumentError enumerating the valid names; a value that is neither
// numeric nor a string returns a TypeMismatchError.
func ResolveFontSize(size interface{}) (float64, error) {
	if pt, ok := asFloat(size); ok {
		return pt, nil
	}
	s, ok := size.(string)
	if !ok {
		return 0, NewTypeMismatchError("fontSize", size)
	}
	s = strings.TrimSpace(s)
	if pt, err := strconv.ParseFloat(s, 64); err == nil {
		return pt, nil
	}
	pt, ok := namedFontSizes[s]
	if !ok {
		return 0, NewInvalidArgumentError("fontSize",
			fmt.Sprintf("unknown size name %q, valid names are: %s", s, strings.Join(NamedFontSizes(), ", ")))
	}
	return pt, nil
}

// ResolveFontSizes resolves each specifier in turn, returning one point value
// per input in input order.  The first failing specifier aborts the whole
// resolution.
func ResolveFontSizes(sizes ...interface{}) ([]float64, error) {
	pts := make([]float64, len(sizes))
	for i, s := range sizes {
		pt, err := ResolveFontSize(s)
		if err != nil {
			return nil, err
		}
		pts[i] = pt
	}
	return pts, nil
}
