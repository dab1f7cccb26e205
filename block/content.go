package block

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// tokenize flattens one line of content into its string tokens. Strings
// containing whitespace are re-split, nested slices are flattened in order,
// and scalars are formatted the way the simulator expects them. A value that
// yields no tokens stands for a blank line and is dropped by the caller.
func tokenize(v any) Row {
	var out Row
	appendTokens(&out, v)
	return out
}

func appendTokens(out *Row, v any) {
	if v == nil {
		return
	}
	switch x := v.(type) {
	case string:
		*out = append(*out, strings.Fields(x)...)
		return
	case Row:
		for _, s := range x {
			appendTokens(out, s)
		}
		return
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			appendTokens(out, rv.Index(i).Interface())
		}
	default:
		*out = append(*out, formatScalar(v))
	}
}

// formatScalar renders a single non-slice value as one token. Floats keep a
// decimal point even when integral ("0.0", not "0"): some OGS5 readers
// dispatch on the presence of the point.
func formatScalar(v any) string {
	switch x := v.(type) {
	case float64:
		return formatFloat(x)
	case float32:
		return formatFloat(float64(x))
	case string:
		return x
	}
	return fmt.Sprint(v)
}

func formatFloat(x float64) string {
	s := strconv.FormatFloat(x, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") { // exponent, NaN or Inf already marked
		s += ".0"
	}
	return s
}

// contentRows splits a content value into lines: a scalar or a flat slice is
// a single row, while a slice containing further slices contributes one row
// per element.
func contentRows(v any) []Row {
	if v == nil {
		return nil
	}
	switch x := v.(type) {
	case string:
		return []Row{tokenize(x)}
	case Row:
		return []Row{tokenize(x)}
	case []Row:
		out := make([]Row, 0, len(x))
		for _, r := range x {
			out = append(out, tokenize(r))
		}
		return out
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []Row{tokenize(v)}
	}
	// a nested slice means each element is its own line
	nested := false
	for i := 0; i < rv.Len(); i++ {
		el := rv.Index(i)
		for el.Kind() == reflect.Interface {
			el = el.Elem()
		}
		if el.Kind() == reflect.Slice || el.Kind() == reflect.Array {
			nested = true
			break
		}
	}
	if !nested {
		return []Row{tokenize(v)}
	}
	out := make([]Row, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out = append(out, tokenize(rv.Index(i).Interface()))
	}
	return out
}
