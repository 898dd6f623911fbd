package alike

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"regexp"
	"runtime"
	"sort"
	"strconv"
	"strings"
)

// HighlightKind is the display category a highlight span tags its text
// range with. The renderer emits a subset of the palette; EXCEPTION is
// produced by the fixture layer for recovered panics and DOM is reserved.
type HighlightKind int

// The highlight palette.
const (
	HighlightArray HighlightKind = iota
	HighlightBoolNum
	HighlightDOM
	HighlightError
	HighlightException
	HighlightFunction
	HighlightNullish
	HighlightObject
	HighlightRegexp
	HighlightString
	HighlightSymbol
)

var highlightKindNames = [...]string{
	"ARRAY", "BOOLNUM", "DOM", "ERROR", "EXCEPTION",
	"FUNCTION", "NULLISH", "OBJECT", "REGEXP", "STRING", "SYMBOL",
}

// String returns the canonical uppercase tag of the kind.
func (k HighlightKind) String() string {
	if k < 0 || int(k) >= len(highlightKindNames) {
		return "UNKNOWN"
	}
	return highlightKindNames[k]
}

// Highlight tags the byte range [Start, Stop) of a rendered text with a
// display category. A well-formed render produces highlights that stay in
// bounds, do not overlap, and appear in ascending Start order.
type Highlight struct {
	Kind  HighlightKind
	Start int
	Stop  int
}

// Renderable is the result of rendering a value: the full display text
// and the ordered highlight spans over it. Renderables are immutable
// after construction.
type Renderable struct {
	highlights []Highlight
	text       string
}

// MaxRenderDepth is the renderer's recursion budget, mirroring the
// comparator's default. Composites beyond the budget render as [...] or
// {...} with no highlights.
const MaxRenderDepth = 99

// maxRenderText caps the rendered text length.
const maxRenderText = 65535

// NewRenderable builds a Renderable from pre-computed parts. Highlights
// that fall outside the text are dropped; the text is clamped to the
// maximum render length. Most callers want RenderableFrom instead.
func NewRenderable(text string, highlights ...Highlight) Renderable {
	if len(text) > maxRenderText {
		text = text[:maxRenderText]
	}
	kept := make([]Highlight, 0, len(highlights))
	for _, h := range highlights {
		if h.Start >= 0 && h.Start < h.Stop && h.Stop <= len(text) {
			kept = append(kept, h)
		}
	}
	return Renderable{highlights: kept, text: text}
}

// Text returns the rendered display string.
func (r Renderable) Text() string { return r.text }

// Highlights returns a copy of the highlight spans in ascending Start
// order.
func (r Renderable) Highlights() []Highlight {
	out := make([]Highlight, len(r.highlights))
	copy(out, r.highlights)
	return out
}

// RenderableFrom converts any value into its display text plus highlight
// spans. The conversion is deterministic and side-effect-free: map keys
// are rendered in sorted order and the same value always produces the
// same Renderable.
func RenderableFrom(value any) Renderable {
	highlights, text := renderFrom(value, 0, MaxRenderDepth)
	return NewRenderable(text, highlights...)
}

// renderFrom renders one value. start is the absolute byte position the
// value's own text begins at within the final composed text, so every
// returned highlight carries absolute offsets.
func renderFrom(value any, start, depth int) ([]Highlight, string) {
	kind, rv := classify(value)

	switch kind {
	case KindNull:
		return leaf(HighlightNullish, "null", start)
	case KindBigInt:
		return leaf(HighlightBoolNum, value.(*big.Int).String()+"n", start)
	case KindNumber:
		return leaf(HighlightBoolNum, numberToken(rv), start)
	case KindBool:
		return leaf(HighlightBoolNum, strconv.FormatBool(rv.Bool()), start)
	case KindUndefined:
		return leaf(HighlightNullish, "undefined", start)
	case KindSymbol:
		return leaf(HighlightSymbol, value.(*Symbol).String(), start)
	case KindString:
		return leaf(HighlightString, stringToken(rv.String()), start)
	case KindFunc:
		return leaf(HighlightFunction, funcToken(rv), start)
	case KindArray:
		return renderArray(rv, start, depth)
	case KindRegexp:
		return leaf(HighlightRegexp, "/"+value.(*regexp.Regexp).String()+"/", start)
	case KindError:
		msg := rv.Interface().(error).Error()
		return leaf(HighlightError, `error(`+escapeString(msg)+`)`, start)
	default:
		return renderObject(rv, start, depth)
	}
}

func leaf(kind HighlightKind, text string, start int) ([]Highlight, string) {
	return []Highlight{{Kind: kind, Start: start, Stop: start + len(text)}}, text
}

// numberToken formats a number the canonical way: NaN, Infinity and
// -Infinity as literal tokens, negative zero as 0, integral values
// without a decimal point, everything else in Go's shortest round-trip
// form.
func numberToken(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		switch {
		case math.IsNaN(f):
			return "NaN"
		case math.IsInf(f, 1):
			return "Infinity"
		case math.IsInf(f, -1):
			return "-Infinity"
		case f == 0:
			return "0"
		case f == math.Trunc(f) && math.Abs(f) < 1e21:
			return strconv.FormatFloat(f, 'f', -1, 64)
		default:
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	default:
		return strconv.FormatInt(rv.Int(), 10)
	}
}

// stringToken quotes a string for display. Strings that contain a double
// quote but no single quote are wrapped in single quotes verbatim, so
// embedded double quotes stay readable without escaping; everything else
// is escaped JSON-style.
func stringToken(s string) string {
	if strings.Contains(s, `"`) && !strings.ContainsRune(s, '\'') {
		return "'" + s + "'"
	}
	return escapeString(s)
}

// escapeString wraps s in double quotes, escaping backslashes and double
// quotes.
func escapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteByte(s[i])
		}
	}
	b.WriteByte('"')
	return b.String()
}

// funcToken renders a func value as name(<param types>). Go has no
// runtime source text for functions, so the parameter list comes from the
// function's type signature and anonymous functions render as <anon>.
func funcToken(rv reflect.Value) string {
	name := "<anon>"
	if fn := runtime.FuncForPC(rv.Pointer()); fn != nil {
		full := fn.Name()
		if i := strings.LastIndexByte(full, '/'); i >= 0 {
			full = full[i+1:]
		}
		if i := strings.IndexByte(full, '.'); i >= 0 {
			full = full[i+1:]
		}
		if full != "" {
			name = full
		}
	}

	t := rv.Type()
	params := make([]string, t.NumIn())
	for i := range params {
		params[i] = t.In(i).String()
	}
	return name + "(" + strings.Join(params, ", ") + ")"
}

func renderArray(rv reflect.Value, start, depth int) ([]Highlight, string) {
	if depth <= 0 {
		return nil, "[...]"
	}
	n := rv.Len()
	if n == 0 {
		return nil, "[]"
	}

	var b strings.Builder
	var highlights []Highlight
	b.WriteString("[ ")
	pos := start + 2
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
			pos += 2
		}
		hs, text := renderFrom(rv.Index(i).Interface(), pos, depth-1)
		highlights = append(highlights, hs...)
		b.WriteString(text)
		pos += len(text)
	}
	b.WriteString(" ]")
	return highlights, b.String()
}

func renderObject(rv reflect.Value, start, depth int) ([]Highlight, string) {
	if depth <= 0 {
		return nil, "{...}"
	}

	type entry struct {
		key   string
		value any
	}
	var entries []entry

	switch rv.Kind() {
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			entries = append(entries, entry{
				key:   mapKeyToken(iter.Key()),
				value: iter.Value().Interface(),
			})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			entries = append(entries, entry{key: t.Field(i).Name, value: rv.Field(i).Interface()})
		}
	default:
		// No structural rendering for the remaining kinds.
		text := fmt.Sprintf("<%s>", rv.Type())
		return []Highlight{{Kind: HighlightObject, Start: start, Stop: start + len(text)}}, text
	}

	if len(entries) == 0 {
		return nil, "{}"
	}

	var b strings.Builder
	var highlights []Highlight
	b.WriteString("{ ")
	pos := start + 2
	for i, e := range entries {
		if i > 0 {
			b.WriteString(", ")
			pos += 2
		}
		b.WriteString(e.key)
		b.WriteByte(':')
		pos += len(e.key) + 1
		hs, text := renderFrom(e.value, pos, depth-1)
		highlights = append(highlights, hs...)
		b.WriteString(text)
		pos += len(text)
	}
	b.WriteString(" }")
	return highlights, b.String()
}

func mapKeyToken(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}
