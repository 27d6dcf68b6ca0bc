package engine

import (
	"strconv"
	"strings"

	"github.com/nparse/nanta/context"
)

// Format renders tmpl against the engine's current trace position using
// the placeholder language of spec §6 ("Trace format placeholder
// language"): %i trace index, %j state index within trace, %label
// integer label, %node node name, %text accepted text, %type state
// type, %list visible-variable dump, %:name or %{:name} a named
// variable's value. Standard escapes \t and \n are honored.
func (e *Engine) Format(tmpl string) string {
	var b strings.Builder
	r := []rune(tmpl)
	for i := 0; i < len(r); i++ {
		c := r[i]
		switch {
		case c == '\\' && i+1 < len(r):
			switch r[i+1] {
			case 't':
				b.WriteRune('\t')
				i++
				continue
			case 'n':
				b.WriteRune('\n')
				i++
				continue
			}
			b.WriteRune(c)
		case c == '%' && i+1 < len(r):
			n, consumed := e.expandPlaceholder(r[i+1:])
			if consumed > 0 {
				b.WriteString(n)
				i += consumed
				continue
			}
			b.WriteRune(c)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// expandPlaceholder matches the longest known placeholder at the start
// of rest (rest excludes the leading '%') and returns its expansion plus
// the number of runes of rest it consumed, or ("", 0) if rest does not
// start with a recognized placeholder.
func (e *Engine) expandPlaceholder(rest []rune) (string, int) {
	named := func(name string, taglen int) (string, int) {
		return e.Get(name).AsString(), taglen
	}

	switch {
	case hasPrefix(rest, "{:"):
		if end := indexRune(rest, '}'); end > 0 {
			name := string(rest[2:end])
			return named(name, end+1)
		}
	case hasPrefix(rest, ":"):
		j := 1
		for j < len(rest) && isNameRune(rest[j]) {
			j++
		}
		if j > 1 {
			name := string(rest[1:j])
			return named(name, j)
		}
	case hasPrefix(rest, "i"):
		idx := 0
		if e.tc != nil {
			idx = e.tc.TraceIndex()
		}
		return strconv.Itoa(idx), 1
	case hasPrefix(rest, "j"):
		pos := 0
		if e.tc != nil {
			pos = e.tc.StepIndex()
		}
		return strconv.Itoa(pos), 1
	case hasPrefix(rest, "label"):
		return strconv.Itoa(e.Label()), len("label")
	case hasPrefix(rest, "node"):
		return e.Node(), len("node")
	case hasPrefix(rest, "text"):
		return e.Text(), len("text")
	case hasPrefix(rest, "type"):
		return strconv.Itoa(e.Type()), len("type")
	case hasPrefix(rest, "list"):
		return e.list(), len("list")
	}
	return "", 0
}

// list renders every binding visible at the current trace state,
// sorted by key, for the %list placeholder.
func (e *Engine) list() string {
	s := e.currentState()
	if s == nil {
		return ""
	}
	var parts []string
	for _, b := range s.Ctx.SortedList(false) {
		parts = append(parts, b.Key+"="+bindingString(b.Value))
	}
	return strings.Join(parts, ",")
}

func bindingString(v context.Value) string { return v.AsString() }

func hasPrefix(r []rune, prefix string) bool {
	return len(r) >= len(prefix) && string(r[:len(prefix)]) == prefix
}

func indexRune(r []rune, target rune) int {
	for i, c := range r {
		if c == target {
			return i
		}
	}
	return -1
}

func isNameRune(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
