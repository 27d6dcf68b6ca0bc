package acceptor

import (
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/nparse/nanta"
	"github.com/nparse/nanta/context"
)

// RegEx matches a single compiled sub-pattern against the residual
// input. A single-pattern lexmachine.Lexer is compiled once at
// construction and re-scanned from the candidate position on every
// Accept call, which gives DFA-driven longest-match semantics instead
// of backtracking regex evaluation. Named capture groups are not
// natively exposed by lexmachine's match object, so RegEx additionally
// compiles one sub-lexer per named group (spec §4.1, "RegEx ... sets
// variables in the spawned State's context").
type RegEx struct {
	pattern  string
	groups   map[string]string
	lexer    *lexmachine.Lexer
	grpLex   map[string]*lexmachine.Lexer
}

// NewRegEx compiles pattern (a lexmachine-syntax regular expression) and
// an optional set of named sub-patterns. Each sub-pattern is matched at
// the start of the overall match only; where it matches there, the
// matched text is set as a string variable in the spawned state's
// context under its group name. Occurrences later in the match are not
// searched.
func NewRegEx(pattern string, groups map[string]string) (*RegEx, error) {
	r := &RegEx{pattern: pattern, groups: groups, grpLex: make(map[string]*lexmachine.Lexer)}
	lx := lexmachine.NewLexer()
	lx.Add([]byte(pattern), tokenAction)
	if err := lx.Compile(); err != nil {
		tracer().Errorf("RegEx: error compiling pattern %q: %v", pattern, err)
		return nil, err
	}
	r.lexer = lx
	for name, sub := range groups {
		glx := lexmachine.NewLexer()
		glx.Add([]byte(sub), tokenAction)
		if err := glx.Compile(); err != nil {
			tracer().Errorf("RegEx: error compiling group %q pattern %q: %v", name, sub, err)
			return nil, err
		}
		r.grpLex[name] = glx
	}
	return r, nil
}

func tokenAction(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return s.Token(0, string(m.Bytes), m), nil
}

func (a *RegEx) Accept(full, accepted nanta.Range, in nanta.Input, s Spectrum) {
	residual := []byte(in.Slice(accepted.Last, full.Last))
	if len(residual) == 0 {
		return
	}
	scanner, err := a.lexer.Scanner(residual)
	if err != nil {
		tracer().Errorf("RegEx: scanner init failed: %v", err)
		return
	}
	tok, err, eof := scanner.Next()
	if eof || err != nil {
		return
	}
	token := tok.(*lexmachine.Token)
	matchedRunes := []rune(string(token.Lexeme))
	to := accepted.Last + len(matchedRunes)

	if len(a.groups) == 0 {
		s.Push(accepted.Last, to)
		return
	}
	spawned := s.Spawn(accepted.Last, to)
	a.setGroupVars(string(token.Lexeme), spawned.Context())
	spawned.Enqueue()
}

func (a *RegEx) setGroupVars(matched string, ctx *context.Context) {
	for name, glx := range a.grpLex {
		gscan, err := glx.Scanner([]byte(matched))
		if err != nil {
			continue
		}
		gtok, gerr, geof := gscan.Next()
		if geof || gerr != nil {
			continue
		}
		gt := gtok.(*lexmachine.Token)
		ctx.Set(name, context.StrValue(string(gt.Lexeme)))
	}
}
