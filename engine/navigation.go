package engine

// Next advances to the next trace (spec §6, "Trace navigation: next").
func (e *Engine) Next() bool {
	if e.tc == nil {
		return false
	}
	return e.tc.Next()
}

// Step advances to the next actual state within the current trace (spec
// §6, "Trace navigation: step").
func (e *Engine) Step() bool {
	if e.tc == nil {
		return false
	}
	return e.tc.Step()
}

// Rewind moves the step cursor back to before the current trace's first
// state (spec §6, "Trace navigation: rewind").
func (e *Engine) Rewind() {
	if e.tc != nil {
		e.tc.Rewind()
	}
}

// ResetTrace rewinds trace enumeration back to before the first trace
// (spec §6, "Trace navigation: reset"). Named ResetTrace to avoid
// colliding with a future whole-engine Reset.
func (e *Engine) ResetTrace() {
	if e.tc != nil {
		e.tc.Reset()
	}
}

// Label returns the current state's integer tag (spec §6, "label").
func (e *Engine) Label() int {
	s := e.currentState()
	if s == nil || s.ProducedBy == nil {
		return 0
	}
	return s.ProducedBy.Label.Tag
}

// Node returns the current state's target node name (spec §6, "node").
func (e *Engine) Node() string {
	s := e.currentState()
	if s == nil || s.Node == nil {
		return ""
	}
	return s.Node.Name
}

// Text returns the accepted sub-range's text (spec §6, "text").
func (e *Engine) Text() string {
	s := e.currentState()
	if s == nil || e.input == nil {
		return ""
	}
	return e.input.Slice(s.Range.First, s.Range.Last)
}

// Type returns the current state's tracer.StateType (spec §4.7, "type()").
func (e *Engine) Type() int {
	if e.tc == nil {
		return 0
	}
	return int(e.tc.Type())
}

// Shift returns the closing-parenthesis count since the last actual
// state (spec §6, "shift").
func (e *Engine) Shift() int {
	if e.tc == nil {
		return 0
	}
	return e.tc.Shift()
}
