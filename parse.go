package cargs

import "fmt"

// Parse interprets the raw token vector left to right against the registered
// declarations and returns the finished value mapping. Every token is first
// tried against the option patterns in registration order, the first match
// wins, unmatched tokens fill positional slots in registration order. Each
// call scans with a fresh state, a Parser can be reused freely.
func (p *Parser) Parse(tokens []string) (*Result, error) {
	values := make(map[string]interface{}, len(p.opts)+len(p.poss))
	for _, o := range p.opts {
		values[o.key] = cloneSeed(o.seed)
	}
	for _, ps := range p.poss {
		values[ps.key] = cloneSeed(ps.seed)
	}
	cursor := 0
	counts := make([]int, len(p.poss))
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		o, match := p.match(token)
		if o == nil {
			// No option claimed the token, it fills the current positional slot.
			if cursor >= len(p.poss) {
				return nil, fmt.Errorf("token %q claims no declaration, %w", token, ErrTooManyPositionals)
			}
			ps := p.poss[cursor]
			if ps.arity.Plural() {
				values[ps.key] = append(values[ps.key].([]string), token)
				counts[cursor]++
				if ps.arity.Closed(counts[cursor]) {
					cursor++
				}
			} else {
				values[ps.key] = token
				cursor++
			}
			continue
		}
		var value interface{}
		switch o.capture.kind {
		case captureSwitch:
			value = true
		case captureNext:
			if i == len(tokens)-1 {
				return nil, fmt.Errorf("no value given for %q option, %w", o.key, ErrMissingValue)
			}
			i++
			value = tokens[i]
		case captureGroup:
			value = match[o.capture.group]
		}
		if o.arity.Plural() {
			values[o.key] = append(values[o.key].([]string), value.(string))
		} else {
			values[o.key] = value
		}
	}
	for i, ps := range p.poss {
		if counts[i] < ps.arity.Min() {
			return nil, fmt.Errorf(
				"positional %q requires %d value(s), got %d, %w",
				ps.key,
				ps.arity.Min(),
				counts[i],
				ErrMissingRequiredPositional,
			)
		}
	}
	return &Result{values: values}, nil
}

func (p *Parser) match(token string) (*option, []string) {
	for i := range p.opts {
		o := &p.opts[i]
		if m := o.pattern.FindStringSubmatch(token); m != nil {
			return o, m
		}
	}
	return nil, nil
}

func cloneSeed(seed interface{}) interface{} {
	seq, ok := seed.([]string)
	if !ok {
		return seed
	}
	clone := make([]string, len(seq))
	copy(clone, seq)
	return clone
}
