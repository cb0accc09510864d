/*
Some code in this file was copied from the go "flag" package source and
modified. That code's license is retained here:

Copyright (c) 2009 The Go Authors. All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are
met:

   * Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.
   * Redistributions in binary form must reproduce the above
copyright notice, this list of conditions and the following disclaimer
in the documentation and/or other materials provided with the
distribution.
   * Neither the name of Google Inc. nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

package argbind

import (
	"fmt"
	"strings"
)

// Backend parses an argument sequence against built option specs. Both
// backends satisfy the same contract: Values holds only options that were
// actually supplied, keyed by display name, and Extra holds the tokens the
// parser did not consume, in their original relative order. The binder
// hands every backend a private copy of the argument sequence.
//
// Token recognition beyond the declared names is backend-defined: the
// descriptive engine accepts unambiguous abbreviations of a flag name,
// while the plain parser matches declared names exactly and passes
// anything else through to Extra.
type Backend interface {
	Parse(name string, argv []string, opts []Option) (*BackendResult, error)
}

// BackendResult is the raw output of one backend parse.
type BackendResult struct {
	Values map[string]interface{}
	Extra  []string
	Usage  *Usage
}

// PlainBackend parses with an in-package pull parser and produces no usage
// object.
type PlainBackend struct{}

type optState struct {
	opt   Option
	shape optionShape

	set    bool
	scalar interface{}
	raws   []string
	pairs  map[string]string
}

type entry struct {
	state  *optState
	negate bool
}

type plainParser struct {
	lookup      map[string]entry
	args        []string
	extra       []string
	diagnostics []string
}

func (PlainBackend) Parse(name string, argv []string, opts []Option) (*BackendResult, error) {
	states := make([]*optState, 0, len(opts))
	lookup := map[string]entry{}
	for _, opt := range opts {
		st := &optState{opt: opt, shape: opt.shape()}
		states = append(states, st)
		for _, n := range st.shape.names {
			lookup[n] = entry{state: st}
			if st.shape.kind == kindBool {
				for _, neg := range []string{"no" + n, "no-" + n} {
					if _, taken := lookup[neg]; !taken {
						lookup[neg] = entry{state: st, negate: true}
					}
				}
			}
		}
	}

	p := plainParser{
		lookup: lookup,
		args:   argv,
		extra:  []string{},
	}
	p.parse()

	if len(p.diagnostics) > 0 {
		return nil, newParseError(p.diagnostics...)
	}

	values := map[string]interface{}{}
	for _, st := range states {
		if !st.set {
			continue
		}
		switch st.shape.kind {
		case kindList:
			v, err := convertList(st.shape.elem, st.raws)
			if err != nil {
				return nil, newParseError(fmt.Sprintf("flag --%s: %s", st.opt.Name, err))
			}
			values[st.opt.Name] = v
		case kindMap:
			values[st.opt.Name] = st.pairs
		default:
			values[st.opt.Name] = st.scalar
		}
	}

	return &BackendResult{Values: values, Extra: p.extra}, nil
}

func (p *plainParser) parse() {
	for len(p.args) > 0 {
		tok := p.args[0]
		p.args = p.args[1:]

		if tok == "--" {
			p.extra = append(p.extra, p.args...)
			p.args = nil
			return
		}
		if len(tok) < 2 || tok[0] != '-' {
			p.extra = append(p.extra, tok)
			continue
		}

		body := tok[1:]
		if body[0] == '-' {
			body = body[1:]
		}
		if body == "" || body[0] == '-' || body[0] == '=' {
			p.diagnostics = append(p.diagnostics, fmt.Sprintf("bad flag syntax: %s", tok))
			continue
		}

		name := body
		value := ""
		hasValue := false
		if i := strings.IndexByte(body, '='); i > 0 {
			name, value, hasValue = body[:i], body[i+1:], true
		}

		e, known := p.lookup[name]
		if !known {
			// Leftover tokens are preserved, never discarded.
			p.extra = append(p.extra, tok)
			continue
		}

		if diag := p.applyOne(e, name, value, hasValue); diag != "" {
			p.diagnostics = append(p.diagnostics, diag)
		}
	}
}

func (p *plainParser) applyOne(e entry, name string, value string, hasValue bool) string {
	st := e.state

	switch st.shape.kind {
	case kindBool, kindFlag:
		b := true
		if hasValue {
			v, err := convertValue(kindBool, value)
			if err != nil {
				return fmt.Sprintf("flag --%s: %s", name, err)
			}
			b = v.(bool)
		}
		if e.negate {
			b = !b
		}
		st.set = true
		st.scalar = b
		return ""
	}

	// It must have a value, which might be the next argument.
	if !hasValue {
		if len(p.args) == 0 {
			return fmt.Sprintf("flag --%s needs an argument", name)
		}
		value, p.args = p.args[0], p.args[1:]
	}

	switch st.shape.kind {
	case kindList:
		st.set = true
		st.raws = append(st.raws, value)
	case kindMap:
		k, v, err := splitPair(value)
		if err != nil {
			return fmt.Sprintf("flag --%s: %s", name, err)
		}
		if st.pairs == nil {
			st.pairs = map[string]string{}
		}
		st.set = true
		st.pairs[k] = v
	default:
		v, err := convertValue(st.shape.kind, value)
		if err != nil {
			return fmt.Sprintf("flag --%s: %s", name, err)
		}
		st.set = true
		st.scalar = v
	}
	return ""
}
