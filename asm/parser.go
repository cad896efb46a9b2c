// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package asm

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/vm"
)

const maxErrors = 10

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type token struct {
	pos scanner.Position
	s   string
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

type parser struct {
	img    vm.Image
	pc     int
	end    int
	toks   []token
	next   int
	labels map[string]*label
	consts map[string]labelSite
	errs   ErrAsm
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]labelSite)
	return p
}

func (p *parser) error(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, Error{pos, msg})
	}
}

func (p *parser) write(v vm.Cell) {
	if p.pc >= len(p.img) {
		p.img = append(p.img, make(vm.Image, p.pc+1-len(p.img))...)
	}
	p.img[p.pc] = v
	p.pc++
	if p.pc > p.end {
		p.end = p.pc
	}
}

// scan splits the input into white space separated tokens and drops comments.
func (p *parser) scan(name string, r io.Reader) {
	var s scanner.Scanner
	s.Init(r)
	s.Error = func(s *scanner.Scanner, msg string) {
		pos := s.Position
		if !pos.IsValid() {
			pos = s.Pos()
		}
		p.error(pos, msg)
	}
	s.IsIdentRune = isIdentRune
	s.Mode = scanner.ScanIdents
	s.Filename = name

	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		if tok != scanner.Ident {
			p.error(s.Position, "unexpected character "+strconv.QuoteRune(tok))
			continue
		}
		t := s.TokenText()
		if t == "(" {
			// skip comments
			for tok = s.Scan(); tok != scanner.EOF && (tok != scanner.Ident || s.TokenText() != ")"); tok = s.Scan() {
			}
			if tok == scanner.EOF {
				break
			}
			continue
		}
		p.toks = append(p.toks, token{s.Position, t})
	}
}

func (p *parser) token() (token, bool) {
	if p.next >= len(p.toks) {
		return token{}, false
	}
	t := p.toks[p.next]
	p.next++
	return t, true
}

// value converts s to a number. s can be an integer literal, a character
// literal or a constant.
func (p *parser) value(s string) (vm.Cell, bool) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return vm.Cell(n), true
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err == nil && tail == "" {
			return vm.Cell(r), true
		}
	}
	if c, ok := p.consts[s]; ok {
		return vm.Cell(c.address), true
	}
	return 0, false
}

func isLabelName(s string) bool {
	if s == "" {
		return false
	}
	switch s[0] {
	case ':', '.', '#', '\'':
		return false
	}
	return true
}

// cell compiles an integer, constant or label reference at the current
// address.
func (p *parser) cell(t token, s string) {
	if v, ok := p.value(s); ok {
		p.write(v)
		return
	}
	if !isLabelName(s) {
		p.error(t.pos, "invalid value or label name "+t.s)
		p.write(0)
		return
	}
	lbl := p.labels[s]
	if lbl == nil {
		lbl = &label{labelSite{t.pos, -1}, nil}
		p.labels[s] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{t.pos, p.pc})
	p.write(0)
}

func isOperand(s string) bool {
	if _, ok := opcodeIndex[s]; ok {
		return false
	}
	return s != "" && s[0] != ':' && s[0] != '.'
}

func (p *parser) instruction(t token, op vm.Opcode) {
	n := op.Arity()
	ops := make([]token, 0, n)
	word := vm.Cell(op)
	mul := vm.Cell(100)
	for k := 0; k < n; k++ {
		a, ok := p.token()
		if !ok || !isOperand(a.s) {
			if ok {
				p.next--
			}
			p.error(t.pos, fmt.Sprintf("%s: expected %d operands, got %d", t.s, n, k))
			return
		}
		if a.s[0] == '#' {
			word += mul
		}
		mul *= 10
		ops = append(ops, a)
	}
	p.write(word)
	for _, a := range ops {
		s := a.s
		if s[0] == '#' {
			s = s[1:]
		}
		p.cell(a, s)
	}
}

func (p *parser) directive(t token) {
	switch t.s {
	case ".org":
		a, ok := p.token()
		if !ok {
			p.error(t.pos, ".org: missing address")
			return
		}
		v, ok := p.value(a.s)
		if !ok || v < 0 {
			p.error(a.pos, ".org: invalid address "+a.s)
			return
		}
		p.pc = int(v)
	case ".dat":
		a, ok := p.token()
		if !ok || !isOperand(a.s) || a.s[0] == '#' {
			p.error(t.pos, ".dat: missing value")
			if ok {
				p.next--
			}
			return
		}
		p.cell(a, a.s)
	case ".equ":
		n, ok := p.token()
		if !ok {
			p.error(t.pos, ".equ: missing name")
			return
		}
		if !isLabelName(n.s) {
			p.error(n.pos, ".equ: invalid name "+n.s)
			return
		}
		if l, ok := p.labels[n.s]; ok {
			p.error(n.pos, ".equ: redefinition of "+n.s+", previously defined/used as a label here: "+l.pos.String())
			return
		}
		a, ok := p.token()
		if !ok {
			p.error(n.pos, ".equ: missing value")
			return
		}
		v, ok := p.value(a.s)
		if !ok {
			p.error(a.pos, ".equ: invalid value "+a.s)
			return
		}
		p.consts[n.s] = labelSite{n.pos, int(v)}
	default:
		p.error(t.pos, "unknown directive "+t.s)
	}
}

func (p *parser) defineLabel(t token) {
	n := t.s[1:]
	if !isLabelName(n) {
		p.error(t.pos, "invalid label name "+t.s)
		return
	}
	if cst, ok := p.consts[n]; ok {
		p.error(t.pos, "label redefinition: "+n+", previously defined as a constant here: "+cst.pos.String())
		return
	}
	if l, ok := p.labels[n]; ok {
		if l.address != -1 {
			p.error(t.pos, "label redefinition: "+n+", previous definition here: "+l.pos.String())
			return
		}
		l.address = p.pc
		l.pos = t.pos
		return
	}
	p.labels[n] = &label{labelSite{t.pos, p.pc}, nil}
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) (vm.Image, error) {
	p.scan(name, r)
	for len(p.errs) < maxErrors {
		t, ok := p.token()
		if !ok {
			break
		}
		switch t.s[0] {
		case ':':
			p.defineLabel(t)
		case '.':
			p.directive(t)
		default:
			if op, ok := opcodeIndex[t.s]; ok {
				p.instruction(t, op)
				break
			}
			// raw data
			if t.s[0] == '#' {
				p.error(t.pos, "unexpected operand "+t.s)
				break
			}
			p.cell(t, t.s)
		}
	}

	// resolve labels, in source order so that errors are reported in order
	names := make([]string, 0, len(p.labels))
	for n := range p.labels {
		names = append(names, n)
	}
	sort.Slice(names, func(a, b int) bool {
		return p.labels[names[a]].pos.Offset < p.labels[names[b]].pos.Offset
	})
	for _, n := range names {
		l := p.labels[n]
		if l.address == -1 {
			p.error(l.uses[0].pos, "undefined label "+n)
			continue
		}
		for _, u := range l.uses {
			p.img[u.address] = vm.Cell(l.address)
		}
	}

	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return p.img[:p.end], nil
}
