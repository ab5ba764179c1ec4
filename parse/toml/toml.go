package toml

// Package toml implements a minimal, forgiving reader for a restricted
// subset of TOML, with an explicit tree and read-only lookup helpers.
//
// Scope:
// - Global key/value pairs
// - Flat table sections ([name])
// - Arrays of tables ([[name]])
// - String / bool / int / float scalars
// - Whole-line comments and blank lines
//
// Non-goals (by design):
// - Dotted or nested tables, inline tables
// - Array literals, multi-line strings, datetimes
// - Inline comments after a value
// - Validation: malformed lines are skipped, never rejected
//
// This implementation is suitable as a configuration ingestion layer for
// embedded or constrained use, where resilience beats strictness.

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// =========================
// Tree Definitions
// =========================

type Kind uint8

const (
	KindScalar Kind = iota
	KindTable
	KindTableArray
)

type Node interface {
	Kind() Kind
}

// -------- Scalar --------

// Scalar holds a string, bool, int64 or float64.
type Scalar struct {
	v any
}

func (*Scalar) Kind() Kind { return KindScalar }

func (s *Scalar) Value() any { return s.v }

// -------- Table --------

// Table is a flat mapping from key to Scalar. Key order follows first
// assignment order.
type Table struct {
	items map[string]*Scalar
	keys  []string
}

func NewTable() *Table {
	return &Table{items: make(map[string]*Scalar)}
}

func (*Table) Kind() Kind { return KindTable }

func (t *Table) assign(key string, v *Scalar) {
	if _, ok := t.items[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.items[key] = v
}

func (t *Table) Lookup(key string) (*Scalar, bool) {
	s, ok := t.items[key]
	return s, ok
}

// Keys returns a copy; the table itself stays read-only.
func (t *Table) Keys() []string { return append([]string(nil), t.keys...) }

func (t *Table) Len() int { return len(t.items) }

// -------- TableArray --------

// TableArray is an ordered sequence of Tables sharing one name, one
// element per [[name]] header in encounter order.
type TableArray struct {
	elems []*Table
}

func (*TableArray) Kind() Kind { return KindTableArray }

func (a *TableArray) Len() int { return len(a.elems) }

func (a *TableArray) At(i int) *Table { return a.elems[i] }

// -------- Document --------

// Document is the root container produced by a parse. It is immutable
// once Parse returns; concurrent lookups need no coordination.
type Document struct {
	items map[string]Node
	keys  []string
}

func NewDocument() *Document {
	return &Document{items: make(map[string]Node)}
}

func (d *Document) bind(key string, n Node) {
	if _, ok := d.items[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.items[key] = n
}

func (d *Document) assign(key string, v *Scalar) { d.bind(key, v) }

func (d *Document) Entry(key string) (Node, bool) {
	n, ok := d.items[key]
	return n, ok
}

// Keys returns a copy; the document itself stays read-only.
func (d *Document) Keys() []string { return append([]string(nil), d.keys...) }

func (d *Document) Len() int { return len(d.items) }

// =========================
// Public API
// =========================

// Parse reads a document from r and returns the root. Malformed lines
// never fail the parse; the only error source is the reader itself.
// Lines have no length limit.
func Parse(r io.Reader) (*Document, error) {
	p := &parser{doc: NewDocument()}
	p.cur = p.doc

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			p.parseLine(strings.TrimSpace(line))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	return p.doc, nil
}

// ParseString parses an in-memory document. A string source cannot fail.
func ParseString(s string) *Document {
	doc, _ := Parse(strings.NewReader(s))
	return doc
}

// =========================
// Parser Implementation
// =========================

// target is whatever mapping currently receives key/value assignments:
// the document root, a table, or the newest element of a table array.
type target interface {
	assign(key string, v *Scalar)
}

type parser struct {
	doc *Document
	cur target
}

func (p *parser) parseLine(line string) {
	switch {
	case line == "" || strings.HasPrefix(line, "#"):
		// blank or whole-line comment
	case strings.HasPrefix(line, "[[") && strings.HasSuffix(line, "]]"):
		p.openTableArray(strings.TrimSpace(line[2 : len(line)-2]))
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		p.openTable(strings.TrimSpace(line[1 : len(line)-1]))
	default:
		p.parseKeyValue(line)
	}
}

// openTableArray appends one fresh element under name and points the
// cursor at it. A non-array entry already bound at name is replaced;
// this is the single overwrite case for structured entries.
func (p *parser) openTableArray(name string) {
	if name == "" {
		p.cur = p.doc
		return
	}
	arr, ok := p.doc.items[name].(*TableArray)
	if !ok {
		arr = &TableArray{}
		p.doc.bind(name, arr)
	}
	t := NewTable()
	arr.elems = append(arr.elems, t)
	p.cur = t
}

// openTable points the cursor at the table bound at name, reusing an
// existing table so a reopened section accumulates into it. Tables are
// always anchored at the root; no dotted paths are resolved.
func (p *parser) openTable(name string) {
	if name == "" {
		p.cur = p.doc
		return
	}
	t, ok := p.doc.items[name].(*Table)
	if !ok {
		t = NewTable()
		p.doc.bind(name, t)
	}
	p.cur = t
}

func (p *parser) parseKeyValue(line string) {
	// Only the first '=' delimits; the value may contain more.
	idx := strings.Index(line, "=")
	if idx < 0 {
		return
	}
	key := strings.TrimSpace(line[:idx])
	if key == "" {
		return
	}
	val := strings.TrimSpace(line[idx+1:])
	p.cur.assign(key, coerce(val))
}

// =========================
// Value Coercion
// =========================

// coerce converts a trimmed value string into a typed scalar. Attempts
// run in order and the first success wins; a string matching nothing is
// kept verbatim.
func coerce(s string) *Scalar {
	if s == "" {
		return &Scalar{v: ""}
	}
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		// one quote pair stripped, interior verbatim, no escapes
		return &Scalar{v: s[1 : len(s)-1]}
	}
	if strings.EqualFold(s, "true") {
		return &Scalar{v: true}
	}
	if strings.EqualFold(s, "false") {
		return &Scalar{v: false}
	}
	num := strings.ReplaceAll(s, "_", "")
	if i, err := strconv.ParseInt(num, 10, 64); err == nil {
		return &Scalar{v: i}
	}
	if f, err := strconv.ParseFloat(num, 64); err == nil {
		return &Scalar{v: f}
	}
	return &Scalar{v: s}
}

// =========================
// Safe Access Helpers
// =========================

// ErrNoSuchSection reports a section lookup whose name is absent or
// bound to a plain scalar.
var ErrNoSuchSection = errors.New("no such section")

// Global returns the scalar bound at key, or def when the key is absent
// or bound to a table or table array.
func (d *Document) Global(key string, def any) any {
	s, ok := d.items[key].(*Scalar)
	if !ok {
		return def
	}
	return s.v
}

// Getter is a bound read-only view over one table.
type Getter struct {
	t *Table
}

// Get returns the value at key, or def when absent. It never fails.
func (g *Getter) Get(key string, def any) any {
	if s, ok := g.t.items[key]; ok {
		return s.v
	}
	return def
}

func (g *Getter) Keys() []string { return g.t.Keys() }

func (g *Getter) GetString(key, def string) string {
	if v, ok := g.t.items[key]; ok {
		if s, ok := v.v.(string); ok {
			return s
		}
	}
	return def
}

func (g *Getter) GetInt(key string, def int64) int64 {
	if v, ok := g.t.items[key]; ok {
		if i, ok := v.v.(int64); ok {
			return i
		}
	}
	return def
}

func (g *Getter) GetFloat(key string, def float64) float64 {
	if v, ok := g.t.items[key]; ok {
		if f, ok := v.v.(float64); ok {
			return f
		}
	}
	return def
}

func (g *Getter) GetBool(key string, def bool) bool {
	if v, ok := g.t.items[key]; ok {
		if b, ok := v.v.(bool); ok {
			return b
		}
	}
	return def
}

// Section is the result of a section lookup: a single table getter, or
// the ordered getters of a table array. Which one is decided by the
// entry's kind at lookup time.
type Section struct {
	one  *Getter
	many []*Getter
}

func (s *Section) IsArray() bool { return s.one == nil }

// Get reads a key from a plain-table section. For an array section it
// returns def; pick an element through Getters instead.
func (s *Section) Get(key string, def any) any {
	if s.one != nil {
		return s.one.Get(key, def)
	}
	return def
}

// Getters returns the section as a slice of bound getters: one element
// for a plain table, all elements in order for a table array.
func (s *Section) Getters() []*Getter {
	if s.one != nil {
		return []*Getter{s.one}
	}
	return s.many
}

func (s *Section) Len() int {
	if s.one != nil {
		return 1
	}
	return len(s.many)
}

// Section looks up name at the root and wraps the table or table array
// found there. Absent names and scalar entries fail with
// ErrNoSuchSection.
func (d *Document) Section(name string) (*Section, error) {
	switch n := d.items[name].(type) {
	case *Table:
		return &Section{one: &Getter{t: n}}, nil
	case *TableArray:
		gs := make([]*Getter, len(n.elems))
		for i, t := range n.elems {
			gs[i] = &Getter{t: t}
		}
		return &Section{many: gs}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrNoSuchSection, name)
	}
}
