package periodic

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Table maps element symbols to records while remembering insertion
// order, so the serialized output keeps the traversal order of the
// source that created the entries.
type Table struct {
	order    []string
	elements map[string]*Element
}

func NewTable() *Table {
	return &Table{
		elements: map[string]*Element{},
	}
}

// Put inserts or replaces the record for symbol. A replaced symbol
// keeps its original position.
func (t *Table) Put(symbol string, e *Element) {
	if _, ok := t.elements[symbol]; !ok {
		t.order = append(t.order, symbol)
	}
	t.elements[symbol] = e
}

func (t *Table) Get(symbol string) (*Element, bool) {
	e, ok := t.elements[symbol]
	return e, ok
}

func (t *Table) Len() int {
	return len(t.order)
}

// Symbols returns the symbols in insertion order.
func (t *Table) Symbols() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

func (t *Table) MarshalJSON() ([]byte, error) {
	buf := bytes.Buffer{}
	buf.WriteByte('{')
	for i, symbol := range t.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(symbol)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(t.elements[symbol])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (t *Table) UnmarshalJSON(data []byte) error {
	t.order = nil
	t.elements = map[string]*Element{}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected a top-level object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		symbol, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected an object key, got %v", tok)
		}
		element := &Element{}
		if err := dec.Decode(element); err != nil {
			return fmt.Errorf("element %q: %w", symbol, err)
		}
		t.Put(symbol, element)
	}

	_, err = dec.Token()
	return err
}
