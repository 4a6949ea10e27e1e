package wire

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hupe1980/lexfeat/codec"
)

// Entry is one key/value pair of a Response.
type Entry struct {
	Key   string
	Value any
}

// Response is an insertion-ordered JSON object.
// The zero value is an empty response ready to use.
type Response struct {
	entries []Entry
	index   map[string]int
}

// NewResponse returns an empty response with room for sizeHint entries.
func NewResponse(sizeHint int) *Response {
	return &Response{
		entries: make([]Entry, 0, sizeHint),
		index:   make(map[string]int, sizeHint),
	}
}

// Set coerces value and stores it under key. An existing key keeps its
// position and takes the new value.
func (r *Response) Set(key string, value any) error {
	v, err := Coerce(value)
	if err != nil {
		return fmt.Errorf("wire: key %q: %w", key, err)
	}

	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[key]; ok {
		r.entries[i].Value = v
		return nil
	}
	r.index[key] = len(r.entries)
	r.entries = append(r.entries, Entry{Key: key, Value: v})
	return nil
}

// Get returns the coerced value stored under key.
func (r *Response) Get(key string) (any, bool) {
	i, ok := r.index[key]
	if !ok {
		return nil, false
	}
	return r.entries[i].Value, true
}

// Len returns the number of distinct keys.
func (r *Response) Len() int {
	return len(r.entries)
}

// Entries returns the entries in output order. The slice must not be modified.
func (r *Response) Entries() []Entry {
	return r.entries
}

// Encode renders the response as a JSON object with c.
func (r *Response) Encode(c codec.Codec) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range r.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := c.Marshal(e.Key)
		if err != nil {
			return nil, fmt.Errorf("wire: encode key %q: %w", e.Key, err)
		}
		v, err := c.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("wire: encode value of %q: %w", e.Key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler using codec.Default.
func (r *Response) MarshalJSON() ([]byte, error) {
	return r.Encode(codec.Default)
}

// Write renders resp with c and writes it to w followed by a single newline.
// Nothing is written if encoding fails.
func Write(w io.Writer, resp *Response, c codec.Codec) error {
	if c == nil {
		c = codec.Default
	}
	data, err := resp.Encode(c)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("wire: write response: %w", err)
	}
	return nil
}
