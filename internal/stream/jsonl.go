package stream

import (
	"bufio"
	"encoding/json"
	"io"
)

// EncoderFunc converts a value of type T to JSON bytes.
type EncoderFunc[T any] func(T) ([]byte, error)

// Emitter writes records of type T somewhere downstream.
type Emitter[T any] interface {
	Emit(records []T) error
}

// JSONLEmitter writes one JSON object per line (JSONL) to a writer.
type JSONLEmitter[T any] struct {
	w      io.Writer
	encode EncoderFunc[T]
}

// NewJSONLEmitter creates a JSONLEmitter over w. If encode is nil, it
// falls back to json.Marshal.
func NewJSONLEmitter[T any](w io.Writer, encode EncoderFunc[T]) *JSONLEmitter[T] {
	if encode == nil {
		encode = func(v T) ([]byte, error) { return json.Marshal(v) }
	}
	return &JSONLEmitter[T]{w: w, encode: encode}
}

// Emit writes a slice of records, one line each.
func (je *JSONLEmitter[T]) Emit(records []T) error {
	bw := bufio.NewWriter(je.w)
	for _, rec := range records {
		b, err := je.encode(rec)
		if err != nil {
			return err
		}
		if _, err := bw.Write(b); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
