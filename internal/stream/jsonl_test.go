package stream

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type rec struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestJSONLEmitter_OneLinePerRecord(t *testing.T) {
	var buf bytes.Buffer
	em := NewJSONLEmitter[rec](&buf, nil)

	require.NoError(t, em.Emit([]rec{{"a", 1}, {"b", 2}}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.JSONEq(t, `{"name":"a","count":1}`, lines[0])
	require.JSONEq(t, `{"name":"b","count":2}`, lines[1])
}

func TestJSONLEmitter_EmptySliceWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONLEmitter[rec](&buf, nil).Emit(nil))
	require.Zero(t, buf.Len())
}

func TestJSONLEmitter_CustomEncoder(t *testing.T) {
	var buf bytes.Buffer
	encodeErr := errors.New("boom")
	em := NewJSONLEmitter[rec](&buf, func(rec) ([]byte, error) { return nil, encodeErr })

	require.ErrorIs(t, em.Emit([]rec{{"a", 1}}), encodeErr)
}
