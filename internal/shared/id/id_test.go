package id

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateString(t *testing.T) {
	g := NewGenerator()

	first := g.GenerateString()
	second := g.GenerateString()

	assert.Len(t, first, 26)
	assert.NotEqual(t, first, second)
	assert.True(t, IsValid(first))
}

func TestGenerateWithPrefix(t *testing.T) {
	g := NewGenerator()

	id := g.GenerateWithPrefix("req")
	assert.True(t, strings.HasPrefix(id, "req_"))
	assert.True(t, IsValid(strings.TrimPrefix(id, "req_")))
}

func TestTypedIDs(t *testing.T) {
	req := NewRequestID()
	trace := NewTraceID()

	assert.True(t, strings.HasPrefix(req.String(), RequestPrefix+"_"))
	assert.True(t, strings.HasPrefix(trace.String(), TracePrefix+"_"))
}

func TestSortability(t *testing.T) {
	g := NewGenerator()

	first := g.GenerateString()
	time.Sleep(2 * time.Millisecond)
	second := g.GenerateString()

	// ULIDs sort by creation time.
	assert.True(t, first < second)
}

func TestTimestamp(t *testing.T) {
	g := NewGenerator()
	before := time.Now().Add(-time.Second)

	id := g.GenerateString()
	ts, err := Timestamp(id)
	require.NoError(t, err)

	assert.True(t, ts.After(before))
	assert.True(t, ts.Before(time.Now().Add(time.Second)))
}

func TestIsValidRejectsGarbage(t *testing.T) {
	assert.False(t, IsValid("not-a-ulid"))
	assert.False(t, IsValid(""))
}
