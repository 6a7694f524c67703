package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spreadsheet-tools/lookup-automator/internal/table"
)

func TestSessionStoreCreateAndGet(t *testing.T) {
	st := NewSessionStore(time.Minute)
	sess := st.Create(table.New("a"), table.New("b"), "base.csv", "lookup.csv")
	require.NotEmpty(t, sess.ID)

	got, ok := st.Get(sess.ID)
	require.True(t, ok)
	assert.Equal(t, "base.csv", got.BaseName)
	assert.Nil(t, got.Result())

	_, ok = st.Get("unknown")
	assert.False(t, ok)
}

func TestSessionStoreExpiry(t *testing.T) {
	st := NewSessionStore(time.Nanosecond)
	sess := st.Create(table.New("a"), table.New("b"), "base.csv", "lookup.csv")

	time.Sleep(time.Millisecond)
	_, ok := st.Get(sess.ID)
	assert.False(t, ok)

	// Expired entries are also swept on the next create.
	st.Create(table.New("a"), table.New("b"), "x.csv", "y.csv")
	assert.Equal(t, 1, st.Len())
}

func TestSessionStoreZeroTTLNeverExpires(t *testing.T) {
	st := NewSessionStore(0)
	sess := st.Create(table.New("a"), table.New("b"), "base.csv", "lookup.csv")
	_, ok := st.Get(sess.ID)
	assert.True(t, ok)
}
