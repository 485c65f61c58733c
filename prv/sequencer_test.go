package prv

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/prvkit/internal/hash"
)

func TestSequencer_Next(t *testing.T) {
	s := NewSequencer()

	require.Equal(t, 1, s.Next("123", "45"))
	require.Equal(t, 2, s.Next("123", "45"))
	require.Equal(t, 1, s.Next("999", "1"))
	require.Equal(t, 3, s.Next("123", "45"))
	require.Equal(t, 2, s.Next("999", "1"))

	require.Equal(t, 2, s.Entities())
}

func TestSequencer_DistinctPairsStayIndependent(t *testing.T) {
	s := NewSequencer()

	require.Equal(t, 1, s.Next("12", "345"))
	require.Equal(t, 1, s.Next("123", "45"))
	require.Equal(t, 1, s.Next("1234", "5"))
	require.Equal(t, 3, s.Entities())
}

func TestSequencer_HashCollisionFallback(t *testing.T) {
	s := NewSequencer()

	// Force a collision: claim the pair's hash slot for a different key so
	// the next call has to take the string-keyed path.
	key := hash.EntityKey("123", "45")
	id := hash.ID(key)
	s.keys[id] = "someone-else"
	s.counts[id] = 7

	require.Equal(t, 1, s.Next("123", "45"))
	require.Equal(t, 2, s.Next("123", "45"))
	require.Equal(t, 7, s.counts[id])
	require.Equal(t, 2, s.Entities())
}

func TestSequencer_Reset(t *testing.T) {
	s := NewSequencer()
	s.Next("123", "45")
	s.Next("123", "45")

	s.Reset()
	require.Equal(t, 0, s.Entities())
	require.Equal(t, 1, s.Next("123", "45"))
}
