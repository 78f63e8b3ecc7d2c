package idgen

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var idPattern = regexp.MustCompile(`^v_\d+_[0-9a-f]{12}$`)

func TestNewID_Format(t *testing.T) {
	id := NewID("v")
	require.Regexp(t, idPattern, id)

	parts := strings.SplitN(id, "_", 3)
	require.Len(t, parts, 3)

	ms, err := strconv.ParseInt(parts[1], 10, 64)
	require.NoError(t, err)
	assert.InDelta(t, time.Now().UnixMilli(), ms, 5000)
}

func TestNewID_UniqueInBurst(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := NewID("t")
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
