package notification

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkTokens(t *testing.T) {
	tokens := make([]string, 0, 1201)
	for i := range 1201 {
		tokens = append(tokens, fmt.Sprintf("token-%d", i))
	}

	chunks := chunkTokens(tokens, maxMulticastTokens)

	assert.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 500)
	assert.Len(t, chunks[1], 500)
	assert.Len(t, chunks[2], 201)
	assert.Equal(t, "token-1200", chunks[2][200])

	assert.Empty(t, chunkTokens(nil, maxMulticastTokens))
}
