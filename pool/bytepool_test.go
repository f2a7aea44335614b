// File: pool/bytepool_test.go
// Author: momentics <momentics@gmail.com>

package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytePoolHandsOutRequestedSize(t *testing.T) {
	p := NewBytePool(1024)
	buf := p.GetBuffer()
	require.Len(t, buf, 1024)
	p.PutBuffer(buf)
}

func TestBytePoolRestoresLengthOnReuse(t *testing.T) {
	p := NewBytePool(64)
	buf := p.GetBuffer()
	p.PutBuffer(buf[:3])

	again := p.GetBuffer()
	require.Len(t, again, 64)
}

func TestBytePoolDropsForeignBuffers(t *testing.T) {
	p := NewBytePool(64)
	p.PutBuffer(make([]byte, 16))
	require.Len(t, p.GetBuffer(), 64)
}
