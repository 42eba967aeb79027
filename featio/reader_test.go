// SPDX-License-Identifier: EPL-2.0

package featio

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinesh-batta/AaltoASR/feature"
)

func TestRawReader_ReadsEncodedStream(t *testing.T) {
	t.Parallel()

	frames := []feature.Vec{
		{1, -2.5, 0.25},
		{0, 0, 0},
		{-1e3, 7.5, 1.0 / 3},
	}

	var buf bytes.Buffer
	enc := NewEncoder(&buf, Raw)
	require.NoError(t, enc.WriteHeader(3))
	for _, v := range frames {
		require.NoError(t, enc.Encode(v))
	}

	dim, err := ReadHeader(&buf)
	require.NoError(t, err)
	require.Equal(t, 3, dim)

	rr, err := NewRawReader(&buf, dim)
	require.NoError(t, err)
	got, err := rr.ReadAll()
	require.NoError(t, err)

	require.Len(t, got, len(frames))
	for i := range frames {
		for d := range frames[i] {
			assert.Equal(t, float64(float32(frames[i][d])), got[i][d])
		}
	}
}

func TestRawReader_Truncated(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	enc := NewEncoder(&buf, Raw)
	require.NoError(t, enc.Encode(feature.Vec{1, 2}))
	buf.Write([]byte{0, 0, 0})

	rr, err := NewRawReader(&buf, 2)
	require.NoError(t, err)

	_, err = rr.Next()
	require.NoError(t, err)
	_, err = rr.Next()
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestRawReader_EOFAtBoundary(t *testing.T) {
	t.Parallel()

	rr, err := NewRawReader(bytes.NewReader(nil), 4)
	require.NoError(t, err)
	_, err = rr.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReadHeader_Errors(t *testing.T) {
	t.Parallel()

	_, err := ReadHeader(bytes.NewReader([]byte{1, 0}))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	neg := binary.NativeEndian.AppendUint32(nil, uint32(0xffffffff))
	_, err = ReadHeader(bytes.NewReader(neg))
	assert.ErrorIs(t, err, ErrInvalidDim)

	_, err = NewRawReader(bytes.NewReader(nil), 0)
	assert.ErrorIs(t, err, ErrInvalidDim)
}
