package snapshot_test

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/katalvlaran/dsubench"
	"github.com/katalvlaran/dsubench/bucketed"
	"github.com/katalvlaran/dsubench/generator"
	"github.com/katalvlaran/dsubench/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codecs = []snapshot.Codec{snapshot.CodecNone, snapshot.CodecLZ4, snapshot.CodecZSTD}

// TestRoundTrip encodes a generated graph with every codec and decodes it back.
func TestRoundTrip(t *testing.T) {
	const n = 300
	list, err := generator.Generate(n, 0.05, 10, generator.WithSeed(8))
	require.NoError(t, err)

	for _, c := range codecs {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, snapshot.Encode(&buf, list, n, c))
			g, err := snapshot.Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, n, g.N)
			assert.True(t, list.Equal(g.Edges))
		})
	}
}

// TestCompressionShrinks: a dense graph compresses under both codecs.
func TestCompressionShrinks(t *testing.T) {
	const n = 200
	list, err := generator.Generate(n, 0.5, 4, generator.WithSeed(2))
	require.NoError(t, err)

	var plain bytes.Buffer
	require.NoError(t, snapshot.Encode(&plain, list, n, snapshot.CodecNone))
	for _, c := range []snapshot.Codec{snapshot.CodecLZ4, snapshot.CodecZSTD} {
		var buf bytes.Buffer
		require.NoError(t, snapshot.Encode(&buf, list, n, c))
		assert.Less(t, buf.Len(), plain.Len(), c.String())
	}
}

// TestEmptyList: a single-vertex graph still round-trips.
func TestEmptyList(t *testing.T) {
	list, _ := bucketed.New(3)
	for _, c := range codecs {
		var buf bytes.Buffer
		require.NoError(t, snapshot.Encode(&buf, list, 1, c))
		g, err := snapshot.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, 1, g.N)
		assert.Equal(t, 3, g.Edges.BucketCount())
		assert.Zero(t, g.Edges.Len())
	}
}

func TestFile(t *testing.T) {
	list, err := generator.Generate(64, 0.1, 5, generator.WithSeed(4))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "g.dsub")
	require.NoError(t, snapshot.WriteFile(path, list, 64, snapshot.CodecZSTD))
	g, err := snapshot.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, list.Equal(g.Edges))

	_, err = snapshot.ReadFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

// TestDecode_Corrupt covers bad magic, version and truncation.
func TestDecode_Corrupt(t *testing.T) {
	list, _ := bucketed.FromBuckets([][]bucketed.Edge{{{X: 0, Y: 1}, {X: 1, Y: 2}}})
	var buf bytes.Buffer
	require.NoError(t, snapshot.Encode(&buf, list, 3, snapshot.CodecNone))
	good := buf.Bytes()

	_, err := snapshot.Decode(bytes.NewReader([]byte("nope")))
	assert.ErrorIs(t, err, snapshot.ErrCorrupt)

	bad := append([]byte(nil), good...)
	bad[0] = 'X'
	_, err = snapshot.Decode(bytes.NewReader(bad))
	assert.ErrorIs(t, err, snapshot.ErrCorrupt)

	bad = append([]byte(nil), good...)
	bad[4] = 9
	_, err = snapshot.Decode(bytes.NewReader(bad))
	assert.ErrorIs(t, err, snapshot.ErrUnsupportedVersion)

	_, err = snapshot.Decode(bytes.NewReader(good[:len(good)-3]))
	assert.ErrorIs(t, err, snapshot.ErrCorrupt)
}

// TestDecode_OversizedHeader: a header claiming far more payload than the
// compressed block can produce is rejected without allocating it.
func TestDecode_OversizedHeader(t *testing.T) {
	for _, c := range []snapshot.Codec{snapshot.CodecLZ4, snapshot.CodecZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			data := []byte{'D', 'S', 'U', 'B', 1, byte(c)}
			data = binary.LittleEndian.AppendUint32(data, 0xF0000000) // uncompressed
			data = binary.LittleEndian.AppendUint32(data, 1)          // compressed
			data = append(data, 0)

			var before, after runtime.MemStats
			runtime.ReadMemStats(&before)
			_, err := snapshot.Decode(bytes.NewReader(data))
			runtime.ReadMemStats(&after)

			assert.ErrorIs(t, err, snapshot.ErrCorrupt)
			assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(64<<20))
		})
	}
}

func TestEncode_Validation(t *testing.T) {
	list, _ := bucketed.FromBuckets([][]bucketed.Edge{{{X: 0, Y: 5}}})
	var buf bytes.Buffer
	assert.ErrorIs(t, snapshot.Encode(&buf, list, 3, snapshot.CodecNone), dsubench.ErrOutOfRange)
	assert.ErrorIs(t, snapshot.Encode(&buf, list, 6, snapshot.Codec(7)), snapshot.ErrUnknownCodec)
	assert.ErrorIs(t, snapshot.Encode(&buf, nil, 6, snapshot.CodecNone), dsubench.ErrInvalidArgument)
	assert.ErrorIs(t, snapshot.Encode(&buf, list, -1, snapshot.CodecNone), dsubench.ErrInvalidArgument)
}

func TestParseCodec(t *testing.T) {
	for _, c := range codecs {
		got, err := snapshot.ParseCodec(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	c, err := snapshot.ParseCodec("ZSTD")
	require.NoError(t, err)
	assert.Equal(t, snapshot.CodecZSTD, c)

	_, err = snapshot.ParseCodec("gzip")
	assert.ErrorIs(t, err, snapshot.ErrUnknownCodec)
	assert.Equal(t, "Codec(9)", snapshot.Codec(9).String())
}
