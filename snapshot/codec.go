// Package snapshot stores generated graphs on disk so one graph can be swept
// repeatedly, or with another strategy, without regenerating it.
//
// File layout (little-endian):
//
//	magic   [4]byte "DSUB"
//	version uint8   (1)
//	codec   uint8   (Codec)
//	block   [uncompressed uint32][compressed uint32][data...]
//
// compressed == 0 means the data is stored as is (no codec, or compression
// did not pay off). The decompressed payload is:
//
//	n uint32, w uint32, then per bucket: count uint32, count × (x uint32, y uint32)
package snapshot

import (
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/dsubench"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec selects the block compression.
type Codec uint8

const (
	// CodecNone stores the payload uncompressed.
	CodecNone Codec = 0
	// CodecLZ4 uses LZ4 block compression (fast).
	CodecLZ4 Codec = 1
	// CodecZSTD uses zstd (better ratio).
	CodecZSTD Codec = 2
)

// ErrUnknownCodec indicates a codec name or tag that is not recognized.
var ErrUnknownCodec = fmt.Errorf("snapshot: unknown codec: %w", dsubench.ErrInvalidArgument)

var codecNames = map[Codec]string{
	CodecNone: "none",
	CodecLZ4:  "lz4",
	CodecZSTD: "zstd",
}

// String returns the codec name.
func (c Codec) String() string {
	if name, ok := codecNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Codec(%d)", uint8(c))
}

// ParseCodec maps a case-insensitive name to a Codec.
func ParseCodec(name string) (Codec, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for c, n := range codecNames {
		if n == key {
			return c, nil
		}
	}
	return 0, fmt.Errorf("ParseCodec(%q): %w", name, ErrUnknownCodec)
}

// MarshalText implements encoding.TextMarshaler.
func (c Codec) MarshalText() ([]byte, error) {
	if _, ok := codecNames[c]; !ok {
		return nil, fmt.Errorf("MarshalText(%d): %w", uint8(c), ErrUnknownCodec)
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Codec) UnmarshalText(text []byte) error {
	v, err := ParseCodec(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Upper bounds on how many payload bytes one compressed byte can produce.
// A header claiming more is corrupt and is rejected before allocating.
const (
	lz4MaxRatio  = 255     // 0xFF run-length continuation bytes
	zstdMaxRatio = 1 << 15 // 128 KiB RLE block from a 4-byte block
	// zstdMaxMemory caps the decoder window and frame content size.
	zstdMaxMemory = 1 << 32
)

// zstd encoder/decoder pools; both are expensive to create.
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(zstdMaxMemory))
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// compress returns the compressed form of data, or nil when the codec is
// CodecNone or compression does not help.
func compress(data []byte, codec Codec) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var out []byte
	switch codec {
	case CodecNone:
		return nil, nil
	case CodecLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, nil // incompressible
		}
		out = buf[:n]
	case CodecZSTD:
		enc := getZstdEncoder()
		defer putZstdEncoder(enc)
		out = enc.EncodeAll(data, nil)
	default:
		return nil, fmt.Errorf("compress: %w", ErrUnknownCodec)
	}
	if len(out) >= len(data) {
		return nil, nil
	}
	return out, nil
}

// decompress expands data into a buffer of exactly size bytes. A size the
// codec cannot reach from len(data) bytes fails with ErrCorrupt.
func decompress(data []byte, size uint32, codec Codec) ([]byte, error) {
	switch codec {
	case CodecLZ4:
		if uint64(size) > lz4MaxRatio*uint64(len(data)) {
			return nil, fmt.Errorf("lz4: %d bytes cannot expand to %d: %w", len(data), size, ErrCorrupt)
		}
		result := make([]byte, size)
		n, err := lz4.UncompressBlock(data, result)
		if err != nil {
			return nil, fmt.Errorf("lz4: %w: %w", ErrCorrupt, err)
		}
		if uint32(n) != size {
			return nil, fmt.Errorf("lz4: decompressed %d bytes, want %d: %w", n, size, ErrCorrupt)
		}
		return result, nil
	case CodecZSTD:
		if uint64(size) > zstdMaxRatio*uint64(len(data)) {
			return nil, fmt.Errorf("zstd: %d bytes cannot expand to %d: %w", len(data), size, ErrCorrupt)
		}
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)
		decoded, err := dec.DecodeAll(data, make([]byte, 0, size))
		if err != nil {
			return nil, fmt.Errorf("zstd: %w: %w", ErrCorrupt, err)
		}
		if uint32(len(decoded)) != size {
			return nil, fmt.Errorf("zstd: decompressed %d bytes, want %d: %w", len(decoded), size, ErrCorrupt)
		}
		return decoded, nil
	default:
		return nil, fmt.Errorf("decompress: %w", ErrUnknownCodec)
	}
}
