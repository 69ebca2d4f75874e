package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/dsubench"
	"github.com/katalvlaran/dsubench/bucketed"
)

const (
	version         = 1
	fileHeaderSize  = 6 // magic + version + codec
	blockHeaderSize = 8
	edgeSize        = 8
)

var magic = [4]byte{'D', 'S', 'U', 'B'}

// ErrCorrupt indicates a snapshot that cannot be decoded.
var ErrCorrupt = errors.New("snapshot: corrupt data")

// ErrUnsupportedVersion indicates a snapshot written by a newer format.
var ErrUnsupportedVersion = errors.New("snapshot: unsupported version")

// Graph is a decoded snapshot.
type Graph struct {
	N     int
	Edges *bucketed.List
}

// Encode writes list, a graph over n vertices, to w using codec.
func Encode(w io.Writer, list *bucketed.List, n int, codec Codec) error {
	if _, err := codec.MarshalText(); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	if list == nil {
		return fmt.Errorf("Encode: nil list: %w", dsubench.ErrInvalidArgument)
	}
	if n < 0 || uint64(n) > math.MaxUint32 {
		return fmt.Errorf("Encode: n=%d does not fit uint32: %w", n, dsubench.ErrInvalidArgument)
	}
	if err := list.Validate(n); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	payload := encodePayload(list, n)

	compressed, err := compress(payload, codec)
	if err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	var head [fileHeaderSize + blockHeaderSize]byte
	copy(head[:4], magic[:])
	head[4] = version
	head[5] = byte(codec)
	binary.LittleEndian.PutUint32(head[6:], uint32(len(payload)))
	binary.LittleEndian.PutUint32(head[10:], uint32(len(compressed)))
	if _, err := w.Write(head[:]); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	body := payload
	if len(compressed) > 0 {
		body = compressed
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	return nil
}

// Decode reads a snapshot written by Encode.
func Decode(r io.Reader) (Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Graph{}, fmt.Errorf("Decode: %w", err)
	}
	if len(data) < fileHeaderSize+blockHeaderSize || !bytes.Equal(data[:4], magic[:]) {
		return Graph{}, fmt.Errorf("Decode: bad header: %w", ErrCorrupt)
	}
	if data[4] != version {
		return Graph{}, fmt.Errorf("Decode: version %d: %w", data[4], ErrUnsupportedVersion)
	}
	codec := Codec(data[5])
	size := binary.LittleEndian.Uint32(data[6:])
	csize := binary.LittleEndian.Uint32(data[10:])
	body := data[fileHeaderSize+blockHeaderSize:]

	var payload []byte
	if csize == 0 {
		if uint32(len(body)) < size {
			return Graph{}, fmt.Errorf("Decode: block data too small: %w", ErrCorrupt)
		}
		payload = body[:size]
	} else {
		if uint32(len(body)) < csize {
			return Graph{}, fmt.Errorf("Decode: compressed block too small: %w", ErrCorrupt)
		}
		if payload, err = decompress(body[:csize], size, codec); err != nil {
			return Graph{}, fmt.Errorf("Decode: %w", err)
		}
	}
	return decodePayload(payload)
}

// WriteFile encodes the graph into path, replacing any existing file.
func WriteFile(path string, list *bucketed.List, n int, codec Codec) error {
	var buf bytes.Buffer
	if err := Encode(&buf, list, n, codec); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// ReadFile decodes the snapshot stored in path.
func ReadFile(path string) (Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return Graph{}, err
	}
	defer f.Close()
	return Decode(f)
}

func encodePayload(list *bucketed.List, n int) []byte {
	buckets := list.Buckets()
	size := 8 + 4*len(buckets) + edgeSize*list.Len()
	buf := make([]byte, 0, size)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(n))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(buckets)))
	for _, b := range buckets {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(b)))
		for _, e := range b {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(e.X))
			buf = binary.LittleEndian.AppendUint32(buf, uint32(e.Y))
		}
	}
	return buf
}

func decodePayload(p []byte) (Graph, error) {
	if len(p) < 8 {
		return Graph{}, fmt.Errorf("Decode: payload too small: %w", ErrCorrupt)
	}
	n := int(binary.LittleEndian.Uint32(p))
	w := int(binary.LittleEndian.Uint32(p[4:]))
	p = p[8:]
	if w < 1 || w > len(p)/4 {
		return Graph{}, fmt.Errorf("Decode: w=%d: %w", w, ErrCorrupt)
	}

	buckets := make([][]bucketed.Edge, w)
	for b := 0; b < w; b++ {
		if len(p) < 4 {
			return Graph{}, fmt.Errorf("Decode: bucket %d header truncated: %w", b, ErrCorrupt)
		}
		count := int(binary.LittleEndian.Uint32(p))
		p = p[4:]
		if count > len(p)/edgeSize {
			return Graph{}, fmt.Errorf("Decode: bucket %d truncated: %w", b, ErrCorrupt)
		}
		edges := make([]bucketed.Edge, count)
		for i := range edges {
			edges[i] = bucketed.Edge{
				X: int(binary.LittleEndian.Uint32(p)),
				Y: int(binary.LittleEndian.Uint32(p[4:])),
			}
			p = p[edgeSize:]
		}
		buckets[b] = edges
	}
	if len(p) != 0 {
		return Graph{}, fmt.Errorf("Decode: %d trailing bytes: %w", len(p), ErrCorrupt)
	}

	list, err := bucketed.FromBuckets(buckets)
	if err != nil {
		return Graph{}, fmt.Errorf("Decode: %w", err)
	}
	if err := list.Validate(n); err != nil {
		return Graph{}, fmt.Errorf("Decode: %w: %w", ErrCorrupt, err)
	}
	return Graph{N: n, Edges: list}, nil
}
