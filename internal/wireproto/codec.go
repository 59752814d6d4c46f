package wireproto

import (
	"bytes"
	"encoding/gob"

	"google.golang.org/grpc/encoding"
)

// gobCodec implements google.golang.org/grpc/encoding.Codec over plain Go
// structs instead of protobuf messages. It registers itself under the
// name "proto" in init() below, which is the codec name gRPC-go selects
// whenever a call doesn't request an explicit content-subtype — this
// process therefore never touches the real protobuf codec, and WatFS
// messages never need to satisfy proto.Message. This keeps the RPC
// contract (unary/streaming shape, deadlines, wait-for-ready) genuinely
// on google.golang.org/grpc without requiring a .proto compile step.
type gobCodec struct{}

func (gobCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (gobCodec) Unmarshal(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

func (gobCodec) Name() string { return "proto" }

func init() {
	encoding.RegisterCodec(gobCodec{})
}
