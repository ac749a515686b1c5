// Package api defines the wire surface of the golf-buddy gRPC services:
// request/response messages, service descriptors and client stubs.
//
// Messages travel as JSON using a codec registered under the "json"
// content-subtype, so any gRPC client can call the services by sending
// "application/grpc+json".
package api

import (
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype the services speak.
const CodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                       { return CodecName }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// CallOption selects the JSON codec on a client call.
func CallOption() grpc.CallOption {
	return grpc.CallContentSubtype(CodecName)
}
