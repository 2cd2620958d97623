// Package wire defines the messages exchanged between the coordinator and
// worker processes, encoded with MessagePack.
package wire

import "github.com/vmihailenco/msgpack/v5"

// Assignment carries the broadcast integration parameters together with one
// worker's half-open index range. Every assignment of a single run carries
// identical A, B and N, so a worker needs no state beyond the message.
type Assignment struct {
	Rank  int     `msgpack:"rank"`
	A     float64 `msgpack:"a"`
	B     float64 `msgpack:"b"`
	N     int64   `msgpack:"n"`
	Start int64   `msgpack:"start"`
	End   int64   `msgpack:"end"`
}

// Partial is one worker's contribution to the reduction.
type Partial struct {
	Rank  int     `msgpack:"rank"`
	Value float64 `msgpack:"value"`
}

func Encode(v interface{}) ([]byte, error) {
	return msgpack.Marshal(v)
}

func Decode(data []byte, v interface{}) error {
	return msgpack.Unmarshal(data, v)
}
