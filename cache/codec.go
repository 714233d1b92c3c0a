package cache

import "github.com/vmihailenco/msgpack/v5"

// Encode serializes a value for storage in the cache.
func Encode(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Decode deserializes a cached payload into dest.
func Decode(payload []byte, dest any) error {
	return msgpack.Unmarshal(payload, dest)
}
