package hash

import "github.com/cespare/xxhash/v2"

// keySeparator joins the entity key components before hashing. A unit
// separator keeps ("ab","c") and ("a","bc") from colliding by construction.
const keySeparator = "\x1f"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// EntityKey builds the composite string key for a (program, ptt) pair.
func EntityKey(program, ptt string) string {
	return program + keySeparator + ptt
}

// EntityID computes the 64-bit identifier of a (program, ptt) entity key.
func EntityID(program, ptt string) uint64 {
	return xxhash.Sum64String(EntityKey(program, ptt))
}
