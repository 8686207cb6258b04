package morph

import "sort"

// Mapping is a trimmed vertex mapping: only entries with f(v) != v are
// present. An empty Mapping represents the identity.
type Mapping map[int]int

// Key returns a canonical string encoding of m, built from its sorted
// key/value pairs, suitable for use as a map key or for equality by value.
// Complexity: O(n log n).
func (m Mapping) Key() string {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	// fixed-width-free encoding: separators can't collide with digits or
	// the minus sign, so distinct (key,value) sequences never alias.
	buf := make([]byte, 0, len(keys)*8)
	for _, k := range keys {
		buf = appendInt(buf, k)
		buf = append(buf, ':')
		buf = appendInt(buf, m[k])
		buf = append(buf, ',')
	}

	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}
	start := len(buf)
	if v == 0 {
		return append(buf, '0')
	}
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	// digits were appended least-significant first; reverse them in place
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return buf
}

// Equal reports whether m and other represent the same mapping.
func (m Mapping) Equal(other Mapping) bool {
	return m.Key() == other.Key()
}

// Size returns the number of non-identity entries; the identity mapping has
// Size 0.
func (m Mapping) Size() int {
	return len(m)
}
