package gray

// Encode returns the Gray-code image of b: b>>1 ^ b. Images of numerically
// adjacent values (modulo any power of two) differ in exactly one bit.
func Encode(b uint64) uint64 {
	return b>>1 ^ b
}

// Decode inverts Encode via a prefix-XOR fold.
func Decode(g uint64) uint64 {
	b := g
	for shift := uint(1); shift < 64; shift <<= 1 {
		b ^= b >> shift
	}
	return b
}
