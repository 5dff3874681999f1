package ringq

import "math/bits"

// isPow2 determines if the value n is a perfect power of 2.
func isPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// nextPow2 rounds n up to the nearest power of 2, with a minimum of 1.
// Every physical-index computation relies on the backing length being a
// power of 2, so that length-1 is an all-ones mask; the constructors call
// this exactly once and nothing else may size the backing slice.
func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	if isPow2(n) {
		return n
	}
	return 1 << bits.Len(uint(n-1))
}
