package common

// WipeByteArray zeroes the contents of buf in place. Use it to scrub
// credentials from memory once they are no longer needed.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
