package spec

import "crypto/sha256"

// FingerprintSize is the byte length of a schema fingerprint.
const FingerprintSize = 32

// Fingerprint is the content identity of a schema: SHA-256 over its
// longform bytes. Because the longform encoding is canonical, structurally
// equal schemas share a fingerprint no matter which aliases a compact
// encoder applied to their wire form, or which codec version produced it.
type Fingerprint [FingerprintSize]byte

// Fingerprint computes the schema's content identity.
func (s *Spec) Fingerprint() Fingerprint {
	return sha256.Sum256(s.ToLongformBytes())
}

// String returns the fingerprint as lowercase hex.
func (f Fingerprint) String() string {
	const hextable = "0123456789abcdef"
	var buf [FingerprintSize * 2]byte
	for i, b := range f {
		buf[i*2] = hextable[b>>4]
		buf[i*2+1] = hextable[b&0x0f]
	}
	return string(buf[:])
}

// ParseFingerprint parses a 64-character hex string.
func ParseFingerprint(s string) (Fingerprint, bool) {
	var f Fingerprint
	if len(s) != FingerprintSize*2 {
		return f, false
	}
	for i := 0; i < FingerprintSize; i++ {
		hi := hexDigit(s[i*2])
		lo := hexDigit(s[i*2+1])
		if hi < 0 || lo < 0 {
			return f, false
		}
		f[i] = byte(hi<<4 | lo)
	}
	return f, true
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}
