package spec

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// randomSpec builds an arbitrary schema tree from a seeded source. Depth is
// bounded so generated trees stay within a few levels; breadth and payload
// values are unconstrained within their domains.
func randomSpec(r *rand.Rand, depth int) *Spec {
	// Leaves only at the depth limit.
	variants := 18
	if depth >= 4 {
		variants = 11
	}
	switch r.Intn(variants) {
	case 0:
		return Bool()
	case 1:
		return Void()
	case 2:
		return Uint(uint8(r.Intn(256)))
	case 3:
		return Int(uint8(r.Intn(256)))
	case 4:
		return BinaryFloatingPoint(BinaryFloatFormat(r.Intn(5)))
	case 5:
		return DecimalFloatingPoint(DecimalFloatFormat(r.Intn(3)))
	case 6:
		return Decimal(r.Uint64()>>uint(r.Intn(64)), r.Uint64()>>uint(r.Intn(64)))
	case 7:
		return String(randomSize(r), StringEncoding(r.Intn(3)))
	case 8:
		return Bytes(randomSize(r))
	case 9:
		return Ref(randomName(r))
	case 10:
		return Uint(uint8(r.Intn(4))) // weight the aliased scales
	case 11:
		return Optional(randomSpec(r, depth+1))
	case 12:
		return Named(randomName(r), randomSpec(r, depth+1))
	case 13:
		return List(randomSize(r), randomSpec(r, depth+1))
	case 14:
		return Map(randomSize(r), randomSpec(r, depth+1), randomSpec(r, depth+1))
	case 15:
		n := r.Intn(4)
		fields := make([]Field, n)
		for i := range fields {
			fields[i] = FieldOf(randomName(r), randomSpec(r, depth+1))
		}
		if r.Intn(2) == 0 {
			return Record(fields...)
		}
		return Enum(fields...)
	default:
		n := r.Intn(4)
		elems := make([]*Spec, n)
		for i := range elems {
			elems[i] = randomSpec(r, depth+1)
		}
		if r.Intn(2) == 0 {
			return Tuple(elems...)
		}
		return Union(elems...)
	}
}

func randomSize(r *rand.Rand) Size {
	if r.Intn(2) == 0 {
		return Variable
	}
	return Fixed(r.Uint64() >> uint(r.Intn(64)))
}

func randomName(r *rand.Rand) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz_π∅"
	runes := []rune(alphabet)
	n := r.Intn(12)
	out := make([]rune, n)
	for i := range out {
		out[i] = runes[r.Intn(len(runes))]
	}
	return string(out)
}

func genSeed() gopter.Gen {
	return gen.Int64()
}

func specFromSeed(seed int64) *Spec {
	return randomSpec(rand.New(rand.NewSource(seed)), 0)
}

func TestProperty_CompactRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("decode(encode(s)) == s", prop.ForAll(
		func(seed int64) bool {
			s := specFromSeed(seed)
			decoded, err := FromBytes(s.ToBytes())
			return err == nil && decoded.Equal(s)
		},
		genSeed(),
	))

	properties.TestingRun(t)
}

func TestProperty_LongformRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("decode(longform(s)) == s", prop.ForAll(
		func(seed int64) bool {
			s := specFromSeed(seed)
			decoded, err := FromBytes(s.ToLongformBytes())
			return err == nil && decoded.Equal(s)
		},
		genSeed(),
	))

	properties.TestingRun(t)
}

func TestProperty_CanonicalStability(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("equal trees share longform bytes", prop.ForAll(
		func(seed int64) bool {
			a := specFromSeed(seed)
			b := specFromSeed(seed)
			return a.Equal(b) && bytes.Equal(a.ToLongformBytes(), b.ToLongformBytes())
		},
		genSeed(),
	))

	properties.Property("longform equality implies structural equality", prop.ForAll(
		func(seedA, seedB int64) bool {
			a := specFromSeed(seedA)
			b := specFromSeed(seedB)
			if bytes.Equal(a.ToLongformBytes(), b.ToLongformBytes()) {
				return a.Equal(b)
			}
			return !a.Equal(b)
		},
		genSeed(),
		genSeed(),
	))

	properties.TestingRun(t)
}

func TestProperty_ReportedSize(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("WriteBytes reports exactly the bytes written", prop.ForAll(
		func(seed int64) bool {
			s := specFromSeed(seed)
			var buf bytes.Buffer
			n, err := s.WriteBytes(&buf)
			return err == nil && n == buf.Len()
		},
		genSeed(),
	))

	properties.TestingRun(t)
}

func TestProperty_TruncationFails(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("any strict prefix fails with ErrUnexpectedEndOfBytes", prop.ForAll(
		func(seed int64, cut uint8) bool {
			s := specFromSeed(seed)
			encoded := s.ToBytes()
			n := int(cut) % len(encoded)
			_, err := FromBytes(encoded[:n])
			return errors.Is(err, ErrUnexpectedEndOfBytes)
		},
		genSeed(),
		gen.UInt8(),
	))

	properties.TestingRun(t)
}

func TestProperty_FingerprintMatchesEquality(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("fingerprint is stable across a decode cycle", prop.ForAll(
		func(seed int64) bool {
			s := specFromSeed(seed)
			decoded, err := FromBytes(s.ToBytes())
			return err == nil && decoded.Fingerprint() == s.Fingerprint()
		},
		genSeed(),
	))

	properties.TestingRun(t)
}
