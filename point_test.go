package btckey

import (
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// randPoint returns k*G for a random scalar k in [1, N-1].
func randPoint(t *testing.T) Point {
	t.Helper()
	k, err := randScalar(rand.Reader)
	if err != nil {
		t.Fatalf("unable to draw random scalar: %v", err)
	}
	return G.Multiply(k)
}

// TestGeneratorOnCurve ensures the base point satisfies the curve
// equation.
func TestGeneratorOnCurve(t *testing.T) {
	lhs := G.Y().Square()
	rhs := G.X().Mul(G.X().Square()).Add(B)
	if !lhs.Equal(rhs) {
		t.Fatal("generator does not satisfy y^2 = x^3 + 7")
	}
}

// TestNewPointFromX ensures decompression honors the requested y parity and
// reproduces the original point or its negation.
func TestNewPointFromX(t *testing.T) {
	for i := 0; i < 8; i++ {
		p := randPoint(t)
		x := p.X().BigInt()

		for _, even := range []bool{true, false} {
			q, err := NewPointFromX(x, even)
			if err != nil {
				t.Fatalf("decompression failed for on-curve x: %v", err)
			}
			if q.Y().IsOdd() == even {
				t.Fatalf("wrong y parity: even=%v yielded %v", even, spew.Sdump(q))
			}
			if !q.Equal(p) && !q.Equal(p.Negate()) {
				t.Fatalf("decompressed point is neither p nor -p:\n%v", spew.Sdump(q))
			}
		}
	}
}

// TestNewPointFromXMisses ensures x coordinates off the curve are rejected
// and that roughly half of random x values decompress, as expected for a
// curve of near 2^256 points over a 2^256 field.
func TestNewPointFromXMisses(t *testing.T) {
	var hits, misses int
	for i := 0; i < 128; i++ {
		x, err := rand.Int(rand.Reader, N)
		if err != nil {
			t.Fatalf("unable to draw random x: %v", err)
		}
		_, err = NewPointFromX(x, true)
		switch {
		case err == nil:
			hits++
		case errors.Is(err, ErrPubKeyNotOnCurve):
			misses++
		default:
			t.Fatalf("unexpected error kind: %v", err)
		}
	}
	if hits == 0 || misses == 0 {
		t.Fatalf("expected both hits and misses over 128 draws (got %d/%d)", hits, misses)
	}
}

// TestNewPointFromXTooBig ensures x coordinates outside the field are
// rejected.
func TestNewPointFromXTooBig(t *testing.T) {
	_, err := NewPointFromX(P, true)
	if !errors.Is(err, ErrPubKeyXTooBig) {
		t.Fatalf("unexpected error -- got %v, want %v", err, ErrPubKeyXTooBig)
	}
}

// TestParsePointRoundTrip ensures serialize/parse round-trips for the
// infinity, compressed, and uncompressed encodings.
func TestParsePointRoundTrip(t *testing.T) {
	// Infinity encodes as a single zero byte regardless of compression.
	for _, compressed := range []bool{true, false} {
		enc := PointAtInfinity.Serialize(compressed)
		if len(enc) != 1 || enc[0] != 0x00 {
			t.Fatalf("unexpected infinity encoding %x", enc)
		}
		pt, err := ParsePoint(enc)
		if err != nil {
			t.Fatalf("unable to parse infinity encoding: %v", err)
		}
		if !pt.IsInfinity() {
			t.Fatal("parsed infinity encoding is not infinity")
		}
	}

	for i := 0; i < 8; i++ {
		p := randPoint(t)
		for _, compressed := range []bool{true, false} {
			enc := p.Serialize(compressed)
			wantLen := 65
			if compressed {
				wantLen = 33
			}
			if len(enc) != wantLen {
				t.Fatalf("serialized length is %d, want %d", len(enc), wantLen)
			}

			got, err := ParsePoint(enc)
			if err != nil {
				t.Fatalf("unable to parse serialized point: %v", err)
			}
			if !got.Equal(p) {
				t.Fatalf("round-trip mismatch:\ngot %v\nwant %v", spew.Sdump(got), spew.Sdump(p))
			}
		}
	}
}

// TestParsePointErrors ensures malformed encodings are rejected with the
// expected error kinds, including encodings whose length is off by one.
func TestParsePointErrors(t *testing.T) {
	p := randPoint(t)
	compressed := p.Serialize(true)
	uncompressed := p.Serialize(false)

	tests := []struct {
		name string
		in   []byte
		err  error
	}{{
		name: "empty",
		in:   nil,
		err:  ErrPubKeyInvalidLen,
	}, {
		name: "infinity with trailing byte",
		in:   []byte{0x00, 0x00},
		err:  ErrPubKeyInvalidLen,
	}, {
		name: "compressed truncated by one",
		in:   compressed[:32],
		err:  ErrPubKeyInvalidLen,
	}, {
		name: "compressed extended by one",
		in:   append(append([]byte{}, compressed...), 0x00),
		err:  ErrPubKeyInvalidLen,
	}, {
		name: "uncompressed truncated by one",
		in:   uncompressed[:64],
		err:  ErrPubKeyInvalidLen,
	}, {
		name: "uncompressed extended by one",
		in:   append(append([]byte{}, uncompressed...), 0x00),
		err:  ErrPubKeyInvalidLen,
	}, {
		name: "unknown prefix",
		in:   append([]byte{0x10}, make([]byte, 9)...),
		err:  ErrPubKeyInvalidFormat,
	}, {
		name: "hybrid prefix",
		in:   append([]byte{0x06}, uncompressed[1:]...),
		err:  ErrPubKeyInvalidFormat,
	}}

	for _, test := range tests {
		_, err := ParsePoint(test.in)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: unexpected error -- got %v, want %v", test.name, err, test.err)
		}
	}
}

// TestGroupLaws checks the identity, inverse, and doubling laws on random
// points.
func TestGroupLaws(t *testing.T) {
	o := PointAtInfinity
	for i := 0; i < 8; i++ {
		p := randPoint(t)

		if !p.Add(o).Equal(p) {
			t.Fatal("p + O != p")
		}
		if !o.Add(p).Equal(p) {
			t.Fatal("O + p != p")
		}
		if !o.Add(o).Equal(o) {
			t.Fatal("O + O != O")
		}
		if !p.Add(p).Equal(p.Twice()) {
			t.Fatal("p + p != 2p")
		}
		if !o.Twice().Equal(o) {
			t.Fatal("2O != O")
		}
		if !p.Add(p.Negate()).Equal(o) {
			t.Fatal("p + (-p) != O")
		}
		if !o.Negate().Equal(o) {
			t.Fatal("-O != O")
		}
	}
}

// TestMultiply checks scalar multiplication edge cases and properties.
func TestMultiply(t *testing.T) {
	o := PointAtInfinity
	p := randPoint(t)

	if !p.Multiply(big.NewInt(0)).Equal(o) {
		t.Fatal("0*p != O")
	}
	if !o.Multiply(big.NewInt(0)).Equal(o) {
		t.Fatal("0*O != O")
	}
	if !p.Multiply(big.NewInt(1)).Equal(p) {
		t.Fatal("1*p != p")
	}
	if !o.Multiply(big.NewInt(7)).Equal(o) {
		t.Fatal("7*O != O")
	}
	if !p.Multiply(big.NewInt(2)).Equal(p.Twice()) {
		t.Fatal("2*p != p.Twice()")
	}

	// Multiplication commutes in the scalar.
	k1, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), FieldSize))
	if err != nil {
		t.Fatalf("unable to draw random scalar: %v", err)
	}
	k2, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), FieldSize))
	if err != nil {
		t.Fatalf("unable to draw random scalar: %v", err)
	}
	if !p.Multiply(k1).Multiply(k2).Equal(p.Multiply(k2).Multiply(k1)) {
		t.Fatal("a*(b*p) != b*(a*p)")
	}
}

// TestMultiplyNegativePanics ensures a negative multiplier is treated as a
// caller bug.
func TestMultiplyNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("negative multiplier did not panic")
		}
	}()
	G.Multiply(big.NewInt(-1))
}

// TestGroupOrder checks the structure imposed by the order of G: N*G = O,
// scalars reduce mod N, and k*G + (N-k)*G = O.
func TestGroupOrder(t *testing.T) {
	if !G.Multiply(N).IsInfinity() {
		t.Fatal("N*G != O")
	}

	k, err := randScalar(rand.Reader)
	if err != nil {
		t.Fatalf("unable to draw random scalar: %v", err)
	}
	p := G.Multiply(k)
	if p.IsInfinity() {
		t.Fatal("k*G = O for k in [1, N-1]")
	}
	if !p.Multiply(N).IsInfinity() {
		t.Fatal("N*(k*G) != O")
	}

	// (k + N)*G = k*G.
	if !G.Multiply(new(big.Int).Add(k, N)).Equal(p) {
		t.Fatal("(k+N)*G != k*G")
	}

	// k*G + (N-k)*G = O.
	q := G.Multiply(new(big.Int).Sub(N, k))
	if !p.Add(q).Equal(PointAtInfinity) {
		t.Fatal("k*G + (N-k)*G != O")
	}

	// (N-1)*p = -p.
	if !p.Multiply(new(big.Int).Sub(N, big.NewInt(1))).Equal(p.Negate()) {
		t.Fatal("(N-1)*p != -p")
	}
}

// TestSumOfTwoMultiplies cross-checks the joint scan against separate
// multiplications.
func TestSumOfTwoMultiplies(t *testing.T) {
	p := randPoint(t)
	q := randPoint(t)

	for _, test := range []struct {
		k, l *big.Int
	}{
		{big.NewInt(0), big.NewInt(0)},
		{big.NewInt(1), big.NewInt(0)},
		{big.NewInt(0), big.NewInt(1)},
		{big.NewInt(0x1234), big.NewInt(0xfedc)},
		{new(big.Int).Sub(N, big.NewInt(1)), big.NewInt(2)},
	} {
		got := sumOfTwoMultiplies(p, test.k, q, test.l)
		want := p.Multiply(test.k).Add(q.Multiply(test.l))
		if !got.Equal(want) {
			t.Fatalf("k=%v l=%v: joint scan disagrees with separate multiplies", test.k, test.l)
		}
	}
}
