package syllable

import (
	"errors"
	"testing"

	"github.com/geosyllable/geosyllable/addrerr"
)

func referenceCodec(t *testing.T) *Codec {
	t.Helper()
	consonants := []rune("sptknlfrwhvjzd")
	vowels := []rune("aeiou")
	c, err := New(consonants, vowels, 8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := referenceCodec(t)
	capacity, ok := c.Capacity()
	if !ok {
		t.Fatal("expected capacity to fit in uint64")
	}

	for _, n := range []uint64{0, 1, capacity / 2, capacity - 1} {
		addr, err := c.Encode(n)
		if err != nil {
			t.Fatalf("Encode(%d): %v", n, err)
		}
		if len([]rune(addr)) != c.Length()*2 {
			t.Fatalf("Encode(%d) produced %q with wrong length", n, addr)
		}
		got, err := c.Decode(addr)
		if err != nil {
			t.Fatalf("Decode(%q): %v", addr, err)
		}
		if got != n {
			t.Fatalf("round trip mismatch for %d: got %d via %q", n, got, addr)
		}
	}
}

func TestEncodeRejectsOutOfRangePosition(t *testing.T) {
	c := referenceCodec(t)
	capacity, ok := c.Capacity()
	if !ok {
		t.Fatal("expected capacity to fit in uint64")
	}
	if _, err := c.Encode(capacity); !errors.Is(err, addrerr.AddressOutOfRange) {
		t.Fatalf("expected AddressOutOfRange, got %v", err)
	}
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	c := referenceCodec(t)
	if _, err := c.Decode("sa"); !errors.Is(err, addrerr.MalformedAddress) {
		t.Fatalf("expected MalformedAddress, got %v", err)
	}
}

func TestDecodeRejectsUnknownLetters(t *testing.T) {
	c := referenceCodec(t)
	addr, err := c.Encode(0)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	letters := []rune(addr)
	letters[0] = 'q' // not in the consonant set
	if _, err := c.Decode(string(letters)); !errors.Is(err, addrerr.MalformedAddress) {
		t.Fatalf("expected MalformedAddress for unknown consonant, got %v", err)
	}
}

func TestNewRejectsOverlappingAlphabet(t *testing.T) {
	if _, err := New([]rune("ab"), []rune("ba"), 4); err == nil {
		t.Fatal("expected error for overlapping consonant/vowel sets")
	}
}

func TestNewRejectsEmptySets(t *testing.T) {
	if _, err := New(nil, []rune("a"), 4); err == nil {
		t.Fatal("expected error for empty consonant set")
	}
	if _, err := New([]rune("s"), nil, 4); err == nil {
		t.Fatal("expected error for empty vowel set")
	}
}
