package b64url

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"lukechampine.com/frand"

	"github.com/autodesk-tandem/tandem-keys/kerr"
)

func TestEncodeDecode(t *testing.T) {
	var err error
	var b2 []byte
	for i := range 10000 {
		b := frand.Bytes(i % 97)
		s := Encode(b)
		if strings.ContainsAny(s, "+/=") {
			t.Fatalf("encoding is not url safe: %s", s)
		}
		if b2, err = Decode(s); chk.E(err) {
			t.Fatal(err)
		}
		if !bytes.Equal(b, b2) {
			t.Fatalf("round trip mismatch\n%x\n%x", b, b2)
		}
	}
}

func TestEmpty(t *testing.T) {
	if s := Encode(nil); s != "" {
		t.Fatalf("empty buffer encoded to %q", s)
	}
	b, err := Decode("")
	if err != nil || len(b) != 0 {
		t.Fatalf("empty text decoded to %x, %v", b, err)
	}
}

func TestMatchesSubstitutedStandardEncoding(t *testing.T) {
	for range 1000 {
		b := frand.Bytes(frand.Intn(64))
		std := base64.StdEncoding.EncodeToString(b)
		std = strings.NewReplacer("+", "-", "/", "_").Replace(std)
		std = strings.TrimRight(std, "=")
		if got := Encode(b); got != std {
			t.Fatalf("got %s want %s", got, std)
		}
	}
}

func TestDecodeAcceptsPadding(t *testing.T) {
	b, err := Decode("AQ==")
	if err != nil || !bytes.Equal(b, []byte{1}) {
		t.Fatalf("got %x %v", b, err)
	}
	b, err = Decode("-_8")
	if err != nil || !bytes.Equal(b, []byte{0xfb, 0xff}) {
		t.Fatalf("got %x %v", b, err)
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, s := range []string{
		"ab+c",
		"ab/c",
		"a b",
		"AAAA\n",
		"A",
		"AAAAA",
		"A=A",
		"ä",
	} {
		if _, err := Decode(s); !kerr.IsMalformed(err) {
			t.Fatalf("%q: expected malformed input, got %v", s, err)
		}
	}
}

func TestDecodeLen(t *testing.T) {
	s := Encode(make([]byte, 20))
	if _, err := DecodeLen(s, 20, "short key"); chk.E(err) {
		t.Fatal(err)
	}
	if _, err := DecodeLen(s, 24, "full key"); !kerr.IsLength(err) {
		t.Fatalf("expected invalid length, got %v", err)
	}
}

func TestAppend(t *testing.T) {
	src := frand.Bytes(33)
	dst := AppendEncode([]byte("k:"), src)
	if string(dst) != "k:"+Encode(src) {
		t.Fatalf("append encode got %s", dst)
	}
	if len(dst)-2 != EncodedLen(len(src)) {
		t.Fatalf("encoded length %d want %d", len(dst)-2, EncodedLen(len(src)))
	}
	b, err := AppendDecode([]byte{9}, Encode(src))
	if chk.E(err) {
		t.Fatal(err)
	}
	if b[0] != 9 || !bytes.Equal(b[1:], src) {
		t.Fatalf("append decode got %x", b)
	}
}

func BenchmarkDecode(bb *testing.B) {
	s := Encode(frand.Bytes(40))
	bb.ReportAllocs()
	for i := 0; i < bb.N; i++ {
		_, _ = Decode(s)
	}
}
