package timecode

import (
	"errors"
	"testing"
)

func TestDecodeSRT(t *testing.T) {
	cases := []struct {
		text string
		want int64
	}{
		{"00:00:00,000", 0},
		{"00:00:01,500", 1500},
		{"01:02:03,004", 3723004},
		{"99:59:59,999", 359999999},
	}
	for _, tc := range cases {
		got, err := Decode(tc.text, DialectSRT)
		if err != nil {
			t.Fatalf("Decode(%q) returned error: %v", tc.text, err)
		}
		if got != tc.want {
			t.Fatalf("Decode(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestDecodeASS(t *testing.T) {
	cases := []struct {
		text string
		want int64
	}{
		{"0:00:00.00", 0},
		{"0:00:01.50", 1500},
		{"1:02:03.04", 3723040},
		{"10:00:00.99", 36000990},
	}
	for _, tc := range cases {
		got, err := Decode(tc.text, DialectASS)
		if err != nil {
			t.Fatalf("Decode(%q) returned error: %v", tc.text, err)
		}
		if got != tc.want {
			t.Fatalf("Decode(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		dialect Dialect
	}{
		{"srt dot separator", "00:00:01.500", DialectSRT},
		{"srt short millis", "00:00:01,50", DialectSRT},
		{"srt long millis", "00:00:01,5000", DialectSRT},
		{"srt unpadded hours", "0:00:01,500", DialectSRT},
		{"srt missing field", "00:01,500", DialectSRT},
		{"srt letters", "00:00:0a,500", DialectSRT},
		{"ass comma separator", "0:00:01,50", DialectASS},
		{"ass millisecond width", "0:00:01.500", DialectASS},
		{"ass short minutes", "0:0:01.50", DialectASS},
		{"ass empty hours", ":00:01.50", DialectASS},
		{"empty", "", DialectSRT},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode(tc.text, tc.dialect); !errors.Is(err, ErrMalformedTimestamp) {
				t.Fatalf("Decode(%q) error = %v, want ErrMalformedTimestamp", tc.text, err)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	if got := Encode(3723004, DialectSRT); got != "01:02:03,004" {
		t.Fatalf("unexpected srt encoding: %q", got)
	}
	if got := Encode(3723040, DialectASS); got != "1:02:03.04" {
		t.Fatalf("unexpected ass encoding: %q", got)
	}
	if got := Encode(0, DialectASS); got != "0:00:00.00" {
		t.Fatalf("unexpected zero encoding: %q", got)
	}
	if got := Encode(-250, DialectSRT); got != "00:00:00,000" {
		t.Fatalf("negative input should clamp to zero, got %q", got)
	}
}

func TestEncodeTruncatesASSMilliseconds(t *testing.T) {
	// 1234ms is 123.4cs; the format only carries centiseconds.
	if got := Encode(1234, DialectASS); got != "0:00:01.23" {
		t.Fatalf("expected truncation to centiseconds, got %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	srtValues := []string{"00:00:00,000", "00:12:34,567", "12:00:00,001"}
	for _, text := range srtValues {
		ms, err := Decode(text, DialectSRT)
		if err != nil {
			t.Fatal(err)
		}
		if got := Encode(ms, DialectSRT); got != text {
			t.Fatalf("srt round trip %q -> %q", text, got)
		}
	}

	assValues := []string{"0:00:00.00", "0:12:34.56", "12:00:00.01"}
	for _, text := range assValues {
		ms, err := Decode(text, DialectASS)
		if err != nil {
			t.Fatal(err)
		}
		if got := Encode(ms, DialectASS); got != text {
			t.Fatalf("ass round trip %q -> %q", text, got)
		}
	}
}

func TestForExtension(t *testing.T) {
	if d, ok := ForExtension(".srt"); !ok || d != DialectSRT {
		t.Fatalf("unexpected dialect for .srt: %v %v", d, ok)
	}
	if d, ok := ForExtension(".ASS"); !ok || d != DialectASS {
		t.Fatalf("unexpected dialect for .ASS: %v %v", d, ok)
	}
	if _, ok := ForExtension(".sub"); ok {
		t.Fatal("expected .sub to be unsupported")
	}
}
