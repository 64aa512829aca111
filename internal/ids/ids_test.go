package ids

import (
	"errors"
	"testing"
)

var allKinds = []Kind{Artist, Album, Track, Release, Recording}

func TestEncode(t *testing.T) {
	tests := []struct {
		id   int64
		kind Kind
		want string
	}{
		{1566021, Artist, "aaaaaaaa-aaaa-aaaa-aaaa-000001566021"},
		{0, Album, "bbbbbbbb-bbbb-bbbb-bbbb-000000000000"},
		{77646170, Track, "cccccccc-cccc-cccc-cccc-000077646170"},
		{MaxID, Release, "dddddddd-dddd-dddd-dddd-999999999999"},
		{42, Recording, "eeeeeeee-eeee-eeee-eeee-000000000042"},
	}

	for _, tt := range tests {
		if got := Encode(tt.id, tt.kind); got != tt.want {
			t.Errorf("Encode(%d, %s) = %s, want %s", tt.id, tt.kind, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	ids := []int64{0, 1, 9, 10, 123456, 77646170, 100000000000, MaxID}

	for _, kind := range allKinds {
		for _, id := range ids {
			gotID, gotKind, err := Decode(Encode(id, kind))
			if err != nil {
				t.Fatalf("Decode(Encode(%d, %s)) failed: %v", id, kind, err)
			}
			if gotID != id || gotKind != kind {
				t.Errorf("Decode(Encode(%d, %s)) = (%d, %s)", id, kind, gotID, gotKind)
			}
		}
	}
}

func TestEncodeInjective(t *testing.T) {
	seen := make(map[string]struct{})
	for _, kind := range allKinds {
		for id := int64(0); id < 500; id++ {
			s := Encode(id, kind)
			if _, dup := seen[s]; dup {
				t.Fatalf("collision for %s", s)
			}
			seen[s] = struct{}{}
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"canonical uuid", "f59c5520-5f46-4d2c-b2c4-822eabf53419"},
		{"unknown kind", "ffffffff-ffff-ffff-ffff-000000000001"},
		{"mixed prefix", "aaaaaaaa-aaaa-bbbb-aaaa-000000000001"},
		{"hex digits in id", "aaaaaaaa-aaaa-aaaa-aaaa-00000000000a"},
		{"short id group", "aaaaaaaa-aaaa-aaaa-aaaa-00000001"},
		{"braced", "{aaaaaaaa-aaaa-aaaa-aaaa-000000000001}"},
		{"four groups", "aaaaaaaa-aaaa-aaaa-000000000001"},
		{"not hex", "kkkkkkkk-kkkk-kkkk-kkkk-000000000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode(tt.value)
			if !errors.Is(err, ErrMalformedIdentifier) {
				t.Errorf("Decode(%q) error = %v, want ErrMalformedIdentifier", tt.value, err)
			}
		})
	}
}

func TestHasKind(t *testing.T) {
	path := "/api/v0.4/album/" + Encode(5, Album)

	if !HasKind(path, Album) {
		t.Error("expected album tag to be found")
	}
	if HasKind(path, Artist) {
		t.Error("did not expect artist tag")
	}
	if HasKind("/api/v0.4/album/f59c5520-5f46-4d2c-b2c4-822eabf53419", Album) {
		t.Error("canonical uuid should not carry a kind tag")
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range allKinds {
		got, err := ParseKind(kind.String())
		if err != nil || got != kind {
			t.Errorf("ParseKind(%q) = %v, %v", kind.String(), got, err)
		}
	}

	if _, err := ParseKind("playlist"); err == nil {
		t.Error("expected error for unknown kind")
	}
}
