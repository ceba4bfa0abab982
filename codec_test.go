package sapling

import "testing"

func TestCodecValid(t *testing.T) {
	if (Codec[int]{}).Valid() {
		t.Error("zero codec reported valid")
	}
	if (Codec[int]{Format: func(int) string { return "" }}).Valid() {
		t.Error("codec without Parse reported valid")
	}
	if !StringCodec().Valid() {
		t.Error("StringCodec not valid")
	}
}

func TestStringCodecRoundTrip(t *testing.T) {
	c := StringCodec()
	for _, s := range []string{"", "leaf", "with space"} {
		got, err := c.Parse(c.Format(s))
		if err != nil || got != s {
			t.Errorf("round trip %q = %q, %v", s, got, err)
		}
	}
}
