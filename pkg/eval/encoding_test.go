package eval

import "testing"

func TestLookupEncoding(t *testing.T) {
	for _, test := range []struct{ label, name string }{
		{"utf-8", "utf-8"},
		{"UTF8", "utf-8"},
		{"latin1", "windows-1252"},
		{"ibm866", "ibm866"},
	} {
		enc, err := LookupEncoding(test.label)
		if err != nil {
			t.Errorf("LookupEncoding(%q) -> error %v", test.label, err)
			continue
		}
		if enc.Name != test.name {
			t.Errorf("LookupEncoding(%q).Name = %q, want %q", test.label, enc.Name, test.name)
		}
	}
	if _, err := LookupEncoding("klingon"); err == nil {
		t.Errorf("LookupEncoding(\"klingon\") didn't fail")
	}
}

func TestEncodeCode(t *testing.T) {
	ibm866, _ := LookupEncoding("ibm866")
	for _, test := range []struct {
		enc  *Encoding
		code float64
		want string
	}{
		{UTF8, 65, "A"},
		{UTF8, 0x4f60, "你"},
		{UTF8, 0xd800, "?"},
		{UTF8, 0x110000, "?"},
		{ibm866, 0x0416, "\x86"},
		{ibm866, 0x00e9, "?"},
	} {
		if got := test.enc.EncodeCode(test.code); got != test.want {
			t.Errorf("%s.EncodeCode(%v) = %q, want %q", test.enc.Name, test.code, got, test.want)
		}
	}
}
