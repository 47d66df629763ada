package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/piggynl/overlap/config"
)

func TestDecode(t *testing.T) {
	utf8Cfg := config.Default().Document
	for _, tc := range []struct {
		name string
		raw  []byte
		cfg  config.DocumentConfig
		want string
	}{
		{"ascii", []byte("hello world"), utf8Cfg, "hello world"},
		{"multibyte", []byte("论文查重"), utf8Cfg, "论文查重"},
		{"bom", []byte("\xef\xbb\xbfabc"), utf8Cfg, "abc"},
		{"keep bom", []byte("\xef\xbb\xbfabc"), config.DocumentConfig{Encoding: "utf-8"}, "\ufeffabc"},
		{"empty", nil, utf8Cfg, ""},
		{"gbk", []byte{0xb3, 0xad, 0xcf, 0xae}, config.DocumentConfig{Encoding: "gbk"}, "抄袭"},
		{"utf-16le", []byte{'a', 0, 'b', 0}, config.DocumentConfig{Encoding: "utf-16le"}, "ab"},
		{"whitespace kept", []byte("a \tB\n"), utf8Cfg, "a \tB\n"},
		{
			"replace",
			[]byte("Hello,  World"),
			config.DocumentConfig{Replace: []config.Replace{
				{Regexp: true, From: `\s+`, To: " "},
				{From: ",", To: ""},
			}},
			"Hello World",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(tc.raw, tc.cfg)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tc.want {
				t.Errorf("Decode = %q, want %q", string(got), tc.want)
			}
		})
	}
}

func TestDecodeInvalidUTF8(t *testing.T) {
	_, err := Decode([]byte("ab\xffc"), config.Default().Document)
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("error = %v, want ErrInvalidEncoding", err)
	}
	var de *DecodeError
	if !errors.As(err, &de) || de.Offset != 2 {
		t.Fatalf("unexpected decode error %#v", de)
	}

	// A truncated multibyte sequence at the end.
	_, err = Decode([]byte("ok\xe8\xae"), config.Default().Document)
	if !errors.As(err, &de) || de.Offset != 2 {
		t.Fatalf("truncated sequence: error = %v", err)
	}
}

func TestDecodeUnknownEncoding(t *testing.T) {
	_, err := Decode([]byte("abc"), config.DocumentConfig{Encoding: "no-such-charset"})
	if !errors.Is(err, ErrUnknownEncoding) {
		t.Fatalf("error = %v, want ErrUnknownEncoding", err)
	}
}

func TestDecodeBadRule(t *testing.T) {
	cfg := config.DocumentConfig{Replace: []config.Replace{{Regexp: true, From: "("}}}
	if _, err := Decode([]byte("abc"), cfg); err == nil {
		t.Fatal("expected regexp compile error")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "orig.txt")
	if err := os.WriteFile(name, []byte("今天是星期天"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(name, config.Default().Document)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]rune("今天是星期天"), got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}

	if _, err := Load(filepath.Join(dir, "missing.txt"), config.Default().Document); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: error = %v, want ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte{0xc3, 0x28}, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad, config.Default().Document); !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("invalid file: error = %v, want ErrInvalidEncoding", err)
	}
}
