package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/piggynl/overlap/config"
	"github.com/piggynl/overlap/lcs"
)

func TestRender(t *testing.T) {
	r := lcs.Result{Original: 7, Candidate: 6, Common: 4, Ratio: 4.0 / 7.0}
	for _, tc := range []struct {
		cfg  config.ReportConfig
		want string
	}{
		{config.ReportConfig{Format: "plain", Precision: 2}, "0.57"},
		{config.ReportConfig{Format: "plain", Precision: 4}, "0.5714"},
		{config.ReportConfig{Format: "percent", Precision: 2}, "57.14%"},
		{config.ReportConfig{Format: "json"}, `{
  "original": 7,
  "candidate": 6,
  "common": 4,
  "ratio": 0.5714285714285714
}
`},
	} {
		var buf bytes.Buffer
		if err := Render(&buf, r, tc.cfg); err != nil {
			t.Fatalf("%+v: %v", tc.cfg, err)
		}
		if got := buf.String(); got != tc.want {
			t.Errorf("%+v: got %q, want %q", tc.cfg, got, tc.want)
		}
	}
}

func TestRenderEdgeRatios(t *testing.T) {
	cfg := config.Default().Report
	for _, tc := range []struct {
		r    lcs.Result
		want string
	}{
		{lcs.Result{Original: 11, Candidate: 11, Common: 11, Ratio: 1}, "1.00"},
		{lcs.Result{Original: 3, Candidate: 3}, "0.00"},
		{lcs.Result{Candidate: 8}, "0.00"},
	} {
		var buf bytes.Buffer
		if err := Render(&buf, tc.r, cfg); err != nil {
			t.Fatal(err)
		}
		if got := buf.String(); got != tc.want {
			t.Errorf("Render(%+v) = %q, want %q", tc.r, got, tc.want)
		}
	}
}

func TestRenderErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, lcs.Result{}, config.ReportConfig{Format: "xml"}); err == nil {
		t.Error("expected error for unsupported format")
	}
	if err := Render(&buf, lcs.Result{}, config.ReportConfig{Format: "plain", Precision: -1}); err == nil {
		t.Error("expected error for negative precision")
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "ans.txt")
	r := lcs.Result{Original: 7, Candidate: 6, Common: 4, Ratio: 4.0 / 7.0}
	if err := Save(name, r, config.Default().Report); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "0.57" {
		t.Errorf("file contains %q, want %q", b, "0.57")
	}

	failed := filepath.Join(dir, "failed.txt")
	if err := Save(failed, r, config.ReportConfig{Format: "xml"}); err == nil {
		t.Fatal("expected error")
	}
	if _, err := os.Stat(failed); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("failed render left a file behind: %v", err)
	}

	if err := Save(filepath.Join(dir, "no", "such", "dir.txt"), r, config.Default().Report); err == nil {
		t.Error("expected error for unwritable destination")
	}
}
