package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/piggynl/overlap/config"
	"github.com/piggynl/overlap/lcs"
	"github.com/piggynl/overlap/util"
)

var formatter = map[string]func(io.Writer, lcs.Result, int) error{
	"plain": func(w io.Writer, r lcs.Result, prec int) error {
		_, err := fmt.Fprintf(w, "%.*f", prec, r.Ratio)
		return err
	},
	"percent": func(w io.Writer, r lcs.Result, prec int) error {
		_, err := fmt.Fprintf(w, "%.*f%%", prec, r.Ratio*100)
		return err
	},
	"json": func(w io.Writer, r lcs.Result, _ int) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	},
}

func Render(w io.Writer, r lcs.Result, cfg config.ReportConfig) error {
	format, ok := formatter[cfg.Format]
	if !ok {
		return fmt.Errorf("unsupported format %q", cfg.Format)
	}
	if cfg.Precision < 0 {
		return fmt.Errorf("negative precision %d", cfg.Precision)
	}
	return format(w, r, cfg.Precision)
}

// Save renders r completely before creating filename, so a failed render
// leaves no file behind.
func Save(filename string, r lcs.Result, cfg config.ReportConfig) error {
	buf := util.GetBuffer()
	defer util.PutBuffer(buf)
	if err := Render(buf, r, cfg); err != nil {
		return err
	}
	return os.WriteFile(filename, buf.Bytes(), 0o644)
}
