package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/piggynl/overlap/lcs"
)

type Config struct {
	Document DocumentConfig `json:"document"`
	Engine   lcs.Limit      `json:"engine"`
	Report   ReportConfig   `json:"report"`
	Diff     DiffConfig     `json:"diff"`
}

type DocumentConfig struct {
	Encoding string    `json:"encoding"`
	StripBOM bool      `json:"stripBOM"`
	Replace  []Replace `json:"replace"`
}

type ReportConfig struct {
	Format    string `json:"format"`
	Precision int    `json:"precision"`
}

type DiffConfig struct {
	Format string `json:"format"`
}

type Replace struct {
	Regexp bool   `json:"regexp"`
	From   string `json:"from"`
	To     string `json:"to"`
}

var Value Config

// Load installs the defaults and, when --config is given, overlays the
// file on top of them. Flags that override file values are applied last.
func Load(ctx *cli.Context) error {
	Reset(ctx)
	if ctx.IsSet("config") {
		if err := Read(ctx.String("config"), &Value); err != nil {
			return err
		}
	}
	if ctx.IsSet("encoding") {
		Value.Document.Encoding = ctx.String("encoding")
	}
	if ctx.IsSet("format") {
		Value.Report.Format = ctx.String("format")
	}
	return nil
}

func Read(filename string, c *Config) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := json.NewDecoder(file).Decode(c); err != nil {
		return fmt.Errorf("unable to parse %s: %w", filename, err)
	}
	return nil
}

func Save(ctx *cli.Context) error {
	file, err := os.Create(ctx.String("config"))
	if err != nil {
		return err
	}
	enc := json.NewEncoder(file)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Value); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func Reset(*cli.Context) error {
	Value = Default()
	return nil
}

func Default() Config {
	return Config{
		Document: DocumentConfig{
			Encoding: "utf-8",
			StripBOM: true,
			Replace:  []Replace{},
		},
		Engine: lcs.Limit{
			MaxBuffer: 1 << 27,
			MaxCells:  0,
		},
		Report: ReportConfig{
			Format:    "plain",
			Precision: 2,
		},
		Diff: DiffConfig{
			Format: "raw",
		},
	}
}
