package compare

import (
	"log"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/piggynl/overlap/config"
	"github.com/piggynl/overlap/document"
	"github.com/piggynl/overlap/lcs"
	"github.com/piggynl/overlap/report"
)

// Files loads both documents, compares them and saves the report. The
// output file is only written after the comparison succeeded.
func Files(originalFile, candidateFile, outputFile string, cfg config.Config) (lcs.Result, error) {
	original, err := document.Load(originalFile, cfg.Document)
	if err != nil {
		return lcs.Result{}, err
	}
	candidate, err := document.Load(candidateFile, cfg.Document)
	if err != nil {
		return lcs.Result{}, err
	}
	start := time.Now()
	r, err := cfg.Engine.Compare(original, candidate)
	if err != nil {
		return lcs.Result{}, err
	}
	log.Printf("compared %d and %d runes in %s: %d in common",
		r.Original, r.Candidate, time.Since(start).Round(time.Millisecond), r.Common)
	if err := report.Save(outputFile, r, cfg.Report); err != nil {
		return lcs.Result{}, err
	}
	return r, nil
}

// Compare is the default action: <original-file> <candidate-file> <output-file>.
func Compare(ctx *cli.Context) error {
	if ctx.NArg() != 3 {
		cli.ShowAppHelp(ctx)
		return cli.Exit("", 1)
	}
	args := ctx.Args()
	if _, err := Files(args.Get(0), args.Get(1), args.Get(2), config.Value); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}
