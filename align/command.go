package align

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/piggynl/overlap/config"
	"github.com/piggynl/overlap/document"
)

// Diff is the action of the diff command:
// diff <original-file> <candidate-file> [output-file].
func Diff(ctx *cli.Context) error {
	if ctx.NArg() < 2 || ctx.NArg() > 3 {
		cli.ShowCommandHelp(ctx, ctx.Command.Name)
		return cli.Exit("", 1)
	}
	original, err := document.Load(ctx.Args().Get(0), config.Value.Document)
	if err != nil {
		return cli.Exit(err, 1)
	}
	candidate, err := document.Load(ctx.Args().Get(1), config.Value.Document)
	if err != nil {
		return cli.Exit(err, 1)
	}
	segs := Segments(original, candidate)
	log.Printf("%d of %d runes aligned", Shared(segs), len(original))

	var w io.Writer = ctx.App.Writer
	if ctx.NArg() == 3 {
		output, err := os.Create(ctx.Args().Get(2))
		if err != nil {
			return cli.Exit(err, 1)
		}
		defer output.Close()
		w = output
	}
	if err := Render(w, segs, config.Value.Diff.Format); err != nil {
		return cli.Exit(fmt.Errorf("unable to write alignment: %w", err), 1)
	}
	return nil
}
