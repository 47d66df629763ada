package util

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/urfave/cli/v2"
)

var cpuProfile, memProfile *os.File

func StartProfile(ctx *cli.Context) error {
	var err error
	if ctx.IsSet("cpuprof") {
		filename := ctx.String("cpuprof")
		if cpuProfile, err = os.Create(filename); err != nil {
			return fmt.Errorf("unable to create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(cpuProfile); err != nil {
			cpuProfile.Close()
			cpuProfile = nil
			return err
		}
	}
	if ctx.IsSet("memprof") {
		filename := ctx.String("memprof")
		if memProfile, err = os.Create(filename); err != nil {
			return fmt.Errorf("unable to create memory profile: %w", err)
		}
	}
	return nil
}

// StopProfile flushes whatever StartProfile opened. It runs as an After
// hook, so it is reached even when the action failed.
func StopProfile(*cli.Context) error {
	var err error
	if cpuProfile != nil {
		pprof.StopCPUProfile()
		err = cpuProfile.Close()
		cpuProfile = nil
	}
	if memProfile != nil {
		if werr := pprof.WriteHeapProfile(memProfile); werr != nil && err == nil {
			err = werr
		}
		if cerr := memProfile.Close(); cerr != nil && err == nil {
			err = cerr
		}
		memProfile = nil
	}
	return err
}
