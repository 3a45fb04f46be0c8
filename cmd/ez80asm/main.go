// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/ezrec/ez80asm/config"
	"github.com/ezrec/ez80asm/translate"
)

var f = translate.From

var (
	errDiagnostics = errors.New(f("assembly failed"))
	errTerminal    = errors.New(f("refusing to write a binary image to a terminal, use --hex"))
	errDefine      = errors.New(f("define must be NAME or NAME=VALUE"))
	errImageSource = errors.New(f("--image runs a built image, and takes no source"))
	errAddress     = errors.New(f("address not in the image"))
)

type options struct {
	config string
	lang   string
}

func (opts *options) load() (cfg *config.Config, err error) {
	cfg, err = config.LoadFile(opts.config)
	if err != nil {
		cfg = nil
		return
	}
	glog.V(1).Infof("config: origin 0x%06x, capacity %d", cfg.Origin, cfg.Capacity)
	return
}

func newRootCmd() (root *cobra.Command) {
	opts := &options{}

	root = &cobra.Command{
		Use:   "ez80asm",
		Short: "Z80 and eZ80 assembler",
		Long: `Ez80asm assembles Z80 and eZ80 source into a flat binary image
loaded at a fixed origin.

Sources and images are named slots, found as files in the current
directory and the configured include path. Settings are read from a
Starlark file, ez80asm.star by default.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if len(opts.lang) > 0 {
				translate.Use(opts.lang)
			}
		},
	}

	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	root.PersistentFlags().StringVarP(&opts.config, "config", "c", config.DEFAULT_FILE, "configuration file")
	root.PersistentFlags().StringVar(&opts.lang, "lang", "", "message `locale`, such as en-US")

	root.AddCommand(
		newBuildCmd(opts),
		newRunCmd(opts),
		newCheckCmd(opts),
		newServeCmd(opts),
		newWhereCmd(opts),
		newTableCmd(),
	)

	return
}

func main() {
	// glog registers its flags on the standard flag set, which cobra parses.
	flag.CommandLine.Parse([]string{})
	defer glog.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd()
	err := root.ExecuteContext(ctx)
	if errors.Is(err, errDiagnostics) {
		glog.Flush()
		os.Exit(1)
	}
	if err != nil {
		glog.Exitf("%v", err)
	}
}
