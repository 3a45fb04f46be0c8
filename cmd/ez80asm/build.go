package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ezrec/ez80asm/asm"
	"github.com/ezrec/ez80asm/config"
	"github.com/ezrec/ez80asm/linker"
	"github.com/ezrec/ez80asm/slot"
)

type buildOptions struct {
	*options
	defines []string
	listing bool
	stdout  bool
	hex     bool
}

func (opts *buildOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&opts.defines, "define", "D", nil, "predefine a label, as NAME or NAME=VALUE")
	cmd.Flags().BoolVarP(&opts.listing, "listing", "l", false, "print an address and code listing")
}

// parseDefine splits NAME=VALUE. A bare NAME is 1.
func parseDefine(define string) (name string, value uint32, err error) {
	name, text, found := strings.Cut(define, "=")
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		err = errDefine
		return
	}

	value = 1
	if found {
		value, err = asm.ParseNumber(strings.TrimSpace(text))
	}

	return
}

// assemble builds the source slot named by args, or the configured source,
// handing the image to the launcher made by launch.
func (opts *buildOptions) assemble(cmd *cobra.Command, args []string, launch func(*config.Config, *slot.Store) linker.Launcher) (res *asm.Result, err error) {
	cfg, err := opts.load()
	if err != nil {
		return
	}

	name := cfg.Source
	if len(args) > 0 {
		name = args[0]
	}

	store := slot.NewStore(append([]string{"."}, cfg.IncludePath...)...)

	assembler := cfg.Assembler()
	for _, define := range opts.defines {
		var label string
		var value uint32
		label, value, err = parseDefine(define)
		if err != nil {
			err = fmt.Errorf("-D %v: %w", define, err)
			return
		}
		assembler.Predefine(label, value)
	}

	stderr := cmd.ErrOrStderr()
	assembler.Loader = store
	assembler.Report = func(err error) {
		fmt.Fprintln(stderr, err)
	}
	if launch != nil {
		assembler.Launcher = launch(cfg, store)
	}

	lines, err := store.Load(name)
	if err != nil {
		return
	}

	res, err = assembler.Build(cmd.Context(), name, lines)
	if err != nil {
		return
	}

	if opts.listing {
		out := cmd.OutOrStdout()
		if opts.stdout {
			out = stderr
		}
		_, err = res.Listing.WriteTo(out)
		if err != nil {
			return
		}
	}

	fmt.Fprintln(stderr, f("build complete: %d bytes at 0x%06x", res.Image.Len(), res.Image.Origin))

	if count := len(res.Diagnostics); count > 0 {
		glog.Warningf("%v: %d diagnostics", name, count)
		err = errDiagnostics
	}

	return
}

// writeImage writes the image raw or as a hex dump.
func (opts *buildOptions) writeImage(out io.Writer) linker.Launcher {
	return linker.LauncherFunc(func(ctx context.Context, origin uint32, code []byte) (err error) {
		if opts.hex {
			dumper := hex.Dumper(out)
			_, err = dumper.Write(code)
			if err == nil {
				err = dumper.Close()
			}
			return
		}

		if file, ok := out.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
			err = errTerminal
			return
		}

		_, err = out.Write(code)
		return
	})
}

func newBuildCmd(parent *options) (cmd *cobra.Command) {
	opts := &buildOptions{options: parent}

	cmd = &cobra.Command{
		Use:   "build [source]",
		Short: "Assemble a source slot and save the image",
		Long: `Build assembles the source slot, which defaults to the configured
source, and saves the image to the configured output slot.

The image is saved even if some lines failed to assemble; the exit
status is 1 in that case.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			_, err = opts.assemble(cmd, args, func(cfg *config.Config, store *slot.Store) linker.Launcher {
				if opts.stdout {
					return opts.writeImage(cmd.OutOrStdout())
				}
				return &slot.Launcher{Store: store, Name: cfg.Output}
			})
			return
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "write the image to standard output instead of the output slot")
	cmd.Flags().BoolVar(&opts.hex, "hex", false, "with --stdout, write a hex dump")

	return
}

func emulator(cmd *cobra.Command, cfg *config.Config) *slot.Exec {
	return &slot.Exec{
		Command: cfg.Emulator,
		Stdin:   cmd.InOrStdin(),
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
	}
}

// launchImage runs a previously built image slot without assembling.
func (opts *buildOptions) launchImage(cmd *cobra.Command, name string) (err error) {
	cfg, err := opts.load()
	if err != nil {
		return
	}

	store := slot.NewStore(append([]string{"."}, cfg.IncludePath...)...)
	image := &linker.Image{Origin: cfg.Origin, Capacity: cfg.Capacity}
	err = store.LoadImage(name, image)
	if err != nil {
		return
	}

	err = image.Run(cmd.Context(), emulator(cmd, cfg))
	return
}

func newRunCmd(parent *options) (cmd *cobra.Command) {
	opts := &buildOptions{options: parent}
	var image string

	cmd = &cobra.Command{
		Use:   "run [source]",
		Short: "Assemble, save, and launch the image in the configured emulator",
		Long: `Run builds the source slot like build, then hands the saved image to
the configured emulator command. With --image, the named image slot is
launched as is, without assembling.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if len(image) > 0 {
				if len(args) > 0 {
					err = errImageSource
					return
				}
				err = opts.launchImage(cmd, image)
				return
			}
			_, err = opts.assemble(cmd, args, func(cfg *config.Config, store *slot.Store) linker.Launcher {
				return &slot.Launcher{
					Store: store,
					Name:  cfg.Output,
					Next:  emulator(cmd, cfg),
				}
			})
			return
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVar(&image, "image", "", "launch the built image `slot` instead of assembling")

	return
}

func newCheckCmd(parent *options) (cmd *cobra.Command) {
	opts := &buildOptions{options: parent}

	cmd = &cobra.Command{
		Use:   "check [source]",
		Short: "Assemble a source slot without saving",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			_, err = opts.assemble(cmd, args, nil)
			return
		},
	}

	opts.addFlags(cmd)

	return
}
