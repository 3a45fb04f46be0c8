// Package asm is a two pass assembler for the Z80 and eZ80.
//
// Pass one sizes every line and defines labels at their offset from the
// origin. Pass two encodes each line, resolving label references, and emits
// the bytes into a flat code image.
package asm

import (
	"context"
	"errors"
	"maps"
	"slices"

	"github.com/golang/glog"

	"github.com/ezrec/ez80asm/linker"
	"github.com/ezrec/ez80asm/preproc"
	"github.com/ezrec/ez80asm/source"
)

// Assembler converts source lines into a code image.
type Assembler struct {
	Origin          uint32 // Load address of the image.
	Capacity        int    // Image capacity in bytes.
	MaxLabels       int    // Label table limit. Zero is unlimited.
	MaxIncludeDepth int    // Include nesting limit. Zero is the preprocessor default.

	Loader   preproc.Loader  // Resolves include names.
	Launcher linker.Launcher // If set, Build hands the image to it.

	Report func(err error) // If set, called with each diagnostic as it occurs.

	predefine map[string]uint32
}

// NewAssembler returns an assembler for the default origin and capacity.
func NewAssembler() *Assembler {
	return &Assembler{
		Origin:   linker.DEFAULT_ORIGIN,
		Capacity: linker.DEFAULT_CAPACITY,
	}
}

// Predefine defines a label before the first pass of every run.
func (asm *Assembler) Predefine(name string, value uint32) {
	if asm.predefine == nil {
		asm.predefine = map[string]uint32{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// Result is the output of an assembly run.
type Result struct {
	Image       *linker.Image
	Symbols     *Symbols
	Listing     *Listing
	Diagnostics []error
}

// Err returns all diagnostics joined, or nil if there were none.
func (res *Result) Err() error {
	return errors.Join(res.Diagnostics...)
}

// Assemble runs both passes over already preprocessed lines.
func (asm *Assembler) Assemble(lines []source.Line) (res *Result) {
	res = &Result{
		Image: &linker.Image{
			Origin:   asm.Origin,
			Capacity: asm.Capacity,
		},
		Symbols: &Symbols{Limit: asm.MaxLabels},
		Listing: &Listing{},
	}
	res.Image.Reset()

	report := func(line source.Line, err error) {
		err = &ErrSyntax{Line: line, Err: err}
		res.Diagnostics = append(res.Diagnostics, err)
		if asm.Report != nil {
			asm.Report(err)
		}
	}

	for _, name := range slices.Sorted(maps.Keys(asm.predefine)) {
		err := res.Symbols.Define(name, asm.predefine[name])
		if err != nil {
			report(source.Line{Name: "-D", Text: name}, err)
		}
	}

	stmts := make([]Statement, len(lines))
	perrs := make([]error, len(lines))
	for n, line := range lines {
		stmts[n], perrs[n] = Parse(line)
	}

	glog.V(1).Infof("pass 1: %d lines", len(lines))

	var pc uint32
	for n := range stmts {
		stmt := &stmts[n]
		if stmt.Labeled {
			err := res.Symbols.Define(stmt.Label, pc)
			if err != nil {
				report(stmt.Line, err)
			}
		}
		pc += uint32(stmt.Size())
	}

	glog.V(1).Infof("pass 1: %d bytes, %d labels", pc, res.Symbols.Len())
	glog.V(1).Infof("pass 2: origin 0x%06x", asm.Origin)

	pc = 0
	for n := range stmts {
		stmt := &stmts[n]
		size := uint32(stmt.Size())
		address := asm.Origin + pc
		pc += size

		if perrs[n] != nil {
			report(stmt.Line, perrs[n])
			continue
		}

		code, err := stmt.Encode(res.Symbols, true)
		if err != nil {
			report(stmt.Line, err)
			continue
		}

		if len(code) > 0 {
			err = res.Image.Emit(code...)
			if err != nil {
				report(stmt.Line, err)
				continue
			}
		}

		if glog.V(2) {
			glog.Infof("%v: %06x % x", stmt.Line, address, code)
		}

		res.Listing.Records = append(res.Listing.Records, Record{
			Line:    stmt.Line,
			Address: address,
			Code:    code,
		})
	}

	glog.V(1).Infof("pass 2: %d bytes emitted, %d diagnostics", res.Image.Len(), len(res.Diagnostics))

	return
}

// Build expands includes in the named source, assembles it, and if a
// Launcher is set, hands the image to it. The image is launched even if
// lines failed to assemble; check Result.Err.
//
// The returned error is set only if preprocessing or the launch failed.
func (asm *Assembler) Build(ctx context.Context, name string, lines []source.Line) (res *Result, err error) {
	pp := &preproc.Preprocessor{
		Loader:   asm.Loader,
		MaxDepth: asm.MaxIncludeDepth,
	}

	lines, err = pp.Expand(name, lines)
	if err != nil {
		return
	}

	res = asm.Assemble(lines)

	if asm.Launcher != nil {
		err = res.Image.Run(ctx, asm.Launcher)
	}

	return
}
