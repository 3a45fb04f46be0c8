// Package config loads assembler settings from a Starlark file.
//
// The file assigns top level names:
//
//	origin = 0xD000
//	capacity = 8192
//	source = "ASRC"
//	output = "BUILT"
//	include_path = ["lib", "/usr/share/ez80"]
//	max_include_depth = 8
//	max_labels = 0
//	symbols = {"SCREEN": 0xD40000}
//	emulator = ["cemu", "--load", "{image}"]
//
// Names starting with '_' are private to the file.
package config

import (
	"errors"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/golang/glog"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ez80asm/asm"
	"github.com/ezrec/ez80asm/linker"
	"github.com/ezrec/ez80asm/preproc"
)

const (
	DEFAULT_FILE   = "ez80asm.star" // Config file looked for in the working directory.
	DEFAULT_SOURCE = "ASRC"         // Default source slot.
	DEFAULT_OUTPUT = "BUILT"        // Default output slot.
)

// Config holds assembler settings.
type Config struct {
	Origin          uint32
	Capacity        int
	Source          string
	Output          string
	IncludePath     []string
	MaxIncludeDepth int
	MaxLabels       int
	Symbols         map[string]uint32
	Emulator        []string
}

// Default returns the default settings.
func Default() *Config {
	return &Config{
		Origin:          linker.DEFAULT_ORIGIN,
		Capacity:        linker.DEFAULT_CAPACITY,
		Source:          DEFAULT_SOURCE,
		Output:          DEFAULT_OUTPUT,
		MaxIncludeDepth: preproc.DEFAULT_MAX_DEPTH,
		Symbols:         map[string]uint32{},
	}
}

// Assembler returns an assembler with these settings and symbols
// predefined. The Loader and Launcher are left for the caller.
func (cfg *Config) Assembler() (assembler *asm.Assembler) {
	assembler = &asm.Assembler{
		Origin:          cfg.Origin,
		Capacity:        cfg.Capacity,
		MaxLabels:       cfg.MaxLabels,
		MaxIncludeDepth: cfg.MaxIncludeDepth,
	}
	for name, value := range cfg.Symbols {
		assembler.Predefine(name, value)
	}
	return
}

// Names visible to config files.
var predeclared = starlark.StringDict{
	"DEFAULT_ORIGIN":   starlark.MakeInt(linker.DEFAULT_ORIGIN),
	"DEFAULT_CAPACITY": starlark.MakeInt(linker.DEFAULT_CAPACITY),
}

// LoadFile loads settings from path. A missing file gives the defaults.
func LoadFile(path string) (cfg *Config, err error) {
	src, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		glog.V(1).Infof("config: %v not found, using defaults", path)
		cfg = Default()
		err = nil
		return
	}
	if err != nil {
		return
	}

	return Load(path, src)
}

// Load executes Starlark source and applies its settings over the defaults.
func Load(filename string, src any) (cfg *Config, err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			glog.Infof("%v: %v", filename, msg)
		},
	}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, predeclared)
	if err != nil {
		return
	}

	cfg = Default()
	for _, name := range slices.Sorted(maps.Keys(globals)) {
		if strings.HasPrefix(name, "_") {
			continue
		}
		err = cfg.set(name, globals[name])
		if err != nil {
			cfg = nil
			err = &ErrConfig{Name: name, Err: err}
			return
		}
	}

	return
}

func (cfg *Config) set(name string, value starlark.Value) (err error) {
	switch name {
	case "origin":
		var v int64
		v, err = toInt(value, 0, 0xffffff)
		cfg.Origin = uint32(v)
	case "capacity":
		var v int64
		v, err = toInt(value, 1, 0x1000000)
		cfg.Capacity = int(v)
	case "max_include_depth":
		var v int64
		v, err = toInt(value, 1, 1024)
		cfg.MaxIncludeDepth = int(v)
	case "max_labels":
		var v int64
		v, err = toInt(value, 0, 1<<20)
		cfg.MaxLabels = int(v)
	case "source":
		cfg.Source, err = toString(value)
	case "output":
		cfg.Output, err = toString(value)
	case "include_path":
		cfg.IncludePath, err = toStrings(value)
	case "emulator":
		cfg.Emulator, err = toStrings(value)
	case "symbols":
		cfg.Symbols, err = toSymbols(value)
	default:
		err = ErrConfigUnknown
	}

	return
}

func toInt(value starlark.Value, low, high int64) (v int64, err error) {
	i, ok := value.(starlark.Int)
	if !ok {
		err = ErrConfigType
		return
	}
	v, ok = i.Int64()
	if !ok || v < low || v > high {
		err = ErrConfigRange
		return
	}
	return
}

func toString(value starlark.Value) (str string, err error) {
	str, ok := starlark.AsString(value)
	if !ok {
		err = ErrConfigType
	}
	return
}

// toStrings accepts a list or tuple of strings, or a single string.
func toStrings(value starlark.Value) (strs []string, err error) {
	if str, ok := starlark.AsString(value); ok {
		strs = []string{str}
		return
	}

	iterable, ok := value.(starlark.Iterable)
	if !ok {
		err = ErrConfigType
		return
	}

	iter := iterable.Iterate()
	defer iter.Done()

	var item starlark.Value
	for iter.Next(&item) {
		str, ok := starlark.AsString(item)
		if !ok {
			strs = nil
			err = ErrConfigType
			return
		}
		strs = append(strs, str)
	}

	return
}

func toSymbols(value starlark.Value) (symbols map[string]uint32, err error) {
	dict, ok := value.(*starlark.Dict)
	if !ok {
		err = ErrConfigType
		return
	}

	symbols = make(map[string]uint32, dict.Len())
	for _, item := range dict.Items() {
		name, ok := starlark.AsString(item[0])
		if !ok {
			err = ErrConfigType
			return
		}
		var v int64
		v, err = toInt(item[1], -0x80000000, 0xffffffff)
		if err != nil {
			return
		}
		symbols[name] = uint32(v)
	}

	return
}
