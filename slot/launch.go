// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package slot

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/golang/glog"

	"github.com/ezrec/ez80asm/linker"
)

const (
	DEFAULT_OUTPUT = "BUILT" // Slot a launched image is saved to.
)

// Launcher saves the image to a slot, then hands it to Next.
type Launcher struct {
	Store *Store
	Name  string          // Output slot. Empty is DEFAULT_OUTPUT.
	Next  linker.Launcher // If set, runs the saved image.
}

var _ linker.Launcher = (*Launcher)(nil)

func (l *Launcher) Launch(ctx context.Context, origin uint32, code []byte) (err error) {
	name := l.Name
	if len(name) == 0 {
		name = DEFAULT_OUTPUT
	}

	image := &linker.Image{Origin: origin, Capacity: len(code), Data: code}
	err = l.Store.Save(name, image)
	if err != nil {
		return
	}

	if l.Next == nil {
		return
	}

	return l.Next.Launch(ctx, origin, code)
}

// Exec runs an external emulator on the image.
//
// In each argument, "{image}" is replaced by the path of a temporary file
// holding the image, and "{origin}" by the load address in hex. If no
// argument names the image, its path is appended.
type Exec struct {
	Command []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

var _ linker.Launcher = (*Exec)(nil)

func (ex *Exec) Launch(ctx context.Context, origin uint32, code []byte) (err error) {
	if len(ex.Command) == 0 {
		err = ErrCommandMissing
		return
	}

	tmp, err := os.CreateTemp("", "ez80asm-*.bin")
	if err != nil {
		return
	}
	defer os.Remove(tmp.Name())

	_, err = tmp.Write(code)
	cerr := tmp.Close()
	if err == nil {
		err = cerr
	}
	if err != nil {
		return
	}

	args := ex.Args(origin, tmp.Name())

	glog.V(1).Infof("exec: %v", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = ex.Stdin
	cmd.Stdout = ex.Stdout
	cmd.Stderr = ex.Stderr

	err = cmd.Run()

	return
}

// Args returns the command line for an image at path.
func (ex *Exec) Args(origin uint32, path string) (args []string) {
	replacer := strings.NewReplacer(
		"{image}", path,
		"{origin}", fmt.Sprintf("0x%06x", origin),
	)

	named := false
	for _, arg := range ex.Command {
		if strings.Contains(arg, "{image}") {
			named = true
		}
		args = append(args, replacer.Replace(arg))
	}
	if !named {
		args = append(args, path)
	}

	return
}
