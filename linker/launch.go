// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package linker

import (
	"context"

	"github.com/golang/glog"
)

// Launcher transfers control to a completed image.
type Launcher interface {
	// Launch runs code loaded at origin.
	Launch(ctx context.Context, origin uint32, code []byte) (err error)
}

// LauncherFunc adapts a function to a Launcher.
type LauncherFunc func(ctx context.Context, origin uint32, code []byte) error

func (fn LauncherFunc) Launch(ctx context.Context, origin uint32, code []byte) error {
	return fn(ctx, origin, code)
}

// Run hands the image to launcher.
func (image *Image) Run(ctx context.Context, launcher Launcher) (err error) {
	defer func() {
		if err != nil {
			err = &ErrLaunch{Origin: image.Origin, Err: err}
		}
	}()

	err = ctx.Err()
	if err != nil {
		return
	}

	glog.V(1).Infof("launch: %d bytes at 0x%06x", image.Len(), image.Origin)

	err = launcher.Launch(ctx, image.Origin, image.Bytes())

	return
}
