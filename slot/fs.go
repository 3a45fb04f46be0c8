package slot

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// CreateFS is a file system that files and directories can be created in.
type CreateFS interface {
	// Sub returns a filesystem for a subdirectory.
	Sub(name string) (sub CreateFS, err error)
	// Create creates a new file for writing.
	Create(name string) (file io.WriteCloser, err error)
	// Mkdir creates a new directory with the specified permissions.
	Mkdir(name string, filemode fs.FileMode) (err error)
}

// Dir is a host directory, readable as an fs.FS and writable as a CreateFS.
type Dir string

var _ fs.FS = Dir("")
var _ CreateFS = Dir("")

func (dir Dir) path(op string, name string) (path string, err error) {
	if !fs.ValidPath(name) {
		err = &fs.PathError{Op: op, Path: name, Err: fs.ErrInvalid}
		return
	}
	path = filepath.Join(string(dir), filepath.FromSlash(name))
	return
}

// Open opens a file for reading.
func (dir Dir) Open(name string) (file fs.File, err error) {
	return os.DirFS(string(dir)).Open(name)
}

// Sub returns the subdirectory name.
func (dir Dir) Sub(name string) (sub CreateFS, err error) {
	path, err := dir.path("sub", name)
	if err != nil {
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if !info.IsDir() {
		err = &fs.PathError{Op: "sub", Path: name, Err: fs.ErrInvalid}
		return
	}

	sub = Dir(path)
	return
}

// Create creates or truncates the file name.
func (dir Dir) Create(name string) (file io.WriteCloser, err error) {
	path, err := dir.path("create", name)
	if err != nil {
		return
	}

	return os.Create(path)
}

// Mkdir creates the directory name.
func (dir Dir) Mkdir(name string, filemode fs.FileMode) (err error) {
	path, err := dir.path("mkdir", name)
	if err != nil {
		return
	}

	return os.Mkdir(path, filemode)
}
