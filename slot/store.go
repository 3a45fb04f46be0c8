// Package slot stores programs as named slots in host directories.
//
// A slot is a file found by name in one of a list of root file systems.
// Source slots are read as lines, and built images are written back as raw
// binaries.
package slot

import (
	"errors"
	"io"
	"io/fs"
	"path"

	"github.com/golang/glog"

	"github.com/ezrec/ez80asm/linker"
	"github.com/ezrec/ez80asm/source"
)

const (
	DEFAULT_EXT = ".asm" // Extension tried for source slots.
)

// Store resolves slot names.
type Store struct {
	Roots []fs.FS  // Searched in order when reading.
	Out   CreateFS // Written when saving. Nil is read-only.
	Ext   string   // Extension tried after the bare name. Empty is DEFAULT_EXT.
}

// NewStore returns a store reading from the directories in order, and
// writing to the first one.
func NewStore(dirs ...string) (store *Store) {
	store = &Store{}
	for _, dir := range dirs {
		store.Roots = append(store.Roots, Dir(dir))
	}
	if len(dirs) > 0 {
		store.Out = Dir(dirs[0])
	}
	return
}

func (store *Store) ext() string {
	if len(store.Ext) == 0 {
		return DEFAULT_EXT
	}
	return store.Ext
}

// Open finds the slot name, trying each root with the bare name and then
// with the extension.
func (store *Store) Open(name string) (file fs.File, err error) {
	for _, root := range store.Roots {
		for _, try := range []string{name, name + store.ext()} {
			file, err = root.Open(try)
			if err == nil {
				info, serr := file.Stat()
				if serr == nil && info.IsDir() {
					file.Close()
					continue
				}
				glog.V(2).Infof("slot %v: %v", name, try)
				return
			}
			if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, fs.ErrInvalid) {
				err = &ErrSlot{Name: name, Err: err}
				return
			}
		}
	}

	file = nil
	err = &ErrSlot{Name: name, Err: errors.Join(ErrSlotMissing, fs.ErrNotExist)}
	return
}

// Load reads the slot name as source lines.
func (store *Store) Load(name string) (lines []source.Line, err error) {
	file, err := store.Open(name)
	if err != nil {
		return
	}
	defer file.Close()

	lines, err = source.Split(file, name)
	if err != nil {
		err = &ErrSlot{Name: name, Err: err}
		return
	}

	if len(lines) == 0 {
		err = &ErrSlot{Name: name, Err: ErrSlotEmpty}
		return
	}

	return
}

// Create opens the slot name for writing, creating parent directories.
func (store *Store) Create(name string) (file io.WriteCloser, err error) {
	defer func() {
		if err != nil {
			err = &ErrSlot{Name: name, Err: err}
		}
	}()

	if store.Out == nil {
		err = ErrSlotReadOnly
		return
	}

	dir, base := path.Split(path.Clean(name))
	filesys := store.Out
	for _, elem := range splitDir(dir) {
		var sub CreateFS
		sub, err = filesys.Sub(elem)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return
			}
			err = filesys.Mkdir(elem, 0755)
			if err != nil {
				return
			}
			sub, err = filesys.Sub(elem)
			if err != nil {
				return
			}
		}
		filesys = sub
	}

	file, err = filesys.Create(base)
	return
}

func splitDir(dir string) (elems []string) {
	dir = path.Clean(dir)
	if dir == "." || dir == "/" {
		return
	}
	parent, base := path.Split(dir)
	elems = append(splitDir(parent), base)
	return
}

// Save writes the image to the slot name.
func (store *Store) Save(name string, image *linker.Image) (err error) {
	file, err := store.Create(name)
	if err != nil {
		return
	}

	err = image.Marshal(file)
	cerr := file.Close()
	if err == nil {
		err = cerr
	}
	if err != nil {
		err = &ErrSlot{Name: name, Err: err}
		return
	}

	glog.V(1).Infof("slot %v: saved %d bytes", name, image.Len())

	return
}

// LoadImage reads the slot name into image, replacing its content. The
// image keeps its origin and capacity.
func (store *Store) LoadImage(name string, image *linker.Image) (err error) {
	file, err := store.Open(name)
	if err != nil {
		return
	}
	defer file.Close()

	err = image.Unmarshal(file)
	if err != nil {
		err = &ErrSlot{Name: name, Err: err}
		return
	}

	if image.Len() == 0 {
		err = &ErrSlot{Name: name, Err: ErrSlotEmpty}
		return
	}

	glog.V(1).Infof("slot %v: loaded %d bytes", name, image.Len())

	return
}
