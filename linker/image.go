// Package linker holds the flat code image produced by the assembler and
// hands it off for execution.
package linker

import (
	"io"
)

const (
	// DEFAULT_ORIGIN is the address the image is loaded at.
	DEFAULT_ORIGIN = 0xD000
	// DEFAULT_CAPACITY is the largest image, in bytes.
	DEFAULT_CAPACITY = 8192
)

// Image is a fixed capacity, append-only code buffer anchored at Origin.
type Image struct {
	Origin   uint32 // Load address of the first byte.
	Capacity int    // Capacity in bytes.

	Data []byte
}

// NewImage returns an empty image at the default origin and capacity.
func NewImage() (image *Image) {
	image = &Image{
		Origin:   DEFAULT_ORIGIN,
		Capacity: DEFAULT_CAPACITY,
	}
	image.Reset()

	return
}

// Reset empties the image. A zero Capacity takes the default.
func (image *Image) Reset() {
	if image.Capacity == 0 {
		image.Capacity = DEFAULT_CAPACITY
	}

	if cap(image.Data) != image.Capacity {
		image.Data = make([]byte, 0, image.Capacity)
	} else {
		image.Data = image.Data[:0]
	}
}

// Emit appends code to the image. If code does not fit, nothing is written
// and ErrImageFull is returned.
func (image *Image) Emit(code ...byte) (err error) {
	if image.Data == nil {
		image.Reset()
	}

	if len(image.Data)+len(code) > image.Capacity {
		err = ErrImageFull
		return
	}

	image.Data = append(image.Data, code...)

	return
}

// Len returns the number of bytes emitted.
func (image *Image) Len() int {
	return len(image.Data)
}

// Bytes returns the emitted bytes.
func (image *Image) Bytes() []byte {
	return image.Data
}

// Cursor returns the load address of the next byte to be emitted.
func (image *Image) Cursor() uint32 {
	return image.Origin + uint32(len(image.Data))
}

// Marshal writes the emitted bytes.
func (image *Image) Marshal(file io.Writer) (err error) {
	_, err = file.Write(image.Data)

	return
}

// Unmarshal replaces the image content with data read from file.
func (image *Image) Unmarshal(file io.Reader) (err error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return
	}

	image.Reset()
	err = image.Emit(data...)

	return
}
