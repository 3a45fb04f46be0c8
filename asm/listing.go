package asm

import (
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/ez80asm/source"
)

// Record is the listing entry of a single source line.
type Record struct {
	Line    source.Line
	Address uint32 // Load address of the line.
	Code    []byte // Emitted bytes.
}

// Listing maps load addresses back to source lines.
type Listing struct {
	Records []Record
}

// Debug locates the record whose code contains address.
type Debug struct {
	*Record
	Index int // Offset of address in the record's code.
}

// Debug finds the source of the byte at address.
func (listing *Listing) Debug(address uint32) (dbg Debug, ok bool) {
	for n, rec := range listing.Records {
		if address >= rec.Address && address < rec.Address+uint32(len(rec.Code)) {
			dbg = Debug{
				Record: &listing.Records[n],
				Index:  int(address - rec.Address),
			}
			ok = true
			break
		}
	}

	return
}

// WriteTo prints the listing, one source line per row.
func (listing *Listing) WriteTo(w io.Writer) (n int64, err error) {
	for _, rec := range listing.Records {
		hex := make([]string, len(rec.Code))
		for i, b := range rec.Code {
			hex[i] = fmt.Sprintf("%02X", b)
		}

		var wrote int
		wrote, err = fmt.Fprintf(w, "%06X  %-14s  %-12v  %s\n", rec.Address, strings.Join(hex, " "), rec.Line, rec.Line.Text)
		n += int64(wrote)
		if err != nil {
			return
		}
	}

	return
}
