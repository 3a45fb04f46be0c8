// Package translate formats user-visible messages for the host locale.
package translate

import (
	"sync/atomic"

	"github.com/golang/glog"
	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DEFAULT_LOCALE = "en-US" // Used when the host reports no locale.
)

var printer atomic.Pointer[message.Printer]

func init() {
	Use()
}

// Use selects the printer for the first locale that parses as a language
// tag. With none given, the host's locales are asked for.
func Use(locales ...string) {
	if len(locales) == 0 {
		var err error
		locales, err = locale.GetLocales()
		if err != nil {
			glog.Warningf("ez80asm: locale: %v", err)
		}
	}

	tag := language.Make(DEFAULT_LOCALE)
	for _, loc := range locales {
		parsed, err := language.Parse(loc)
		if err == nil {
			tag = parsed
			break
		}
		glog.V(2).Infof("translate: locale %v: %v", loc, err)
	}

	glog.V(2).Infof("translate: locales %v, using %v", locales, tag)

	printer.Store(message.NewPrinter(tag))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Load().Sprintf(key, args...)
}
