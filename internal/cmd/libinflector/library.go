package main

import (
	"log/slog"
	"os"
	"unsafe"

	"github.com/go-courier/logr"
	"github.com/pkg/errors"

	"github.com/octohelm/inflector/pkg/config"
	"github.com/octohelm/inflector/pkg/cstr"
	"github.com/octohelm/inflector/pkg/inflect"
	"github.com/octohelm/inflector/pkg/logger"
)

// status codes of inflector_inflect and inflector_init, kept in sync with the
// defines in main.go.
const (
	statusOK              = 0
	statusNullInput       = 1
	statusInvalidEncoding = 2
	statusUnknownFormat   = 3
	statusInvalidConfig   = 4
)

func statusOf(err error) int {
	switch {
	case err == nil:
		return statusOK
	case errors.Is(err, cstr.ErrNullInput):
		return statusNullInput
	case errors.Is(err, cstr.ErrInvalidEncoding):
		return statusInvalidEncoding
	case errors.Is(err, inflect.ErrUnknownFormat):
		return statusUnknownFormat
	}
	return statusInvalidConfig
}

// library is the process wide state behind the C functions.
// The converter and the level are safe for concurrent use.
type library struct {
	converter *inflect.Converter
	level     *slog.LevelVar
	l         logr.Logger
}

func newLibrary() *library {
	level := &slog.LevelVar{}
	level.Set(slog.LevelError)

	return &library{
		converter: inflect.New(),
		level:     level,
		l:         logger.New(os.Stderr, level).WithValues("lib", "inflector"),
	}
}

// configure applies the config file at path, or the environment when path is nil.
// It replaces the acronyms wholesale.
func (lib *library) configure(path unsafe.Pointer) error {
	var cfg *config.Config

	if path == nil {
		c, err := config.FromEnv()
		if err != nil {
			return err
		}
		cfg = c
	} else {
		p, err := cstr.GoString(path)
		if err != nil {
			return err
		}
		c, err := config.Load(p)
		if err != nil {
			return err
		}
		cfg = c
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	lib.level.Set(level)
	lib.converter.Acronyms().SetList(cfg.Acronyms)
	lib.l.Debug("initialized with acronyms %s", lib.converter.Acronyms().Get())

	return nil
}

func (lib *library) shutdown() {
	lib.converter.Acronyms().Clear()
	lib.level.Set(slog.LevelError)
}

func (lib *library) setAcronyms(csv unsafe.Pointer) {
	s, err := cstr.GoString(csv)
	if err != nil {
		lib.softFailure("set_acronyms", err)
		return
	}
	lib.converter.Acronyms().Set(s)
}

func (lib *library) transform(name string, p unsafe.Pointer, fn inflect.Transform) unsafe.Pointer {
	out, err := cstr.Transform(p, fn)
	if err != nil {
		lib.softFailure(name, err)
		return nil
	}
	return out
}

func (lib *library) predicate(name string, p unsafe.Pointer, fn inflect.Predicate) bool {
	ok, err := cstr.Predicate(p, fn)
	if err != nil {
		lib.softFailure(name, err)
		return false
	}
	return ok
}

// inflect stores the converted input in *out, nil on failure.
func (lib *library) inflect(format unsafe.Pointer, input unsafe.Pointer, out *unsafe.Pointer) int {
	if out == nil {
		return statusNullInput
	}
	*out = nil

	f, err := cstr.GoString(format)
	if err != nil {
		lib.softFailure("inflect", err)
		return statusOf(err)
	}

	fn, err := lib.converter.Transformer(f)
	if err != nil {
		lib.softFailure("inflect", err)
		return statusOf(err)
	}

	result, err := cstr.Transform(input, fn)
	if err != nil {
		lib.softFailure("inflect", err)
		return statusOf(err)
	}

	*out = result
	return statusOK
}

func (lib *library) softFailure(name string, err error) {
	// NULL is a regular value for the host, not worth a warning
	if errors.Is(err, cstr.ErrNullInput) {
		lib.l.WithValues("func", name).Debug("%s", err)
		return
	}
	lib.l.WithValues("func", name).Warn(err)
}
