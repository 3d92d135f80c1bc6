// Command libinflector builds the C shared library of the inflector.
//
//	go build -buildmode=c-shared -o libinflector.so ./internal/cmd/libinflector
//
// Every char* returned by an inflector_* function is owned by the caller and
// must be released once with inflector_free. NULL inputs give NULL results or
// false, invalid UTF-8 inputs too; nothing aborts the host process.
// All functions are safe to call from multiple threads.
package main

/*
#include <stdlib.h>

#define INFLECTOR_OK 0
#define INFLECTOR_NULL_INPUT 1
#define INFLECTOR_INVALID_ENCODING 2
#define INFLECTOR_UNKNOWN_FORMAT 3
#define INFLECTOR_INVALID_CONFIG 4
*/
import "C"

import (
	"unsafe"

	"github.com/octohelm/inflector/pkg/cstr"
	"github.com/octohelm/inflector/pkg/inflect"
	"github.com/octohelm/inflector/pkg/inflector"
)

var lib = newLibrary()

func main() {}

func transform(name string, s *C.char, fn inflect.Transform) *C.char {
	return (*C.char)(lib.transform(name, unsafe.Pointer(s), fn))
}

func predicate(name string, s *C.char, fn inflect.Predicate) C.uchar {
	if lib.predicate(name, unsafe.Pointer(s), fn) {
		return 1
	}
	return 0
}

// inflector_init loads acronyms and log level from the config file at path
// (.toml, .yaml) or, with NULL, from INFLECTOR_CONFIG, INFLECTOR_ACRONYMS and
// INFLECTOR_LOG_LEVEL. Optional.
//
//export inflector_init
func inflector_init(path *C.char) C.int {
	if err := lib.configure(unsafe.Pointer(path)); err != nil {
		lib.l.Error(err)
		return C.int(statusOf(err))
	}
	return C.INFLECTOR_OK
}

// inflector_shutdown clears the acronyms and restores the default log level.
//
//export inflector_shutdown
func inflector_shutdown() {
	lib.shutdown()
}

//export inflector_free
func inflector_free(s *C.char) {
	cstr.Free(unsafe.Pointer(s))
}

//export inflector_set_acronyms
func inflector_set_acronyms(csv *C.char) {
	lib.setAcronyms(unsafe.Pointer(csv))
}

//export inflector_get_acronyms
func inflector_get_acronyms() *C.char {
	return (*C.char)(cstr.CString(lib.converter.Acronyms().Get()))
}

//export inflector_clear_acronyms
func inflector_clear_acronyms() {
	lib.converter.Acronyms().Clear()
}

// inflector_inflect converts input with a format name ("snake", "camel_case", ...)
// and stores the result in *out. Returns one of the INFLECTOR_* status codes.
//
//export inflector_inflect
func inflector_inflect(format *C.char, input *C.char, out **C.char) C.int {
	if out == nil {
		return C.INFLECTOR_NULL_INPUT
	}

	var result unsafe.Pointer
	status := lib.inflect(unsafe.Pointer(format), unsafe.Pointer(input), &result)
	*out = (*C.char)(result)

	return C.int(status)
}

//export inflector_to_class_case
func inflector_to_class_case(s *C.char) *C.char {
	return transform("to_class_case", s, lib.converter.ToClassCase)
}

//export inflector_to_camel_case
func inflector_to_camel_case(s *C.char) *C.char {
	return transform("to_camel_case", s, lib.converter.ToCamelCase)
}

//export inflector_to_pascal_case
func inflector_to_pascal_case(s *C.char) *C.char {
	return transform("to_pascal_case", s, lib.converter.ToPascalCase)
}

//export inflector_to_screamingsnake_case
func inflector_to_screamingsnake_case(s *C.char) *C.char {
	return transform("to_screamingsnake_case", s, lib.converter.ToScreamingSnakeCase)
}

//export inflector_to_snake_case
func inflector_to_snake_case(s *C.char) *C.char {
	return transform("to_snake_case", s, lib.converter.ToSnakeCase)
}

//export inflector_to_kebab_case
func inflector_to_kebab_case(s *C.char) *C.char {
	return transform("to_kebab_case", s, lib.converter.ToKebabCase)
}

//export inflector_to_train_case
func inflector_to_train_case(s *C.char) *C.char {
	return transform("to_train_case", s, lib.converter.ToTrainCase)
}

//export inflector_to_sentence_case
func inflector_to_sentence_case(s *C.char) *C.char {
	return transform("to_sentence_case", s, lib.converter.ToSentenceCase)
}

//export inflector_to_title_case
func inflector_to_title_case(s *C.char) *C.char {
	return transform("to_title_case", s, lib.converter.ToTitleCase)
}

//export inflector_to_lower_case
func inflector_to_lower_case(s *C.char) *C.char {
	return transform("to_lower_case", s, lib.converter.ToLowerCase)
}

//export inflector_to_upper_case
func inflector_to_upper_case(s *C.char) *C.char {
	return transform("to_upper_case", s, lib.converter.ToUpperCase)
}

//export inflector_to_table_case
func inflector_to_table_case(s *C.char) *C.char {
	return transform("to_table_case", s, lib.converter.ToTableCase)
}

//export inflector_to_foreign_key
func inflector_to_foreign_key(s *C.char) *C.char {
	return transform("to_foreign_key", s, lib.converter.ToForeignKey)
}

//export inflector_ordinalize
func inflector_ordinalize(s *C.char) *C.char {
	return transform("ordinalize", s, inflector.Ordinalize)
}

//export inflector_deordinalize
func inflector_deordinalize(s *C.char) *C.char {
	return transform("deordinalize", s, inflector.Deordinalize)
}

//export inflector_demodulize
func inflector_demodulize(s *C.char) *C.char {
	return transform("demodulize", s, inflector.Demodulize)
}

//export inflector_deconstantize
func inflector_deconstantize(s *C.char) *C.char {
	return transform("deconstantize", s, inflector.Deconstantize)
}

//export inflector_to_plural
func inflector_to_plural(s *C.char) *C.char {
	return transform("to_plural", s, inflector.Pluralize)
}

//export inflector_to_singular
func inflector_to_singular(s *C.char) *C.char {
	return transform("to_singular", s, inflector.Singularize)
}

//export inflector_is_class_case
func inflector_is_class_case(s *C.char) C.uchar {
	return predicate("is_class_case", s, lib.converter.IsClassCase)
}

//export inflector_is_camel_case
func inflector_is_camel_case(s *C.char) C.uchar {
	return predicate("is_camel_case", s, lib.converter.IsCamelCase)
}

//export inflector_is_pascal_case
func inflector_is_pascal_case(s *C.char) C.uchar {
	return predicate("is_pascal_case", s, lib.converter.IsPascalCase)
}

//export inflector_is_screamingsnake_case
func inflector_is_screamingsnake_case(s *C.char) C.uchar {
	return predicate("is_screamingsnake_case", s, lib.converter.IsScreamingSnakeCase)
}

//export inflector_is_snake_case
func inflector_is_snake_case(s *C.char) C.uchar {
	return predicate("is_snake_case", s, lib.converter.IsSnakeCase)
}

//export inflector_is_kebab_case
func inflector_is_kebab_case(s *C.char) C.uchar {
	return predicate("is_kebab_case", s, lib.converter.IsKebabCase)
}

//export inflector_is_train_case
func inflector_is_train_case(s *C.char) C.uchar {
	return predicate("is_train_case", s, lib.converter.IsTrainCase)
}

//export inflector_is_sentence_case
func inflector_is_sentence_case(s *C.char) C.uchar {
	return predicate("is_sentence_case", s, lib.converter.IsSentenceCase)
}

//export inflector_is_title_case
func inflector_is_title_case(s *C.char) C.uchar {
	return predicate("is_title_case", s, lib.converter.IsTitleCase)
}

//export inflector_is_table_case
func inflector_is_table_case(s *C.char) C.uchar {
	return predicate("is_table_case", s, lib.converter.IsTableCase)
}

//export inflector_is_foreign_key
func inflector_is_foreign_key(s *C.char) C.uchar {
	return predicate("is_foreign_key", s, lib.converter.IsForeignKey)
}
