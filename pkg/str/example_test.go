// File: example_test.go
// Title: Example Tests for str Package Documentation
// Description: Executable examples that serve as both documentation and tests.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial example implementation

package str_test

import (
	"fmt"

	"github.com/msto63/strkit/foundation/core/errors"
	"github.com/msto63/strkit/pkg/str"
)

func ExampleOf() {
	s := str.Of("  hello dev  ").Trim().UpWords()
	fmt.Println(s)
	fmt.Println(s.Length())
	// Output:
	// Hello Dev
	// 9
}

func ExampleMake() {
	s, err := str.Make(42)
	fmt.Println(s, err)

	_, err = str.Make(struct{}{})
	fmt.Println(errors.IsTypeError(err))
	// Output:
	// 42 <nil>
	// true
}

func ExampleStr_ToSnakeCase() {
	fmt.Println(str.Of("HTTPServerError").ToSnakeCase())
	fmt.Println(str.Of("Artem-Ukrainsky").ToKebabCase())
	fmt.Println(str.Of("hello_dev").ToCamelCase())
	// Output:
	// http_server_error
	// artem-ukrainsky
	// helloDev
}

func ExampleStr_Match() {
	s := str.Of("version: 12.4")

	minor, _ := s.Match(`/(\d+)\.(\d+)/`)
	whole, _ := s.MatchWith(`/(\d+)\.(\d+)/`, str.MatchOptions{First: true})
	fmt.Println(minor)
	fmt.Println(whole)
	// Output:
	// 4
	// 12.4
}

func ExampleStr_Slice() {
	key := str.Of("master.branch.remote.url.one")
	fmt.Println(key.Slice(".", -1, 0))
	fmt.Println(key.Slice(".", 2, 1))
	// Output:
	// master.branch.remote.url
	// branch.remote
}

func ExampleStr_DeleteRepeatSymbolInEnding() {
	fmt.Println(str.Of("Hello//Dev////").DeleteRepeatSymbolInEnding("/"))
	// Output: Hello//Dev
}

func ExampleStr_ToInteger() {
	fmt.Println(str.Of("dd123.1dd").ToInteger())
	fmt.Println(str.Of("A56.7E").ToFloat())
	// Output:
	// 123 true
	// 56.7 true
}

func ExampleStr_LettersStat() {
	stat := str.Of("mississippi").LettersStat()
	fmt.Println(stat.Inputs("s"))
	fmt.Println(stat.ByMaxInputs())
	// Output:
	// 4
	// [{i 4} {s 4}]
}

func ExampleStr_MatchTemplate() {
	matched, _ := str.Of("Hello, Artem!").MatchTemplate("Hello, {word}!", nil)
	fmt.Println(matched)
	// Output: true
}

func ExampleCollection_ToSentence() {
	fmt.Println(str.CollectionOf("hello", "dev", "Artem").ToSentence())
	// Output: Hello dev Artem.
}

func ExampleCollection_CommonPrefix() {
	fmt.Println(str.CollectionOf("interview", "internet", "internal").CommonPrefix())
	// Output: inter
}
