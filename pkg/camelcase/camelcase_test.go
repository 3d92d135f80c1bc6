package camelcase

import (
	"fmt"
	"reflect"
	"testing"

	testingx "github.com/octohelm/x/testing"
)

func Example() {
	s := "vimRPCPluginS3"
	fmt.Println(UpperCamelCase(s))
	fmt.Println(LowerCamelCase(s))
	fmt.Println(UpperKebabCase(s))
	fmt.Println(LowerKebabCase(s))
	fmt.Println(UpperSnakeCase(s))
	fmt.Println(LowerSnakeCase(s))
	fmt.Println(Train.Convert(s))
	fmt.Println(Title.Convert(s))
	fmt.Println(Sentence.Convert(s))
	fmt.Println(Flat.Convert(s))
	// Output:
	// VimRpcPluginS3
	// vimRpcPluginS3
	// VIM-RPC-PLUGIN-S3
	// vim-rpc-plugin-s3
	// VIM_RPC_PLUGIN_S3
	// vim_rpc_plugin_s3
	// Vim-Rpc-Plugin-S3
	// Vim Rpc Plugin S3
	// Vim rpc plugin s3
	// vimrpcplugins3
}

func TestSplit(t *testing.T) {
	for _, c := range [][]string{
		{""},
		{"S3", "S3"},
		{"lowercase", "lowercase"},
		{"Class", "Class"},
		{"MyClass", "My", "Class"},
		{"MyC", "My", "C"},
		{"HTML", "HTML"},
		{"ID", "ID"},
		{"PDFLoader", "PDF", "Loader"},
		{"AString", "A", "String"},
		{"SimpleXMLParser", "Simple", "XML", "Parser"},
		{"vimRPCPlugin", "vim", "RPC", "Plugin"},
		{"GL11Version", "GL11", "Version"},
		{"99Bottles", "99", "Bottles"},
		{"May5", "May5"},
		{"BFG9000", "BFG9000"},
		{"BöseÜberraschung", "Böse", "Überraschung"},
		{"Two  spaces", "Two", "  ", "spaces"},
		{"snake_case", "snake", "_", "case"},
		{"BadUTF8\xe2\xe2\xa1", "BadUTF8\xe2\xe2\xa1"},
	} {
		t.Run(c[0], func(t *testing.T) {
			ret := Split(c[0])
			expect := c[1:]

			if !reflect.DeepEqual(ret, expect) {
				t.Fatalf("expect %v, but got %v", expect, ret)
			}
		})
	}
}

func TestWords(t *testing.T) {
	testingx.Expect(t, Words("api_response"), testingx.Equal([]string{"api", "response"}))
	testingx.Expect(t, Words("  --user__API-token  "), testingx.Equal([]string{"user", "API", "token"}))
	testingx.Expect(t, Words("Hello World"), testingx.Equal([]string{"Hello", "World"}))
	testingx.Expect(t, Words("__"), testingx.HaveLen[[]string](0))
}

func TestCaseConvert(t *testing.T) {
	for _, c := range []struct {
		c      Case
		input  string
		expect string
	}{
		{Pascal, "api_response", "ApiResponse"},
		{Pascal, "HTMLParser", "HtmlParser"},
		{Camel, "user_api_token", "userApiToken"},
		{Camel, "UserAPIToken", "userApiToken"},
		{Snake, "helloWorld", "hello_world"},
		{Snake, "Hello World", "hello_world"},
		{UpperSnake, "helloWorld", "HELLO_WORLD"},
		{Kebab, "helloWorld", "hello-world"},
		{Train, "helloWorld", "Hello-World"},
		{Sentence, "helloWorld", "Hello world"},
		{Title, "hello_world", "Hello World"},
		{Lower, "helloWorld", "hello world"},
		{Upper, "helloWorld", "HELLO WORLD"},
		{Flat, "hello_world", "helloworld"},
		{UpperFlat, "hello_world", "HELLOWORLD"},
		{Snake, "", ""},
	} {
		t.Run(fmt.Sprintf("%s/%s", c.c, c.input), func(t *testing.T) {
			testingx.Expect(t, c.c.Convert(c.input), testingx.Be(c.expect))
		})
	}
}

func TestCaseAcronymAware(t *testing.T) {
	for _, c := range []Case{Pascal, Camel, Title, Train, Sentence} {
		testingx.Expect(t, c.AcronymAware(), testingx.Be(true))
	}
	for _, c := range []Case{Snake, UpperSnake, Kebab, UpperKebab, Lower, Upper, Flat, UpperFlat} {
		testingx.Expect(t, c.AcronymAware(), testingx.Be(false))
	}
}

func TestCapitalize(t *testing.T) {
	testingx.Expect(t, Capitalize(""), testingx.Be(""))
	testingx.Expect(t, Capitalize("über"), testingx.Be("Über"))
	testingx.Expect(t, Capitalize("s3"), testingx.Be("S3"))
}
