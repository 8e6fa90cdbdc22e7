// Command rcc reads one C-subset source file (or standard input, named by
// "-") and writes the corresponding x86-64 assembly text to standard output.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/tkyk0317/rcc/pkg/compiler"
)

type options struct {
	Target string `long:"target" description:"override the TARGET environment variable for this invocation (e.g. \"mac\")"`
	Args   struct {
		Source string `positional-arg-name:"source" description:"source file path, or - for standard input"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		// go-flags already printed usage/error text for us.
		os.Exit(1)
	}

	src, err := readSource(opts.Args.Source)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read error:", err)
		os.Exit(1)
	}

	target := compiler.TargetFromEnv()
	if opts.Target == "mac" {
		target = compiler.TargetDarwin
	} else if opts.Target != "" {
		target = compiler.TargetLinux
	}

	assembly, err := compiler.Compile(src, target)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// The whole assembly text is already buffered in memory by Compile; we
	// only reach stdout once compilation has fully succeeded, so a failed
	// compile never leaves partial output behind.
	fmt.Print(assembly)
}

func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
