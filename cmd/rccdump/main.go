// Command rccdump is a development aid: it runs the rcc pipeline stage by
// stage over one source file and prints the token stream, the AST, each
// function's symbol table, and the generated assembly. It is not part of
// the compiler's contracted interface — see SPEC_FULL.md.
package main

import (
	"fmt"
	"os"

	"github.com/tkyk0317/rcc/pkg/compiler"
)

const sampleSource = `int main() {
	int x;
	x = 10;
	return x;
}
`

func main() {
	src := sampleSource
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
		src = string(data)
	}

	fmt.Printf("Source:\n%s\n", src)

	tokens, err := compiler.Lex(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lex error:", err)
		os.Exit(1)
	}
	fmt.Printf("Tokens (%d)\n", len(tokens))
	for _, tok := range tokens {
		fmt.Println(" ", tok)
	}
	fmt.Println()

	funcs, err := compiler.Parse(tokens, src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse error:", err)
		os.Exit(1)
	}
	fmt.Println("AST")
	for _, fn := range funcs {
		fmt.Println(" ", fn)
		fmt.Print(fn.Symbols)
	}
	fmt.Println()

	target := compiler.TargetFromEnv()
	assembly, err := compiler.Generate(funcs, target)
	if err != nil {
		fmt.Fprintln(os.Stderr, "codegen error:", err)
		os.Exit(1)
	}
	fmt.Println("Generated Assembly")
	fmt.Print(assembly)
}
