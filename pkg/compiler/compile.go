package compiler

import "fmt"

// Compile runs the full pipeline — lex, parse, generate — over one source
// file and returns the assembly text for target. On error it returns the
// zero string: there is never partial output, matching spec.md §4.3's
// "Failure semantics" and §7's error-handling design. Each stage's error is
// prefixed with its stage name, mirroring the teacher's
// pkg/compiler/compile.go and cmd/ccompiler/main.go.
func Compile(src string, target Target) (string, error) {
	tokens, err := Lex(src)
	if err != nil {
		return "", fmt.Errorf("lex error: %w", err)
	}

	funcs, err := Parse(tokens, src)
	if err != nil {
		return "", fmt.Errorf("parse error: %w", err)
	}

	assembly, err := Generate(funcs, target)
	if err != nil {
		return "", fmt.Errorf("codegen error: %w", err)
	}

	return assembly, nil
}
