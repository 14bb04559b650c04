package abi

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/xyproto/agort/ago"
	"github.com/xyproto/agort/internal/engine"
)

// LibraryName is the base name of the shared runtime library
const LibraryName = "ago"

// WriteHeader writes the C header generated code compiles against
func WriteHeader(w io.Writer, p engine.Platform) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "/**\n")
	fmt.Fprintf(bw, " * Ago Standard Library - Header File\n")
	fmt.Fprintf(bw, " *\n")
	fmt.Fprintf(bw, " * Target: %s, link against %s.\n", p, p.SharedLibraryName(LibraryName))
	fmt.Fprintf(bw, " * Booleans print as %q and %q. Every fault is fatal.\n", ago.TrueToken, ago.FalseToken)
	fmt.Fprintf(bw, " */\n\n")
	fmt.Fprintf(bw, "#ifndef AGO_STDLIB_H\n#define AGO_STDLIB_H\n\n")
	fmt.Fprintf(bw, "#include <stdint.h>\n#include <stdbool.h>\n\n")
	fmt.Fprintf(bw, "#ifdef __cplusplus\nextern \"C\" {\n#endif\n\n")
	fmt.Fprintf(bw, "/* List handles are opaque; NULL is the absent list. */\n")
	fmt.Fprintf(bw, "typedef struct AgoIntList AgoIntList;\n")
	fmt.Fprintf(bw, "typedef struct AgoFloatList AgoFloatList;\n")

	for _, section := range sections {
		fmt.Fprintf(bw, "\n// %s\n", strings.Repeat("=", 76))
		fmt.Fprintf(bw, "// %s\n", section)
		fmt.Fprintf(bw, "// %s\n\n", strings.Repeat("=", 76))
		for _, s := range symbols {
			if s.Section != section {
				continue
			}
			if s.Doc != "" {
				fmt.Fprintf(bw, "/* %s */\n", s.Doc)
			}
			fmt.Fprintf(bw, "%s;\n", s.Signature())
		}
	}

	fmt.Fprintf(bw, "\n#ifdef __cplusplus\n}\n#endif\n\n#endif /* AGO_STDLIB_H */\n")
	return bw.Flush()
}
