// Command gen emits the synthetic frame table as Go source.
//
// Every trampoline must be a distinct top-level function: sharing bodies or
// generating them as closures would let the toolchain give several frame
// indices the same program counter, and backtraces captured during replay
// would lose depth information. Regenerate with a different -count to grow
// or shrink the table.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
)

func main() {
	count := flag.Int("count", 256, "number of distinct frames to generate")
	out := flag.String("out", "zz_generated_frames.go", "output file")
	flag.Parse()

	if *count < 1 {
		log.Fatalf("count must be positive, got %d", *count)
	}

	src, err := format.Source(generate(*count))
	if err != nil {
		log.Fatalf("format generated source: %v", err)
	}
	if err := os.WriteFile(*out, src, 0644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
}

func generate(count int) []byte {
	var buf bytes.Buffer

	buf.WriteString("// Code generated by gen/main.go. DO NOT EDIT.\n\n")
	buf.WriteString("package frames\n\n")
	buf.WriteString("// frameCount is the number of distinct synthetic frames in the table.\n")
	fmt.Fprintf(&buf, "const frameCount = %d\n\n", count)

	for i := 0; i < count; i++ {
		fmt.Fprintf(&buf, "//go:noinline\nfunc frame%d(body Body) { anchor(%d); body.Run() }\n\n", i, i)
	}

	buf.WriteString("// frameDefault serves every index the table has no entry for.\n")
	buf.WriteString("//go:noinline\nfunc frameDefault(body Body) { anchor(frameCount); body.Run() }\n\n")

	buf.WriteString("// frameTable maps frame indices to their trampolines.\n")
	buf.WriteString("var frameTable = [frameCount]func(Body){\n")
	for i := 0; i < count; i += 8 {
		buf.WriteString("\t")
		for j := i; j < i+8 && j < count; j++ {
			if j > i {
				buf.WriteString(" ")
			}
			fmt.Fprintf(&buf, "frame%d,", j)
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")

	return buf.Bytes()
}
