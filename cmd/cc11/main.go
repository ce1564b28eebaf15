// Command cc11 is a minimal driver exercising the semantic core: it
// resolves a target profile from flags and environment, builds the root
// namespace, and reports the built-in type handles it produced. It is
// explicitly not a C compiler — the grammar reducer, preprocessor, and
// every backend this core's types/constant/expr/stmt/ir packages feed are
// out of scope (§1) and are the responsibility of an external driver this
// stub only gestures at, mirroring the teacher's main.go flag/target
// composition without its codegen pipeline.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xyproto/cc11/diagutil"
	"github.com/xyproto/cc11/internal/symbol"
	"github.com/xyproto/cc11/namespace"
	"github.com/xyproto/cc11/target"
)

const versionString = "cc11 0.1.0 (semantic core only, no codegen)"

func main() {
	var (
		targetFlag = flag.String("target", "lp64", "target ABI profile (lp64, ilp32, win64)")
		version    = flag.Bool("version", false, "print version information and exit")
		verbose    = flag.Bool("v", false, "verbose mode (trace namespace/type construction)")
	)
	flag.Parse()

	if *version {
		fmt.Println(versionString)
		return
	}

	prof, err := resolveProfile(*targetFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cc11:", err)
		os.Exit(1)
	}
	prof = target.ProfileFromEnv(prof)
	diagutil.Verbose = *verbose
	diagutil.Logf("cc11: target profile: sizeof(int)=%d sizeof(long)=%d sizeof(pointer)=%d char-signed=%v\n",
		prof.SizeofInt, prof.SizeofLongInt, prof.SizeofPointer, prof.IsCharSigned)

	syms := symbol.NewSpace()
	global := namespace.NewGlobal(prof, syms)

	fmt.Printf("int: %s\n", global.GetIntType())
	fmt.Printf("size_t: %s\n", global.GetSizeType())
	fmt.Printf("char: %s\n", global.GetCharType())
	fmt.Printf("ptrdiff_t: %s\n", global.GetPtrDiffType())

	if len(flag.Args()) > 0 {
		fmt.Fprintln(os.Stderr, "cc11: no grammar reducer wired in; source files are accepted only for flag-compatibility with a future driver")
	}
}

func resolveProfile(name string) (*target.Profile, error) {
	switch name {
	case "lp64":
		return target.LP64(), nil
	case "ilp32":
		return target.ILP32(), nil
	case "win64":
		return target.Win64(), nil
	default:
		return nil, fmt.Errorf("unsupported target profile %q (supported: lp64, ilp32, win64)", name)
	}
}
