// rushabi emits the Rush runtime's link manifest: the Value record layout,
// the kind ordinals, and the symbol table compiled callers are built
// against.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zhubert/rush-runtime/abi"
)

func main() {
	profilePath := flag.String("profile", "", "TOML link profile (default: built-in linux/amd64 profile)")
	outPath := flag.String("o", "", "Write the canonical CBOR manifest to this file")
	list := flag.Bool("list", false, "Print the symbol table")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rushabi [options]\n\n")
		fmt.Fprintf(os.Stderr, "Emits the Rush runtime ABI manifest for toolchain use.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  rushabi -list                            # Show the symbols a full runtime exports\n")
		fmt.Fprintf(os.Stderr, "  rushabi -profile rushrt.toml -o abi.cbor # Emit the manifest for a project profile\n")
	}
	flag.Parse()

	profile := abi.DefaultProfile()
	if *profilePath != "" {
		p, err := abi.LoadProfile(*profilePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
			os.Exit(1)
		}
		profile = p
	}

	manifest, err := abi.BuildManifest(profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building manifest: %v\n", err)
		os.Exit(1)
	}

	if *list {
		fmt.Printf("target %s, %d symbols\n", manifest.Target, len(manifest.Symbols))
		for _, s := range manifest.Symbols {
			fmt.Printf("  %-12s %-20s %s\n", s.Component, s.Name, s.Signature)
		}
	}

	if *outPath != "" {
		data, err := manifest.Encode()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding manifest: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*outPath, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *outPath, err)
			os.Exit(1)
		}
	}

	digest, err := manifest.Digest()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing digest: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("manifest digest sha256:%x\n", digest)
}
