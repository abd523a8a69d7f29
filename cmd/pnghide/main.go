// Command pnghide hides, retrieves, and removes secret messages inside
// PNG files, carried as custom ancillary chunks.
//
// Usage:
//
//	pnghide encode -i <file.png> [-o <out.png>] <chunk_type> <message>
//	pnghide decode -i <file.png> <chunk_type>
//	pnghide remove -i <file.png> [-o <out.png>] <chunk_type>
//	pnghide print  -i <file.png>
//
// Use "-" as a path to read from stdin or write to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/deepteams/pnghide"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "encode", "e":
		err = runEncode(os.Args[2:])
	case "decode", "d":
		err = runDecode(os.Args[2:])
	case "remove", "rm":
		err = runRemove(os.Args[2:])
	case "print", "p":
		err = runPrint(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "pnghide: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "pnghide: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  pnghide encode -i <file.png> [-o <out.png>] <chunk_type> <message>
  pnghide decode -i <file.png> <chunk_type>
  pnghide remove -i <file.png> [-o <out.png>] <chunk_type>
  pnghide print  -i <file.png>

A chunk type is 4 ASCII letters (e.g. "ruSt"). Use "-" as a path to read
from stdin or write to stdout. -o defaults to rewriting the input file.

Run "pnghide <command> -h" for command-specific options.
`)
}

// readInput reads the whole file at path, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("missing -i input file")
	}
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// writeOutput writes data to path, or stdout when path is "-".
func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func runEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	input := fs.String("i", "", "path to the PNG file to process")
	output := fs.String("o", "", `output path (default: rewrite input, "-" for stdout)`)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("encode: missing <chunk_type> <message>\nUsage: pnghide encode -i <file.png> [-o <out.png>] <chunk_type> <message>")
	}
	typeName, message := fs.Arg(0), fs.Arg(1)

	data, err := readInput(*input)
	if err != nil {
		return err
	}
	out, err := pnghide.Encode(data, typeName, message)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	outPath := *output
	if outPath == "" {
		outPath = *input
	}
	if err := writeOutput(outPath, out); err != nil {
		return err
	}
	if outPath != "-" {
		fmt.Fprintf(os.Stderr, "Embedded %d-byte message under %q in %s\n", len(message), typeName, outPath)
	}
	return nil
}

func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	input := fs.String("i", "", "path to the PNG file to process")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("decode: missing <chunk_type>\nUsage: pnghide decode -i <file.png> <chunk_type>")
	}
	typeName := fs.Arg(0)

	data, err := readInput(*input)
	if err != nil {
		return err
	}
	message, err := pnghide.Decode(data, typeName)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Println(message)
	return nil
}

func runRemove(args []string) error {
	fs := flag.NewFlagSet("remove", flag.ContinueOnError)
	input := fs.String("i", "", "path to the PNG file to process")
	output := fs.String("o", "", `output path (default: rewrite input, "-" for stdout)`)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("remove: missing <chunk_type>\nUsage: pnghide remove -i <file.png> [-o <out.png>] <chunk_type>")
	}
	typeName := fs.Arg(0)

	data, err := readInput(*input)
	if err != nil {
		return err
	}
	out, err := pnghide.Remove(data, typeName)
	if err != nil {
		return fmt.Errorf("remove: %w", err)
	}

	outPath := *output
	if outPath == "" {
		outPath = *input
	}
	if err := writeOutput(outPath, out); err != nil {
		return err
	}
	if outPath != "-" {
		fmt.Fprintf(os.Stderr, "Removed first %q chunk from %s\n", typeName, outPath)
	}
	return nil
}

func runPrint(args []string) error {
	fs := flag.NewFlagSet("print", flag.ContinueOnError)
	input := fs.String("i", "", "path to the PNG file to process")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := readInput(*input)
	if err != nil {
		return err
	}
	infos, err := pnghide.Print(data)
	if err != nil {
		return fmt.Errorf("print: %w", err)
	}

	name := *input
	if name == "-" {
		name = "<stdin>"
	}
	fmt.Printf("File:   %s\n", name)
	fmt.Printf("Size:   %d bytes\n", len(data))
	fmt.Printf("Chunks: %d\n", len(infos))
	for i, ci := range infos {
		class := "ancillary"
		if ci.Critical {
			class = "critical"
		}
		vis := "private"
		if ci.Public {
			vis = "public"
		}
		copyable := "unsafe-to-copy"
		if ci.SafeToCopy {
			copyable = "safe-to-copy"
		}
		fmt.Printf("  [%d] %s (%d bytes) %s %s %s\n", i, ci.Type, ci.Length, class, vis, copyable)
	}
	return nil
}
