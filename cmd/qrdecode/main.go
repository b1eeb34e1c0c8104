package main

import (
	"fmt"
	"os"

	"github.com/corvidlabs/qrdecode/qrdecoder"
)

// QR Code symbol decoder.
//
// Reads a plain-text module matrix (one row per line, '0' for light and
// '1' for dark) and recovers the encoded text: format disambiguation,
// unmasking, zig-zag unfolding, block de-interleaving, and segment
// decoding, all driven by a from-scratch GF(2^m)/BCH(15,5,3) engine.
//
// Data blocks are assumed error-free; this program does not run
// Reed-Solomon correction over them.
func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	verbose := false
	matrixPath := os.Args[1]

	if len(os.Args) >= 3 && os.Args[1] == "-v" {
		verbose = true
		matrixPath = os.Args[2]
	}

	dec := qrdecoder.NewDecoder()
	dec.Verbose = verbose

	result, err := dec.DecodeFile(matrixPath)
	if err != nil {
		fmt.Printf("error decoding QR code: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== DECODING RESULTS ===")
	fmt.Printf("Version: %d\n", result.Version)
	fmt.Printf("Error Correction Level: %s\n", result.ECLevel)
	fmt.Printf("Mask Pattern: %d\n", result.MaskPattern)
	fmt.Printf("Message: %q\n", result.Text)
}

func printUsage() {
	fmt.Println("usage: qrdecode [-v] <matrix-file>")
	fmt.Println("  matrix-file: a text file with one QR row per line, '0'/'1' per module")
	fmt.Println("  -v:          print the symbol version and decoded format information")
}
