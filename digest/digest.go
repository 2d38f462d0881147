// Package digest computes content digests of input files and writes them as
// a simulated build artifact.
package digest

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// Sum returns the hex encoded SHA-1 digest of the file content at path.
func Sum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("input %s can't be opened, %w", path, err)
	}
	defer f.Close()
	h := sha1.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("input %s can't be read, %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Write writes a "digest path" line for every input to w.
func Write(w io.Writer, inputs []string) error {
	for _, input := range inputs {
		sum, err := Sum(input)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", sum, input); err != nil {
			return err
		}
	}
	return nil
}

// File creates the named output file and writes the input digests to it.
func File(output string, inputs []string) error {
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("output %s can't be created, %w", output, err)
	}
	if err := Write(f, inputs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
