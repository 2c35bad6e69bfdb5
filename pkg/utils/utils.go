package utils

import (
	"fmt"
	"io"
	"os"
)

// PrintSuccess prints a green success message
func PrintSuccess(msg string) {
	FprintSuccess(os.Stdout, msg)
}

// PrintError prints a red error message
func PrintError(msg string) {
	FprintError(os.Stderr, msg)
}

// PrintWarning prints a yellow warning to stderr
func PrintWarning(msg string) {
	fmt.Fprintf(os.Stderr, "\033[33m %s\033[0m\n", msg)
}

func FprintSuccess(w io.Writer, msg string) {
	fmt.Fprintf(w, "\033[32m %s\033[0m\n", msg)
}

func FprintError(w io.Writer, msg string) {
	fmt.Fprintf(w, "\033[31m %s\033[0m\n", msg)
}
