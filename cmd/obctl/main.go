package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/p2pvps/openbazaar-node/pkg/openbazaar"
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError reports daemon failures with their status and body so the
// operator can see what the node rejected.
func printError(w io.Writer, err error) {
	var obErr *openbazaar.Error
	if errors.As(err, &obErr) && obErr.StatusCode != 0 {
		fmt.Fprintf(w, "%s failed: status %d\n", obErr.Op, obErr.StatusCode)
		if len(obErr.Body) > 0 {
			fmt.Fprintf(w, "%s\n", obErr.Body)
		}
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}
