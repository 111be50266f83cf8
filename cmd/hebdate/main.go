// Command hebdate converts dates between the Hebrew and Gregorian calendars from the terminal
package main

import (
	"fmt"
	"os"

	perr "hebdate/internal/platform/errors"
)

func main() {
	root := newRootCmd(os.Stdout)
	if err := root.Execute(); err != nil {
		if slug := perr.WireFrom(err).Slug; slug != "" {
			fmt.Fprintf(os.Stderr, "%s: %v\n", slug, err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
