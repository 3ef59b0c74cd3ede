// Package cli provides table helpers for human-readable output.
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func newTabWriter(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

func writeTable(out io.Writer, headers []string, rows [][]string) error {
	writer := newTabWriter(out)
	if len(headers) > 0 {
		fmt.Fprintln(writer, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	return writer.Flush()
}

func writePairs(out io.Writer, pairs [][2]string) error {
	writer := newTabWriter(out)
	for _, pair := range pairs {
		fmt.Fprintf(writer, "%s:\t%s\n", pair[0], pair[1])
	}
	return writer.Flush()
}

func formatYesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
