package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/aussiebroadwan/records/pkg/recordsdk"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printRecordTable(w io.Writer, records []recordsdk.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No records.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCREATED")
	for _, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", r.ID, truncateName(r.Name, maxNameWidth), r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d records\n", len(records))
}

const maxNameWidth = 60

// truncateName shortens name to at most width runes, marking the cut with "...".
func truncateName(name string, width int) string {
	if utf8.RuneCountInString(name) <= width {
		return name
	}
	runes := []rune(name)
	return string(runes[:width-3]) + "..."
}

func (c *cli) printRecords(records []recordsdk.Record) error {
	if c.jsonOutput {
		if records == nil {
			records = []recordsdk.Record{}
		}
		return printJSON(c.stdout, records)
	}
	printRecordTable(c.stdout, records)
	return nil
}
