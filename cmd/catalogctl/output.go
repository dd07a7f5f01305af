package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"golang.org/x/term"

	"ProductCatalog/internal/catalog"
)

// isTerminal returns true if w is a terminal.
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// writeProducts prints a table on a terminal and indented JSON otherwise.
func writeProducts(w io.Writer, products []catalog.Product, forceJSON bool) error {
	if forceJSON || !isTerminal(w) {
		return writeJSON(w, products)
	}
	return writeTable(w, products)
}

func writeTable(w io.Writer, products []catalog.Product) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCODE\tTITLE\tPRICE\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n",
			p.ID, p.Code, p.Title, strconv.FormatFloat(p.Price, 'f', -1, 64), p.Stock)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid product id %q", raw)
	}
	return id, nil
}
