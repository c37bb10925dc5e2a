package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kythyria/dieselkit/idstring"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newLookupCmd())
}

func newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <hash...>",
		Short: "Reverse idstring hashes using a wordlist",
		Long: `The lookup command maps 64-bit idstring hashes back to names using the
wordlist given by --hashlist. Hashes may be given with or without a 0x
prefix. Unknown hashes are echoed back in hex form.

Example:
  dieselctl lookup --hashlist names.txt ee8715f54dea37c8
  dieselctl lookup --hashlist names.txt 0x35fa3fb92dbd786c`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(args)
		},
	}
	return cmd
}

func runLookup(args []string) error {
	ix, err := loadHashlist()
	if err != nil {
		return err
	}

	type entry struct {
		Hash  string `json:"hash"`
		Name  string `json:"name,omitempty"`
		Known bool   `json:"known"`
	}
	entries := make([]entry, 0, len(args))
	for _, arg := range args {
		raw := strings.TrimPrefix(strings.ToLower(arg), "0x")
		h, err := strconv.ParseUint(raw, 16, 64)
		if err != nil {
			return fmt.Errorf("not a valid hash: %q", arg)
		}
		v := idstring.Value(h)
		name, ok := ix.Lookup(v)
		entries = append(entries, entry{Hash: v.String(), Name: name, Known: ok})
	}

	if jsonOut {
		return printJSON(entries)
	}

	for _, e := range entries {
		if e.Known {
			printInfo("%s  %s\n", e.Hash, e.Name)
		} else {
			printInfo("%s  <unknown>\n", e.Hash)
		}
	}
	return nil
}
