package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/kythyria/dieselkit/idstring"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newHashCmd())
}

func newHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash [name...]",
		Short: "Compute idstring hashes of names",
		Long: `The hash command prints the 64-bit idstring hash of each name. With no
arguments, names are read from stdin one per line.

Example:
  dieselctl hash units/dev_tools/level_tools/ai_coverpoint
  cat names.txt | dieselctl hash`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(args)
		},
	}
	return cmd
}

func runHash(args []string) error {
	names := args
	if len(names) == 0 {
		sc := bufio.NewScanner(os.Stdin)
		sc.Buffer(make([]byte, 64*1024), 1024*1024)
		for sc.Scan() {
			names = append(names, strings.TrimSuffix(sc.Text(), "\r"))
		}
		if err := sc.Err(); err != nil {
			return err
		}
	}

	if jsonOut {
		out := make(map[string]string, len(names))
		for _, name := range names {
			out[name] = idstring.HashString(name).String()
		}
		return printJSON(out)
	}

	for _, name := range names {
		printInfo("%s  %s\n", idstring.HashString(name), name)
	}
	return nil
}
