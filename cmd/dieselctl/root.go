package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kythyria/dieselkit/hashlist"
	"github.com/kythyria/dieselkit/pkg/types"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool

	// Decode strictness flags
	strictDuplicates bool
	strictParents    bool
	strictKinds      bool

	// Optional wordlist for reverse name lookup
	hashlistPath string
)

var rootCmd = &cobra.Command{
	Use:   "dieselctl",
	Short: "Inspect Diesel engine model files",
	Long: `dieselctl is a tool for inspecting Diesel engine model files. It decodes
the chunked binary container into a scene graph, computes and reverses
idstring name hashes, and reports file metadata.`,
	Version: "0.1.0",
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		BoolVar(&strictDuplicates, "strict-duplicates", false, "Reject files with duplicate section ids")
	rootCmd.PersistentFlags().
		BoolVar(&strictParents, "strict-parents", false, "Reject files with dangling parent references")
	rootCmd.PersistentFlags().
		BoolVar(&strictKinds, "strict-kinds", false, "Reject model sections with unrecognized kinds")
	rootCmd.PersistentFlags().
		StringVar(&hashlistPath, "hashlist", "", "Wordlist file for reversing name hashes")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openOptions builds decode options from the strictness flags.
func openOptions() types.OpenOptions {
	return types.OpenOptions{
		StrictDuplicateIDs: strictDuplicates,
		StrictParents:      strictParents,
		StrictModelKinds:   strictKinds,
	}
}

// loadHashlist loads the wordlist named by --hashlist, or an empty index
// when the flag is unset so name formatting falls back to hex.
func loadHashlist() (*hashlist.Index, error) {
	if hashlistPath == "" {
		return hashlist.New(), nil
	}
	printVerbose("Loading hashlist: %s\n", hashlistPath)
	ix, err := hashlist.FromFile(hashlistPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load hashlist: %w", err)
	}
	printVerbose("Hashlist entries: %d\n", ix.Len())
	return ix, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
