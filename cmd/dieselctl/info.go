package main

import (
	"fmt"
	"os"

	"github.com/kythyria/dieselkit/model"
	"github.com/kythyria/dieselkit/pkg/types"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <model>",
		Short: "Decode a model file and report basic metadata",
		Long: `The info command decodes a Diesel model file and displays basic
metadata including section count, node counts by payload, and the author
tag when present.

Example:
  dieselctl info units/door.model
  dieselctl info units/door.model --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	modelPath := args[0]

	printVerbose("Opening model: %s\n", modelPath)

	f, err := model.Open(modelPath, openOptions())
	if err != nil {
		return fmt.Errorf("failed to open model: %w", err)
	}
	defer f.Close()

	info := f.Info()
	ids := f.NodeIDs()

	var locators, geometries, volumes, animated int
	for _, id := range ids {
		node, _ := f.Node(id)
		switch node.Payload.(type) {
		case *types.Geometry:
			geometries++
		case *types.Bounds:
			volumes++
		default:
			locators++
		}
		if len(node.Controllers) > 0 {
			animated++
		}
	}

	if jsonOut {
		out := map[string]interface{}{
			"file":            modelPath,
			"sections":        info.SectionCount,
			"declared_length": info.DeclaredLength,
			"extended_count":  info.ExtendedCount,
			"nodes":           len(ids),
			"locators":        locators,
			"geometries":      geometries,
			"bounds":          volumes,
			"animated":        animated,
		}
		if author, ok := f.Author(); ok {
			out["author_email"] = author.Email
			out["author_source"] = author.Source
		}
		return printJSON(out)
	}

	printInfo("\nModel Information:\n")
	printInfo("  File: %s\n", modelPath)
	if stat, err := os.Stat(modelPath); err == nil {
		printInfo("  Size: %d bytes\n", stat.Size())
	}
	printInfo("  Sections: %d\n", info.SectionCount)
	printInfo("  Declared length: %d\n", info.DeclaredLength)
	if info.ExtendedCount {
		printInfo("  Extended section count: yes\n")
	}
	printInfo("\nScene Graph:\n")
	printInfo("  Nodes: %d\n", len(ids))
	printInfo("  Locators: %d\n", locators)
	printInfo("  Geometries: %d\n", geometries)
	printInfo("  Bounds volumes: %d\n", volumes)
	printInfo("  Animated nodes: %d\n", animated)

	if author, ok := f.Author(); ok {
		printInfo("\nAuthor:\n")
		printInfo("  Email: %s\n", author.Email)
		printInfo("  Source: %s\n", author.Source)
	}

	return nil
}
