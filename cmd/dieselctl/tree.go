package main

import (
	"fmt"
	"sort"

	"github.com/kythyria/dieselkit/hashlist"
	"github.com/kythyria/dieselkit/model"
	"github.com/kythyria/dieselkit/pkg/types"
	"github.com/spf13/cobra"
)

var (
	treeDepth    int
	treeChannels bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 for unlimited)")
	cmd.Flags().BoolVar(&treeChannels, "channels", false, "Show animation channels too")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <model>",
		Short: "Display the scene graph hierarchy",
		Long: `The tree command displays the resolved scene graph of a model file as
an indented hierarchy. Names are reversed through the --hashlist wordlist
when one is given, otherwise printed as hex hashes.

Example:
  dieselctl tree units/door.model
  dieselctl tree units/door.model --hashlist names.txt --channels`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

type treeNode struct {
	Name     string      `json:"name"`
	ID       uint32      `json:"id"`
	Kind     string      `json:"kind"`
	Channels []string    `json:"channels,omitempty"`
	Children []*treeNode `json:"children,omitempty"`
}

func runTree(args []string) error {
	modelPath := args[0]

	ix, err := loadHashlist()
	if err != nil {
		return err
	}

	printVerbose("Opening model: %s\n", modelPath)

	f, err := model.Open(modelPath, openOptions())
	if err != nil {
		return fmt.Errorf("failed to open model: %w", err)
	}
	defer f.Close()

	nodes, err := f.Resolve()
	if err != nil {
		return fmt.Errorf("failed to resolve scene graph: %w", err)
	}

	roots := buildTree(nodes, ix)

	if jsonOut {
		return printJSON(roots)
	}
	for _, root := range roots {
		printTreeNode(root, 0)
	}
	return nil
}

// buildTree converts the flat resolved node list into display trees,
// one per root, preserving file order among siblings.
func buildTree(nodes []*types.IRNode, ix *hashlist.Index) []*treeNode {
	byIR := make(map[*types.IRNode]*treeNode, len(nodes))
	var roots []*treeNode
	for _, n := range nodes {
		tn := &treeNode{
			Name: ix.Format(n.Name),
			ID:   n.SectionID,
			Kind: payloadKindName(n.Payload),
		}
		for _, ch := range n.Channels {
			tn.Channels = append(tn.Channels,
				fmt.Sprintf("%s (%d keys, %.3gs)", ch.TargetPath, len(ch.Keyframes), ch.Duration))
		}
		byIR[n] = tn
	}
	for _, n := range nodes {
		tn := byIR[n]
		if n.Parent == nil {
			roots = append(roots, tn)
			continue
		}
		byIR[n.Parent].Children = append(byIR[n.Parent].Children, tn)
	}
	sort.SliceStable(roots, func(i, j int) bool { return roots[i].ID < roots[j].ID })
	return roots
}

func payloadKindName(p types.Payload) string {
	switch p.(type) {
	case *types.Geometry:
		return "geometry"
	case *types.Bounds:
		return "bounds"
	default:
		return "locator"
	}
}

func printTreeNode(tn *treeNode, depth int) {
	if treeDepth > 0 && depth >= treeDepth {
		return
	}
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	printInfo("%s%s [%s, id %d]\n", indent, tn.Name, tn.Kind, tn.ID)
	if treeChannels {
		for _, ch := range tn.Channels {
			printInfo("%s  ~ %s\n", indent, ch)
		}
	}
	for _, child := range tn.Children {
		printTreeNode(child, depth+1)
	}
}
