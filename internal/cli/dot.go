package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/topoviz/topoviz/pkg/discovery"
	"github.com/topoviz/topoviz/pkg/pipeline"
)

// newDotCmd creates the dot command for emitting DOT documents.
//
// The snapshot argument defaults to "-" (stdin) so discovery tooling
// can be piped straight in. The finished document is written in one
// piece; a failed pass writes nothing.
func newDotCmd() *cobra.Command {
	var flags passFlags
	var output string

	cmd := &cobra.Command{
		Use:   "dot [snapshot]",
		Short: "Emit the communication graph as a Graphviz DOT document",
		Long: `Read a topology snapshot (file or stdin) and emit the aggregated
communication graph as a Graphviz DOT document on stdout or to a file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, configFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			return runDot(cmd, snapshotArg(args), output, opts)
		},
	}

	addPassFlags(cmd, &flags)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// runDot executes one pass over the snapshot and writes the document.
func runDot(cmd *cobra.Command, input, output string, opts pipeline.Options) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	snap, err := discovery.ReadSnapshotFile(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded snapshot: %d nodes", len(snap.Nodes))

	prog := newProgress(logger)
	res, err := pipeline.Run(ctx, discovery.NewProvider(snap), opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Aggregated %d channels from %d nodes", res.Stats.ChannelCount, res.Stats.NodeCount))

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write([]byte(res.Document)); err != nil {
		return err
	}

	if output != "" && output != "-" {
		printSuccess("Generated %s", output)
		printStats(res.Stats, false)
	}
	return nil
}
