package cli

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/topoviz/topoviz/pkg/cache"
	"github.com/topoviz/topoviz/pkg/discovery"
	"github.com/topoviz/topoviz/pkg/errors"
	"github.com/topoviz/topoviz/pkg/observability"
	"github.com/topoviz/topoviz/pkg/pipeline"
	"github.com/topoviz/topoviz/pkg/render/dot"
)

const (
	formatSVG = "svg"
	formatPNG = "png"

	// defaultArtifactTTL bounds how long rendered artifacts linger in
	// the cache directory. Keys are content hashes, so expiry is about
	// disk usage, not staleness.
	defaultArtifactTTL = 7 * 24 * time.Hour
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path
	format  string // output format: "svg" or "png"
	refresh bool   // bypass the artifact cache
	pass    passFlags
}

// newRenderCmd creates the render command. It lays out the emitted DOT
// document in-process and writes the finished image, caching artifacts
// keyed by snapshot content and options.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "render [snapshot]",
		Short: "Render the communication graph to SVG or PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatSVG && opts.format != formatPNG {
				return errors.New(errors.ErrCodeInvalidFormat,
					"invalid format: %s (must be 'svg' or 'png')", opts.format)
			}
			passOpts, err := opts.pass.options(cmd, configFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			return runRender(cmd, snapshotArg(args), &opts, passOpts)
		},
	}

	addPassFlags(cmd, &opts.pass)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default derived from input)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the artifact cache")

	return cmd
}

// runRender reads the snapshot, consults the artifact cache, and
// renders on a miss.
func runRender(cmd *cobra.Command, input string, opts *renderOpts, passOpts pipeline.Options) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	raw, err := readInput(input)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "snapshot %s", input)
	}
	snap, err := discovery.ReadSnapshot(bytes.NewReader(raw))
	if err != nil {
		return err
	}

	c, err := openArtifactCache(cmd)
	if err != nil {
		printWarning("Artifact cache unavailable: %v", err)
		c = cache.NewNullCache()
	}
	defer c.Close()

	key := cache.ArtifactKey(cache.Hash(raw), opts.format, passOpts.Fingerprint())

	var stats pipeline.Stats
	data, hit, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	if hit && !opts.refresh {
		observability.Cache().OnCacheHit(ctx, "artifact")
		logger.Debugf("Artifact cache hit: %d bytes", len(data))
	} else {
		observability.Cache().OnCacheMiss(ctx, "artifact")

		prog := newProgress(logger)
		res, err := pipeline.Run(ctx, discovery.NewProvider(snap), passOpts)
		if err != nil {
			return err
		}
		stats = res.Stats
		prog.done(fmt.Sprintf("Aggregated %d channels from %d nodes", stats.ChannelCount, stats.NodeCount))

		sp := newSpinner(ctx, fmt.Sprintf("Rendering %s", opts.format))
		sp.Start()
		data, err = renderDocument(ctx, res.Document, opts.format)
		if err != nil {
			sp.StopWithError("Layout failed")
			return err
		}
		sp.StopWithSuccess("Laid out %s (%s)", opts.format, formatBytes(int64(len(data))))

		if err := c.Set(ctx, key, data, defaultArtifactTTL); err != nil {
			logger.Warnf("Artifact cache write failed: %v", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = derivedOutputPath(input, opts.format)
	}
	out, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := out.Write(data); err != nil {
		return err
	}

	if outputPath != "" && outputPath != "-" {
		printFile(outputPath)
		printStats(stats, hit && !opts.refresh)
	}
	return nil
}

// renderDocument dispatches to the format-specific renderer.
func renderDocument(ctx context.Context, doc, format string) ([]byte, error) {
	switch format {
	case formatPNG:
		return dot.RenderPNG(ctx, doc)
	default:
		return dot.RenderSVG(ctx, doc)
	}
}

// derivedOutputPath builds an output name from the input path, or
// "graph.<format>" when reading stdin.
func derivedOutputPath(input, format string) string {
	if input == "-" {
		return "graph." + format
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}

// openArtifactCache opens the file-backed artifact cache.
func openArtifactCache(cmd *cobra.Command) (cache.Cache, error) {
	dir, err := artifactCacheDir(configFromContext(cmd.Context()))
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(dir)
}
