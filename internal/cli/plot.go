package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/protviz/pkg/errors"
	"github.com/matzehuels/protviz/pkg/render"
	"github.com/matzehuels/protviz/pkg/track"
)

func newPlotCmd() *cobra.Command {
	var (
		output       string
		viewFlag     string
		tracksFlag   []string
		collapseFlag []string
		configPath   string
		refresh      bool
		noCache      bool
		interactive  bool
		cacheDir     string
		redisAddr    string
		width        float64
	)

	cmd := &cobra.Command{
		Use:   "plot <accession>",
		Short: "Fetch annotations for a protein and write an SVG figure",
		Long: `Plot fetches structure coverage, ligand binding sites, domain annotations,
and TED predicted domains for a UniProt accession and renders them as a
stacked SVG figure.

Examples:
  protviz plot P69905
  protviz plot P69905 --view 20:80 --tracks pdb,ted --collapse ted
  protviz plot P69905 --config figure.toml -o hemoglobin.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			accession := strings.ToUpper(strings.TrimSpace(args[0]))
			if err := errors.ValidateAccession(accession); err != nil {
				return err
			}

			var custom []*track.Track
			if configPath != "" {
				cfg, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				// Flags win over config values.
				if !cmd.Flags().Changed("tracks") && len(cfg.Tracks) > 0 {
					tracksFlag = cfg.Tracks
				}
				if !cmd.Flags().Changed("collapse") && len(cfg.Collapse) > 0 {
					collapseFlag = cfg.Collapse
				}
				if !cmd.Flags().Changed("view") && cfg.View != "" {
					viewFlag = cfg.View
				}
				if !cmd.Flags().Changed("width") && cfg.Width > 0 {
					width = cfg.Width
				}

				var warnings []error
				custom, warnings = cfg.customTracks()
				for _, w := range warnings {
					printWarning("skipped annotation: %s", errors.UserMessage(w))
				}
			}

			if interactive {
				selected, collapsed, err := runTrackSelection(tracksFlag, collapseFlag)
				if err != nil {
					return err
				}
				tracksFlag, collapseFlag = selected, collapsed
			}

			view, err := parseView(viewFlag)
			if err != nil {
				return err
			}
			specs, err := parseTrackSpecs(tracksFlag, collapseFlag)
			if err != nil {
				return err
			}

			if output == "" {
				output = accession + ".svg"
			}
			if err := errors.ValidateOutputPath(output); err != nil {
				return err
			}

			backend, err := newBackend(ctx, cacheOptions{
				noCache:   noCache,
				cacheDir:  cacheDir,
				redisAddr: redisAddr,
			})
			if err != nil {
				return err
			}
			ds := newSources(backend)
			defer ds.Close()

			p := newProgress(logger)
			sp := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching annotations for %s", accession))
			sp.Start()

			stack, err := buildStack(ctx, ds, accession, specs, custom, refresh)
			if err != nil {
				sp.StopWithError(errors.UserMessage(err))
				return err
			}
			sp.StopWithSuccess(fmt.Sprintf("Fetched %d tracks for %s (%d aa)",
				len(stack.Tracks)-1, accession, stack.SequenceLength))

			arr, err := stack.Arrange(view)
			if err != nil {
				return err
			}
			if arr.WindowAdjusted {
				printWarning("view %s is outside the sequence, plotting the full range", viewFlag)
			}

			svg := render.RenderSVG(arr, render.WithWidth(width))
			if err := os.WriteFile(output, svg, 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "writing %s", output)
			}

			p.done(fmt.Sprintf("Rendered %s", accession))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <accession>.svg)")
	cmd.Flags().StringVar(&viewFlag, "view", "", "zoom to a sub-range, e.g. 20:80")
	cmd.Flags().StringSliceVar(&tracksFlag, "tracks", nil,
		fmt.Sprintf("tracks to include, ordered (available: %s)", strings.Join(trackNames, ", ")))
	cmd.Flags().StringSliceVar(&collapseFlag, "collapse", nil, "tracks to show as a single merged row")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML figure config with custom annotations")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache and refetch all data")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching entirely")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "select tracks interactively")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "cache directory (default ~/.cache/protviz)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for a shared cache, e.g. localhost:6379")
	cmd.Flags().Float64Var(&width, "width", 960, "figure width in pixels")

	return cmd
}
