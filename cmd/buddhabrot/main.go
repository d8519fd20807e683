package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/buddhabrot/internal/analysis"
	"github.com/san-kum/buddhabrot/internal/config"
	"github.com/san-kum/buddhabrot/internal/density"
	"github.com/san-kum/buddhabrot/internal/export"
	"github.com/san-kum/buddhabrot/internal/storage"
	"github.com/san-kum/buddhabrot/internal/tui"
	"github.com/san-kum/buddhabrot/internal/viz"
)

var (
	dataDir string

	width  int
	height int

	minR float64
	minI float64
	maxR float64
	maxI float64

	redIters   int
	greenIters int
	blueIters  int
	samples    int64

	seed          int64
	workers       int
	normalization string
	output        string
	configFile    string
	preset        string
	save          bool
	live          bool

	level float64
	axis  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "buddhabrot",
		Short: "monte carlo buddhabrot density renderer",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".buddhabrot", "data directory")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render the density image to a PNG",
		RunE:  runRender,
	}
	addJobFlags(renderCmd)
	renderCmd.Flags().StringVarP(&output, "output", "o", "buddhabrot.png", "output PNG path")
	renderCmd.Flags().BoolVar(&save, "save", false, "persist raw grids and metadata to the data directory")
	renderCmd.Flags().BoolVar(&live, "live", false, "show live progress view")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "render a braille preview in the terminal",
		RunE:  runPreview,
	}
	addJobFlags(previewCmd)
	previewCmd.Flags().Float64Var(&level, "level", 0.05, "density threshold for lighting a dot")

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot a 1D marginal density profile",
		RunE:  runProfile,
	}
	addJobFlags(profileCmd)
	profileCmd.Flags().StringVar(&axis, "axis", "real", "marginal axis (real or imag)")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved renders",
		RunE:  listRuns,
	}

	statsCmd := &cobra.Command{
		Use:   "stats [run_id]",
		Short: "grid statistics for a saved render",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named viewports",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tREAL\tIMAG")
			for _, name := range names {
				v := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t[%.3f, %.3f]\t[%.3f, %.3f]\n", name, v.MinR, v.MaxR, v.MinI, v.MaxI)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(renderCmd, previewCmd, profileCmd, runsCmd, statsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addJobFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "image width")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "image height")
	cmd.Flags().Float64Var(&minR, "min-r", -2.0, "viewport minimum real")
	cmd.Flags().Float64Var(&minI, "min-i", -2.0, "viewport minimum imaginary")
	cmd.Flags().Float64Var(&maxR, "max-r", 2.0, "viewport maximum real")
	cmd.Flags().Float64Var(&maxI, "max-i", 2.0, "viewport maximum imaginary")
	cmd.Flags().IntVar(&redIters, "red-iters", config.DefaultRedIters, "red channel iteration budget")
	cmd.Flags().IntVar(&greenIters, "green-iters", config.DefaultGreenIters, "green channel iteration budget")
	cmd.Flags().IntVar(&blueIters, "blue-iters", config.DefaultBlueIters, "blue channel iteration budget")
	cmd.Flags().Int64Var(&samples, "samples", 0, "samples per channel (0 = 100 per pixel)")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines per pass (0 = NumCPU)")
	cmd.Flags().StringVar(&normalization, "normalization", string(density.NormShared), "normalization mode (shared or per-channel)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "named viewport preset")
}

// buildConfig merges config file, preset and flags. CLI flags override the
// file; the preset overrides viewport flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("width") || configFile == "" {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") || configFile == "" {
		cfg.Height = height
	}
	if cmd.Flags().Changed("min-r") {
		cfg.Viewport.MinR = minR
	}
	if cmd.Flags().Changed("min-i") {
		cfg.Viewport.MinI = minI
	}
	if cmd.Flags().Changed("max-r") {
		cfg.Viewport.MaxR = maxR
	}
	if cmd.Flags().Changed("max-i") {
		cfg.Viewport.MaxI = maxI
	}
	if cmd.Flags().Changed("red-iters") {
		cfg.Red.Iterations = redIters
	}
	if cmd.Flags().Changed("green-iters") {
		cfg.Green.Iterations = greenIters
	}
	if cmd.Flags().Changed("blue-iters") {
		cfg.Blue.Iterations = blueIters
	}
	if cmd.Flags().Changed("normalization") {
		cfg.Normalization = normalization
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if output != "" && cmd.Flags().Lookup("output") != nil {
		if cmd.Flags().Changed("output") || cfg.Output == "" {
			cfg.Output = output
		}
	}

	if preset != "" {
		v := config.GetPreset(preset)
		if v == nil {
			names := config.ListPresets()
			sort.Strings(names)
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, names)
		}
		cfg.Viewport = *v
	}

	perChannel := samples
	if perChannel == 0 {
		perChannel = int64(cfg.Width) * int64(cfg.Height) * config.DefaultSamplesPerPixel
	}
	if cmd.Flags().Changed("samples") || configFile == "" {
		cfg.Red.Samples = perChannel
		cfg.Green.Samples = perChannel
		cfg.Blue.Samples = perChannel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	job := cfg.Job()
	start := time.Now()

	var res *density.Result
	if live {
		tracker := tui.NewTracker([density.NumChannels]int64{
			cfg.Red.Samples, cfg.Green.Samples, cfg.Blue.Samples,
		})
		job.Progress = tracker.Update

		results := make(chan *density.Result, 1)
		finished := make(chan error, 1)
		go func() {
			r, renderErr := density.Render(context.Background(), job)
			results <- r
			finished <- renderErr
		}()
		if err := tui.Run(tracker, finished); err != nil {
			return err
		}
		select {
		case res = <-results:
		default:
		}
		if res == nil {
			return fmt.Errorf("render aborted")
		}
	} else {
		fmt.Printf("rendering %dx%d, %d samples per channel...\n", cfg.Width, cfg.Height, cfg.Red.Samples)
		res, err = density.Render(context.Background(), job)
		if err != nil {
			return err
		}
	}

	elapsed := time.Since(start)

	if err := export.WritePNG(cfg.Output, res.Channels[0], res.Channels[1], res.Channels[2]); err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("wrote %s\n", cfg.Output)
	fmt.Printf("max cell count: %d\n", res.SharedMax)

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg, res)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	res, err := density.Render(context.Background(), cfg.Job())
	if err != nil {
		return err
	}

	// Sum the channels for the monochrome preview.
	combined := density.NewGrid(cfg.Width, cfg.Height)
	var max uint64
	for c := 0; c < density.NumChannels; c++ {
		if m := combined.Merge(res.Raw[c]); m > max {
			max = m
		}
	}

	canvas := viz.GridCanvas(density.Normalize(combined, max, 1.0), level)
	fmt.Print(canvas.String())
	return nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if axis != "real" && axis != "imag" {
		return fmt.Errorf("axis must be real or imag, got %q", axis)
	}

	res, err := density.Render(context.Background(), cfg.Job())
	if err != nil {
		return err
	}

	names := []string{"red", "green", "blue"}
	for c := 0; c < density.NumChannels; c++ {
		var data []float64
		caption := names[c] + " channel, density vs "
		if axis == "real" {
			data = analysis.RowMarginal(res.Channels[c])
			caption += "real axis"
		} else {
			data = analysis.ColMarginal(res.Channels[c])
			caption += "imaginary axis"
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSIZE\tITERS (R/G/B)\tSAMPLES\tNORM\tMAX")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d/%d/%d\t%d\t%s\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width, run.Height,
			run.Iterations[0], run.Iterations[1], run.Iterations[2],
			run.Samples[0],
			run.Normalization,
			run.SharedMax,
		)
	}

	return w.Flush()
}

func runStats(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("size: %dx%d\n\n", meta.Width, meta.Height)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CHANNEL\tITERS\tSAMPLES\tMAX\tMASS\tOCCUPANCY\tENTROPY")

	for c, name := range []string{"red", "green", "blue"} {
		g, err := st.LoadGrid(runID, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%.3f\t%.3f\n",
			name,
			meta.Iterations[c],
			meta.Samples[c],
			g.MaxCell(),
			g.Total(),
			analysis.Occupancy(g),
			analysis.Entropy(g),
		)
	}

	return w.Flush()
}
