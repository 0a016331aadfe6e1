package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/lesson"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/player"
	"github.com/san-kum/algoviz/internal/sim"
	"github.com/san-kum/algoviz/internal/store"
	"github.com/san-kum/algoviz/internal/trace"
	"github.com/san-kum/algoviz/internal/viz"
)

var (
	dataDir    string
	preset     string
	configFile string
	values     []int
	target     int
	k          int
	nodes      int
	outFile    string
	workers    int
)

// main registers commands and flags, launching the interactive browser when
// no subcommand is given. It exits with status 1 on command failure.
func main() {
	rootCmd := &cobra.Command{
		Use:   "algoviz",
		Short: "algorithm snapshot playback engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunBrowser(sim.NewRegistry())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".algoviz", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "simulate and archive a run",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addInputFlags(runCmd)

	playCmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "simulate and step through the run interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  playSimulation,
	}
	addInputFlags(playCmd)

	replayCmd := &cobra.Command{
		Use:   "replay [run_id]",
		Short: "step through an archived run",
		Args:  cobra.ExactArgs(1),
		RunE:  replayRun,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list archived runs",
		RunE:  listRuns,
	}

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list registered algorithms and their snapshot contracts",
		RunE:  listAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list available presets for an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for algorithm: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, name := range names {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot primary values over the run's steps",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run's snapshots as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a run as an SVG snapshot strip",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output file (default <run_id>.svg)")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "re-simulate every preset twice and check determinism",
		RunE:  verifyPresets,
	}
	verifyCmd.Flags().IntVar(&workers, "workers", 4, "concurrent verification workers")

	lessonCmd := &cobra.Command{
		Use:   "lesson [file]",
		Short: "run a scripted lesson file",
		Args:  cobra.ExactArgs(1),
		RunE:  runLesson,
	}

	rootCmd.AddCommand(runCmd, playCmd, replayCmd, listCmd, algorithmsCmd, presetsCmd,
		showCmd, plotCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, verifyCmd, lessonCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "", "use a named preset input")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().IntSliceVar(&values, "values", nil, "input values")
	cmd.Flags().IntVar(&target, "target", 0, "target value (search families)")
	cmd.Flags().IntVar(&k, "k", 0, "k parameter (window size, top-k)")
	cmd.Flags().IntVar(&nodes, "nodes", 0, "node count (graph families)")
}

// resolveInput layers the input sources: preset first, config file over it,
// changed CLI flags last.
func resolveInput(cmd *cobra.Command, algorithm string) (trace.Input, error) {
	var in trace.Input

	if preset != "" {
		p := config.GetPreset(algorithm, preset)
		if p == nil {
			return in, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(algorithm))
		}
		in = *p
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return in, fmt.Errorf("failed to load config: %w", err)
		}
		if cfg.Algorithm != "" && cfg.Algorithm != algorithm {
			return in, fmt.Errorf("config is for %s, not %s", cfg.Algorithm, algorithm)
		}
		resolved, err := cfg.ResolveInput()
		if err != nil {
			return in, err
		}
		in = resolved
	}

	if cmd.Flags().Changed("values") {
		in.Values = values
	}
	if cmd.Flags().Changed("target") {
		in.Target = target
	}
	if cmd.Flags().Changed("k") {
		in.K = k
	}
	if cmd.Flags().Changed("nodes") {
		in.Nodes = nodes
	}

	if in.Empty() {
		return in, fmt.Errorf("no input: pass --preset, --config or --values (presets: %v)",
			config.ListPresets(algorithm))
	}
	return in, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	algorithm := args[0]

	in, err := resolveInput(cmd, algorithm)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	reg := sim.NewRegistry()

	fmt.Printf("running %s simulation...\n", algorithm)
	start := time.Now()

	seq, err := reg.Simulate(algorithm, in)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	summary := metrics.Summarize(seq, metrics.Defaults())

	runID, err := st.Save(algorithm, in, seq, summary)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("snapshots: %d\n", len(seq))
	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(summary))
	for name := range summary {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.0f\n", name, summary[name])
	}

	return nil
}

func playSimulation(cmd *cobra.Command, args []string) error {
	algorithm := args[0]

	in, err := resolveInput(cmd, algorithm)
	if err != nil {
		return err
	}

	reg := sim.NewRegistry()
	p, err := reg.CreatePlayback(algorithm, in)
	if err != nil {
		return err
	}
	contract, err := reg.Contract(algorithm)
	if err != nil {
		return err
	}

	return viz.RunPlayback(algorithm, contract, p)
}

func replayRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	seq, err := st.LoadSequence(runID)
	if err != nil {
		return err
	}

	p, err := player.New(seq)
	if err != nil {
		return err
	}

	// Tolerate archives of families no longer registered.
	contract, _ := sim.NewRegistry().Contract(meta.Algorithm)

	return viz.RunPlayback(meta.Algorithm, contract, p)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tTIME\tSNAPSHOTS\tCOMPARISONS\tSWAPS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.0f\t%.0f\n",
			run.ID,
			run.Algorithm,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Snapshots,
			run.Metrics["comparisons"],
			run.Metrics["swaps"],
		)
	}

	return w.Flush()
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	reg := sim.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCURSORS\tAUX\tDESCRIPTION")

	for _, id := range reg.List() {
		c, err := reg.Contract(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			id,
			strings.Join(c.Cursors, ","),
			strings.Join(c.Aux, ","),
			c.Description,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	seq, err := st.LoadSequence(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("algorithm: %s\n", meta.Algorithm)
	fmt.Printf("snapshots: %d\n\n", len(seq))

	indices := 0
	for _, s := range seq {
		if len(s.Primary) > indices {
			indices = len(s.Primary)
		}
	}
	if indices == 0 {
		return fmt.Errorf("no primary data to plot")
	}
	maxPlots := 6
	if indices > maxPlots {
		indices = maxPlots
	}

	for idx := 0; idx < indices; idx++ {
		data := make([]float64, len(seq))
		for i, s := range seq {
			if idx < len(s.Primary) {
				data[i] = float64(s.Primary[idx])
			}
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("primary[%d] by step", idx)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	seq, err := st.LoadSequence(args[0])
	if err != nil {
		return err
	}

	return store.ExportJSONStdout(meta, seq)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	seq, err := st.LoadSequence(args[0])
	if err != nil {
		return err
	}

	return store.ExportCSV(os.Stdout, seq)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	seq, err := st.LoadSequence(runID)
	if err != nil {
		return err
	}

	path := outFile
	if path == "" {
		path = runID + ".svg"
	}

	if err := os.WriteFile(path, []byte(store.SequenceToSVG(seq, 24)), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func verifyPresets(cmd *cobra.Command, args []string) error {
	reg := sim.NewRegistry()

	presets := config.AllPresets()
	jobs := make([]sim.Job, len(presets))
	for i, p := range presets {
		jobs[i] = sim.Job{
			Name:  fmt.Sprintf("%s/%s", p.Algorithm, p.Name),
			ID:    p.Algorithm,
			Input: p.Input,
		}
	}

	start := time.Now()
	results := sim.NewBatch(reg, workers).Run(jobs)
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tSNAPSHOTS\tSTATUS")

	failed := 0
	for _, res := range results {
		status := "ok"
		if res.Err != nil {
			status = res.Err.Error()
			failed++
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", res.Job.Name, res.Snapshots, status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nverified %d presets in %v\n", len(results), elapsed)
	if failed > 0 {
		return fmt.Errorf("%d presets failed verification", failed)
	}
	return nil
}

func runLesson(cmd *cobra.Command, args []string) error {
	l, err := lesson.Load(args[0])
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("lesson: %s\n", l.Name)
	if l.Description != "" {
		fmt.Printf("%s\n", l.Description)
	}

	results, err := lesson.Run(l, sim.NewRegistry(), st)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tALGORITHM\tRUN\tSNAPSHOTS")
	for i, res := range results {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", i+1, res.Algorithm, res.RunID, res.Snapshots)
	}
	return w.Flush()
}
