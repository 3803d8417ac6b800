package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/mwichro/dealab/internal/config"
	"github.com/mwichro/dealab/internal/exc"
	"github.com/mwichro/dealab/internal/export"
	"github.com/mwichro/dealab/internal/geom"
	"github.com/mwichro/dealab/internal/lab"
	"github.com/mwichro/dealab/internal/report"
	"github.com/mwichro/dealab/internal/store"
	"github.com/mwichro/dealab/internal/tui"
)

var (
	configFile  string
	profileName string
	dataPath    string
	// Check policy overrides
	noAbort     bool
	quietTraces bool
	extraOutput string
	// Sweep options
	workers int
	live    bool
	// Output directory for segment files
	outDir string
)

// main is the entry point for the dealab CLI; it registers commands and
// flags, runs a live sweep of every scenario when no subcommand is given,
// and exits the process with status 1 if command execution returns an
// error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "dealab",
		Short: "check and failure-report laboratory",
		RunE: func(cmd *cobra.Command, args []string) error {
			live = true
			return runSweep(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&profileName, "profile", "", "use profile configuration")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", config.DefaultDBPath, "runs database path")
	rootCmd.PersistentFlags().BoolVar(&noAbort, "no-abort", false, "failed checks throw instead of aborting")
	rootCmd.PersistentFlags().BoolVar(&quietTraces, "quiet-traces", false, "omit stacktraces from failure reports")
	rootCmd.PersistentFlags().StringVar(&extraOutput, "extra-output", "", "extra text appended to failure reports")

	runCmd := &cobra.Command{
		Use:   "run [scenario...]",
		Short: "run scenarios one after another",
		RunE:  runScenarios,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run the configured scenarios in parallel",
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&workers, "workers", config.DefaultWorkers, "parallel workers")
	sweepCmd.Flags().BoolVar(&live, "live", false, "watch outcomes on an interactive screen")

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list registered scenarios",
		RunE:  listScenarios,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show the failures of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot failure counts across stored runs",
		RunE:  plotRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	segmentsCmd := &cobra.Command{
		Use:   "segments",
		Short: "write demo segment output as svg and csv",
		RunE:  writeSegments,
	}
	segmentsCmd.Flags().StringVar(&outDir, "out", ".", "output directory")

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}

	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "list available profiles",
		RunE:  listProfiles,
	}

	rootCmd.AddCommand(runCmd, sweepCmd, scenariosCmd, listCmd, showCmd, plotCmd, exportCmd, segmentsCmd, initCmd, profilesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: profile, then config
// file, then command-line flags, each overriding the one before.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if profileName != "" {
		p := config.GetProfile(profileName)
		if p == nil {
			return nil, fmt.Errorf("unknown profile: %s (available: %v)", profileName, config.ListProfiles())
		}
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if noAbort {
		cfg.Checks.AbortOnFailure = false
	}
	if quietTraces {
		cfg.Checks.SuppressStacktrace = true
	}
	if cmd.Flags().Changed("extra-output") {
		cfg.Checks.AdditionalOutput = extraOutput
	}
	if cmd.Flags().Changed("data") {
		cfg.Store.Path = dataPath
	}
	if cmd.Flags().Changed("workers") {
		cfg.Lab.Workers = workers
	}
	return cfg, nil
}

func sweepNames(cfg *config.Config) []string {
	if len(cfg.Lab.Scenarios) > 0 {
		return cfg.Lab.Scenarios
	}
	return lab.Names()
}

func openStore(cfg *config.Config) (*store.Store, error) {
	if !cfg.Store.Enabled {
		return nil, exc.Do(func() {
			exc.AssertThrow(false, "cfg.Store.Enabled", exc.NeedsStore())
		})
	}
	return store.Open(cfg.Store.Path)
}

func persist(cfg *config.Config, outcomes []lab.Outcome) error {
	if !cfg.Store.Enabled {
		return nil
	}
	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := st.SaveRun(outcomes)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", id)
	return nil
}

func countFailed(outcomes []lab.Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Failed() {
			n++
		}
	}
	return n
}

func runScenarios(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg.ApplyChecks()

	names := args
	if len(names) == 0 {
		names = sweepNames(cfg)
	}

	log, err := cfg.BuildLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	start := time.Now()
	outcomes, err := lab.NewRunner(log).Run(context.Background(), names)
	if err != nil {
		return err
	}

	for _, o := range outcomes {
		fmt.Println(report.Detail(o))
	}
	fmt.Println(report.Summary(outcomes))
	fmt.Printf("completed in %v\n", time.Since(start).Round(time.Millisecond))

	if err := persist(cfg, outcomes); err != nil {
		return err
	}
	if failed := countFailed(outcomes); failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(outcomes))
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg.ApplyChecks()
	names := sweepNames(cfg)

	var outcomes []lab.Outcome
	if live {
		outcomes, err = tui.Watch(names, cfg.Lab.Workers)
		if err != nil {
			return err
		}
	} else {
		log, err := cfg.BuildLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		outcomes, err = lab.NewRunner(log).RunParallel(context.Background(), names, cfg.Lab.Workers)
		if err != nil {
			return err
		}
	}

	for _, o := range outcomes {
		fmt.Println(report.Outcome(o))
	}
	fmt.Println(report.Summary(outcomes))

	if err := persist(cfg, outcomes); err != nil {
		return err
	}
	if failed := countFailed(outcomes); failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(outcomes))
	}
	return nil
}

func listScenarios(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tABOUT")
	for _, name := range lab.Names() {
		s, err := lab.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", s.Name, s.About)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.Runs()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTARTED\tSCENARIOS\tFAILED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\n",
			run.ID,
			run.StartedAt.Format("2006-01-02 15:04:05"),
			run.Scenarios,
			run.Failures,
		)
	}
	return w.Flush()
}

func findRun(st *store.Store, runID string) (store.Run, error) {
	runs, err := st.Runs()
	if err != nil {
		return store.Run{}, err
	}
	for _, run := range runs {
		if run.ID == runID {
			return run, nil
		}
	}
	return store.Run{}, fmt.Errorf("unknown run: %s", runID)
}

func showRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	run, err := findRun(st, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", run.ID)
	fmt.Printf("started: %s\n", run.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("scenarios: %d  failed: %d\n", run.Scenarios, run.Failures)

	failures, err := st.Failures(run.ID)
	if err != nil {
		return err
	}
	if len(failures) == 0 {
		fmt.Println("\nall scenarios passed")
		return nil
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tKIND\tWHERE")
	for _, f := range failures {
		fmt.Fprintf(w, "%s\t%s\t%s:%d\n", f.Scenario, f.Kind, f.File, f.Line)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, f := range failures {
		fmt.Printf("\n--- %s ---\n%s\n", f.Scenario, f.Report)
	}
	return nil
}

func plotRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.Runs()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	data := make([]float64, len(runs))
	for i, run := range runs {
		data[i] = float64(run.Failures)
	}

	fmt.Printf("failure history over %d runs\n\n", len(runs))
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption("failures per run"),
	)
	fmt.Println(graph)

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	run, err := findRun(st, args[0])
	if err != nil {
		return err
	}
	failures, err := st.Failures(run.ID)
	if err != nil {
		return err
	}

	payload := struct {
		Run      store.Run       `json:"run"`
		Failures []store.Failure `json:"failures"`
	}{run, failures}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func writeSegments(cmd *cobra.Command, args []string) error {
	segs := []geom.Segment{
		{Start: geom.Point{0, 0}, End: geom.Point{4, 0}},
		{Start: geom.Point{4, 0}, End: geom.Point{2, 3}},
		{Start: geom.Point{2, 3}, End: geom.Point{0, 0}},
	}
	side := math.Sqrt(13)

	var d geom.DataOut
	d.BuildPatches(segs)
	d.AddDatasets(
		[]string{"length", "midheight"},
		[][]float64{
			{4, 0},
			{side, 1.5},
			{side, 1.5},
		},
	)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	svgPath := filepath.Join(outDir, "segments.svg")
	f, err := os.Create(svgPath)
	if err != nil {
		return err
	}
	if err := export.WriteSVG(f, &d, 400, 300); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", svgPath)

	csvPath := filepath.Join(outDir, "segments.csv")
	f, err = os.Create(csvPath)
	if err != nil {
		return err
	}
	if err := export.WriteCSV(f, &d); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", csvPath)

	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "dealab.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func listProfiles(cmd *cobra.Command, args []string) error {
	names := config.ListProfiles()
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tWORKERS\tSTORE\tABORT\tLEVEL")
	for _, name := range names {
		p := config.GetProfile(name)
		fmt.Fprintf(w, "%s\t%d\t%v\t%v\t%s\n",
			name, p.Lab.Workers, p.Store.Enabled, p.Checks.AbortOnFailure, p.Log.Level)
	}
	return w.Flush()
}
