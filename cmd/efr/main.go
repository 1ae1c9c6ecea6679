package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/wigging/ent-flow-reactor/internal/config"
	"github.com/wigging/ent-flow-reactor/internal/export"
	"github.com/wigging/ent-flow-reactor/internal/reactor"
	"github.com/wigging/ent-flow-reactor/internal/sweep"
	"github.com/wigging/ent-flow-reactor/internal/viz"
)

var (
	configFile string
	network    string
	biocomp    string
	temp       float64
	duration   float64
	jsonPath   string
	csvPath    string
	svgPath    string
	showChart  bool
	// sweep bounds
	tempLo   float64
	tempHi   float64
	tempStep float64
	// sensitivity perturbation
	delta float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "efr",
		Short: "biomass pyrolysis in an entrained flow reactor",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&network, "network", "", "reaction network (debiagi-sw, three-step)")
	rootCmd.PersistentFlags().StringVar(&biocomp, "biocomp", "", "composition method (chem, ult, ultmod)")

	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "run an isothermal batch simulation",
		RunE:  runBatch,
	}
	batchCmd.Flags().Float64Var(&temp, "temp", 0, "temperature [K]")
	batchCmd.Flags().Float64Var(&duration, "time", 0, "duration [s]")
	batchCmd.Flags().StringVar(&jsonPath, "json", "", "write run record to JSON file")
	batchCmd.Flags().StringVar(&csvPath, "csv", "", "write species table to CSV file")
	batchCmd.Flags().StringVar(&svgPath, "svg", "", "write yield curves to SVG file")
	batchCmd.Flags().BoolVar(&showChart, "chart", false, "print yield chart")

	flowCmd := &cobra.Command{
		Use:   "flow",
		Short: "run the entrained flow reactor simulation",
		RunE:  runFlow,
	}
	flowCmd.Flags().Float64Var(&temp, "temp", 0, "gas temperature [K]")
	flowCmd.Flags().Float64Var(&duration, "residence", 0, "residence time [s], overrides pipe geometry")
	flowCmd.Flags().StringVar(&jsonPath, "json", "", "write run record to JSON file")
	flowCmd.Flags().StringVar(&csvPath, "csv", "", "write species table to CSV file")
	flowCmd.Flags().StringVar(&svgPath, "svg", "", "write yield curves to SVG file")
	flowCmd.Flags().BoolVar(&showChart, "chart", false, "print yield chart")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "batch yields over a temperature range",
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&tempLo, "from", 673.15, "start temperature [K]")
	sweepCmd.Flags().Float64Var(&tempHi, "to", 873.15, "end temperature [K]")
	sweepCmd.Flags().Float64Var(&tempStep, "step", 25.0, "temperature step [K]")
	sweepCmd.Flags().Float64Var(&duration, "time", 0, "duration [s]")

	compoCmd := &cobra.Command{
		Use:   "compo",
		Short: "report the biomass composition",
		RunE:  runCompo,
	}

	sensCmd := &cobra.Command{
		Use:   "sensitivity",
		Short: "yield sensitivity to feed composition",
		RunE:  runSensitivity,
	}
	sensCmd.Flags().Float64Var(&delta, "delta", 0.05, "mass fraction perturbation")
	sensCmd.Flags().Float64Var(&duration, "time", 0, "duration [s]")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "batch simulation with terminal playback",
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&temp, "temp", 0, "temperature [K]")
	liveCmd.Flags().Float64Var(&duration, "time", 0, "duration [s]")

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.DefaultConfig())
		},
	}

	rootCmd.AddCommand(batchCmd, flowCmd, sweepCmd, compoCmd, sensCmd, liveCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if network != "" {
		cfg.Network = network
	}
	if biocomp != "" {
		cfg.Biocomp = biocomp
	}
	if cmd.Flags().Changed("temp") {
		cfg.Batch.Temperature = temp
		cfg.Reactor.Temperature = temp
	}
	if cmd.Flags().Changed("time") {
		cfg.Batch.TimeDuration = duration
	}
	if cmd.Flags().Changed("residence") {
		cfg.Reactor.ResidenceTime = duration
	}
	return cfg, nil
}

func printYields(result *reactor.Result, elapsed time.Duration) {
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("samples: %d\n", result.Trajectory.Len())
	fmt.Printf("steps: %d\n\n", result.Steps)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PHASE\tYIELD [wt%]")
	fmt.Fprintf(w, "gas\t%.2f\n", result.Yields.Gas*100)
	fmt.Fprintf(w, "tar\t%.2f\n", result.Yields.Tar*100)
	fmt.Fprintf(w, "char\t%.2f\n", result.Yields.Char*100)
	fmt.Fprintf(w, "solid\t%.2f\n", result.Yields.Solid*100)
	w.Flush()
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	net, err := cfg.BuildNetwork()
	if err != nil {
		return err
	}

	batch, err := reactor.NewBatch(net, cfg.BatchRunConfig())
	if err != nil {
		return err
	}

	fmt.Printf("running batch simulation at %.2f K...\n", cfg.Batch.Temperature)
	start := time.Now()
	result, err := batch.Run(context.Background())
	if err != nil {
		return err
	}
	printYields(result, time.Since(start))

	if showChart {
		fmt.Println()
		fmt.Println(viz.YieldChart(net, result.Trajectory, 80, 12))
	}
	if jsonPath != "" {
		rec := export.NewRunRecord(cfg.Network, "batch", cfg.Batch.Temperature, net, result)
		if err := export.WriteJSON(jsonPath, rec); err != nil {
			return err
		}
	}
	if csvPath != "" {
		if err := export.WriteCSVFile(csvPath, net, result.Trajectory); err != nil {
			return err
		}
	}
	if svgPath != "" {
		if err := export.WriteYieldSVG(svgPath, net, result.Trajectory, 800, 500); err != nil {
			return err
		}
	}
	return nil
}

func runFlow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	net, err := cfg.BuildNetwork()
	if err != nil {
		return err
	}
	profile, err := cfg.BuildProfile()
	if err != nil {
		return err
	}
	sys, err := reactor.NewSystem(net, profile)
	if err != nil {
		return err
	}

	flow, err := reactor.NewFlow(sys, cfg.FlowConfig())
	if err != nil {
		return err
	}

	fmt.Printf("running flow simulation at %.2f K...\n", cfg.Reactor.Temperature)
	start := time.Now()
	result, err := flow.Run(context.Background())
	if err != nil {
		return err
	}
	printYields(result, time.Since(start))

	if showChart {
		fmt.Println()
		fmt.Println(viz.YieldChart(net, result.Trajectory, 80, 12))
	}
	if jsonPath != "" {
		rec := export.NewRunRecord(cfg.Network, "flow", cfg.Reactor.Temperature, net, result)
		if err := export.WriteJSON(jsonPath, rec); err != nil {
			return err
		}
	}
	if csvPath != "" {
		if err := export.WriteCSVFile(csvPath, net, result.Trajectory); err != nil {
			return err
		}
	}
	if svgPath != "" {
		if err := export.WriteYieldSVG(svgPath, net, result.Trajectory, 800, 500); err != nil {
			return err
		}
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if tempStep <= 0 {
		return fmt.Errorf("temperature step must be positive")
	}
	net, err := cfg.BuildNetwork()
	if err != nil {
		return err
	}

	var temps []float64
	for t := tempLo; t <= tempHi+1e-9; t += tempStep {
		temps = append(temps, t)
	}

	fmt.Printf("sweeping %d temperatures from %.2f K to %.2f K...\n\n", len(temps), tempLo, tempHi)
	points := sweep.Temperatures(context.Background(), net, temps, cfg.BatchRunConfig())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TEMP [K]\tGAS\tTAR\tCHAR\tSOLID")
	for _, p := range points {
		if p.Err != nil {
			fmt.Fprintf(w, "%.2f\terror: %v\n", p.Temperature, p.Err)
			continue
		}
		fmt.Fprintf(w, "%.2f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			p.Temperature, p.Yields.Gas, p.Yields.Tar, p.Yields.Char, p.Yields.Solid)
	}
	w.Flush()

	fmt.Println()
	fmt.Println(viz.SweepChart(points, 80, 12))
	return nil
}

func runCompo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	comp, err := cfg.Composition()
	if err != nil {
		return err
	}

	fmt.Printf("feedstock: %s (method %s)\n\n", cfg.Feedstock.Name, cfg.Biocomp)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COMPONENT\tMASS FRACTION")
	fmt.Fprintf(w, "cellulose\t%.4f\n", comp.Cellulose)
	fmt.Fprintf(w, "hemicellulose\t%.4f\n", comp.Hemicellulose)
	fmt.Fprintf(w, "lignin-c\t%.4f\n", comp.LigninC)
	fmt.Fprintf(w, "lignin-h\t%.4f\n", comp.LigninH)
	fmt.Fprintf(w, "lignin-o\t%.4f\n", comp.LigninO)
	fmt.Fprintf(w, "tannins\t%.4f\n", comp.Tannins)
	fmt.Fprintf(w, "triglycerides\t%.4f\n", comp.Triglycerides)
	fmt.Fprintf(w, "total\t%.4f\n", comp.Sum())
	return w.Flush()
}

func runSensitivity(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	net, err := cfg.BuildNetwork()
	if err != nil {
		return err
	}

	components := []string{"CELL", "GMSW", "LIGC", "LIGH", "LIGO", "TANN", "TGL"}
	fmt.Printf("perturbing feed components by %.3f at %.2f K...\n\n", delta, cfg.Batch.Temperature)

	effects, err := sweep.CompositionEffects(context.Background(), net, components, delta, cfg.BatchRunConfig())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COMPONENT\tdGAS\tdTAR\tdCHAR\tdSOLID")
	for _, e := range effects {
		fmt.Fprintf(w, "%s\t%+.4f\t%+.4f\t%+.4f\t%+.4f\n", e.Component, e.Gas, e.Tar, e.Char, e.Solid)
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	net, err := cfg.BuildNetwork()
	if err != nil {
		return err
	}

	batch, err := reactor.NewBatch(net, cfg.BatchRunConfig())
	if err != nil {
		return err
	}
	result, err := batch.Run(context.Background())
	if err != nil {
		return err
	}
	return viz.Run(fmt.Sprintf("batch %.0f K", cfg.Batch.Temperature), net, result)
}
