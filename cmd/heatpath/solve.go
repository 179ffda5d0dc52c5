package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/heatpath/cache"
	"github.com/katalvlaran/heatpath/config"
	"github.com/katalvlaran/heatpath/dijkstra"
	"github.com/katalvlaran/heatpath/gridgraph"
	"github.com/katalvlaran/heatpath/solver"
)

var (
	policiesFile string
	minRun       int
	maxRun       int
	showPath     bool
)

var solveCmd = &cobra.Command{
	Use:   "solve GRIDFILE",
	Short: "Find the cheapest route for every configured policy",
	Long: "solve parses GRIDFILE (one row of digits per line, '-' for stdin) and prints\n" +
		"the cheapest route cost for each policy. Policies come from --min-run/--max-run,\n" +
		"else --policies, else solver.policies in heatpath.toml, else short (1..3) and\n" +
		"long (4..10).",
	Args: cobra.ExactArgs(1),
	RunE: solveCommand,
}

func init() {
	solveCmd.Flags().StringVar(&policiesFile, "policies", "", "TOML file with [policies.NAME] min_run/max_run tables")
	solveCmd.Flags().IntVar(&minRun, "min-run", 0, "Minimum run length for a single ad-hoc policy")
	solveCmd.Flags().IntVar(&maxRun, "max-run", 0, "Maximum run length for a single ad-hoc policy")
	solveCmd.Flags().BoolVar(&showPath, "path", false, "Print the route taken for each answer")
	solveCmd.MarkFlagsRequiredTogether("min-run", "max-run")
}

func solveCommand(cmd *cobra.Command, args []string) error {
	settings := config.Current()
	logger := log.With().Str("run", uuid.NewString()).Logger()

	g, err := readGrid(cmd, args[0])
	if err != nil {
		return err
	}
	logger.Debug().Int("width", g.Width).Int("height", g.Height).Msg("grid parsed")

	policies, err := selectPolicies(cmd, settings)
	if err != nil {
		return err
	}

	rc := cache.New(settings.CacheSize)
	if settings.CacheFile != "" {
		if err := rc.LoadFile(settings.CacheFile); err != nil {
			logger.Warn().Err(err).Str("file", settings.CacheFile).Msg("Couldn't load result cache, starting empty")
		}
	}

	opts := []solver.Option{
		solver.WithCache(rc),
		solver.WithLogger(logger),
		solver.WithParallelism(settings.Parallelism),
	}
	if showPath {
		opts = append(opts, solver.WithPaths())
	}
	answers, err := solver.New(opts...).Solve(cmd.Context(), g, policies)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, a := range answers {
		printAnswer(out, a)
	}

	if settings.CacheFile != "" {
		if err := rc.SaveFile(settings.CacheFile); err != nil {
			logger.Warn().Err(err).Str("file", settings.CacheFile).Msg("Couldn't save result cache")
		}
	}

	return nil
}

func readGrid(cmd *cobra.Command, name string) (*gridgraph.CostGrid, error) {
	var r io.Reader = cmd.InOrStdin()
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	g, err := gridgraph.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return g, nil
}

func selectPolicies(cmd *cobra.Command, settings config.Settings) ([]config.NamedPolicy, error) {
	flags := cmd.Flags()
	if flags.Changed("min-run") {
		p := dijkstra.Policy{MinRun: minRun, MaxRun: maxRun}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		return []config.NamedPolicy{{Name: "custom", Policy: p}}, nil
	}

	path := policiesFile
	if path == "" {
		path = settings.Policies
	}
	if path == "" {
		return config.DefaultPolicies(), nil
	}

	return config.LoadPolicies(path)
}

func printAnswer(w io.Writer, a solver.Answer) {
	label := fmt.Sprintf("%-10s %-6s", a.Name, a.Policy)
	if !a.Reachable {
		fmt.Fprintf(w, "%s %s\n", label, color.Red.Sprint("no path"))
		return
	}

	suffix := ""
	if a.Cached {
		suffix = color.Gray.Sprint(" (cached)")
	}
	fmt.Fprintf(w, "%s %s%s\n", label, color.Green.Sprint(a.Cost), suffix)

	if len(a.Path) > 0 {
		moves := make([]string, len(a.Path))
		for i, st := range a.Path {
			moves[i] = st.Heading.String()[:1]
		}
		fmt.Fprintf(w, "%11s%s\n", "", compress(moves))
	}
}

// compress run-length encodes single-letter moves: R R R D -> 3R 1D.
func compress(moves []string) string {
	var parts []string
	for i := 0; i < len(moves); {
		j := i
		for j < len(moves) && moves[j] == moves[i] {
			j++
		}
		parts = append(parts, fmt.Sprintf("%d%s", j-i, moves[i]))
		i = j
	}

	return strings.Join(parts, " ")
}
