package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/postman/matching"
)

// Config holds the solver defaults a --config file may set.
// Command-line flags win over file values.
//
//	strategy = "bitmask"
//	parallel = 4
//	max_odd = 16
//	verify = true
//	verbose = false
type Config struct {
	Strategy string `toml:"strategy"`
	Parallel int    `toml:"parallel"`
	MaxOdd   int    `toml:"max_odd"`
	Verify   bool   `toml:"verify"`
	Verbose  bool   `toml:"verbose"`
}

func defaultConfig() Config {
	return Config{
		Strategy: matching.Exhaustive.String(),
		Parallel: 1,
	}
}

// loadConfig reads path over the defaults. An empty path yields the defaults.
// Unknown keys are rejected so typos do not pass silently.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	if _, err := matching.ParseStrategy(cfg.Strategy); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if cfg.Parallel < 1 {
		cfg.Parallel = 1
	}

	return cfg, nil
}

// solverFlags are the flags shared by solve and render.
type solverFlags struct {
	strategy string
	parallel int
	maxOdd   int
}

func (f *solverFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.strategy, "strategy", "", "matching strategy: exhaustive or bitmask")
	cmd.Flags().IntVar(&f.parallel, "parallel", 0, "concurrent shortest-path sources")
	cmd.Flags().IntVar(&f.maxOdd, "max-odd", 0, "fail when the graph has more odd-degree vertices (0 = no limit)")
}

// apply overlays the flags the user actually set onto cfg.
func (f *solverFlags) apply(cmd *cobra.Command, cfg Config) Config {
	if cmd.Flags().Changed("strategy") {
		cfg.Strategy = f.strategy
	}
	if cmd.Flags().Changed("parallel") {
		cfg.Parallel = f.parallel
	}
	if cmd.Flags().Changed("max-odd") {
		cfg.MaxOdd = f.maxOdd
	}
	return cfg
}
