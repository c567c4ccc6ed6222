package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/kr/pretty"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MingLLuo/streamrng"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rngdump",
	Short: "Print reproducible per-consumer random streams.",
	Long: `Print the first draws of every consumer stream derived from a seed.
Consumers are derived in the order given, so two runs with the same seed and
the same consumer list print the same values. For example:
  rngdump --seed-kind=integer --seed=42 --consumers=physics,ai --draws=4
  rngdump --seed-kind=text --seed="my world" --format=f64`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dump(cmd.OutOrStdout(), loadDumpConfig())
	},
}

type dumpConfig struct {
	SeedKind  string
	Seed      string
	Consumers []string
	Draws     int
	Format    string
	Verbose   bool
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rngdump.yaml)")

	flags := rootCmd.Flags()
	flags.String("seed-kind", "none", "seed kind: none, integer or text")
	flags.String("seed", "", "seed value")
	flags.StringSlice("consumers", []string{"consumer-0"}, "consumer IDs, derived in this order")
	flags.IntP("draws", "n", 8, "draws per consumer")
	flags.String("format", "u32", "draw format: u32, u64, f32 or f64")
	flags.BoolP("verbose", "v", false, "dump the root and handles")

	for _, name := range []string{"seed-kind", "seed", "consumers", "draws", "format", "verbose"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			log.Fatalf("bind flag %s: %v", name, err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			log.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".rngdump" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".rngdump")
	}

	viper.SetEnvPrefix("RNGDUMP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
}

func loadDumpConfig() dumpConfig {
	return dumpConfig{
		SeedKind:  viper.GetString("seed-kind"),
		Seed:      viper.GetString("seed"),
		Consumers: viper.GetStringSlice("consumers"),
		Draws:     viper.GetInt("draws"),
		Format:    viper.GetString("format"),
		Verbose:   viper.GetBool("verbose"),
	}
}

func dump(w io.Writer, conf dumpConfig) error {
	seed, err := streamrng.ParseSeed(conf.SeedKind, conf.Seed)
	if err != nil {
		return err
	}
	draw, err := drawFunc(conf.Format)
	if err != nil {
		return err
	}

	root, err := streamrng.New(seed)
	if err != nil {
		return fmt.Errorf("create root: %w", err)
	}
	locals := streamrng.NewLocals(root)
	locals.Prepare(conf.Consumers...)

	if conf.Verbose {
		fmt.Fprintf(w, "seed: %s\n", seed)
		pretty.Fprintf(w, "config: %# v\n", conf)
	}

	for _, id := range conf.Consumers {
		rng := locals.Get(id)
		if conf.Verbose {
			fmt.Fprintf(w, "# %s %s\n", id, rng)
		}
		values := make([]string, conf.Draws)
		for i := range values {
			values[i] = draw(rng)
		}
		fmt.Fprintf(w, "%s: %s\n", id, strings.Join(values, " "))
	}
	return nil
}

func drawFunc(format string) (func(*streamrng.Generator) string, error) {
	switch strings.ToLower(format) {
	case "u32":
		return func(g *streamrng.Generator) string { return fmt.Sprint(g.NextU32()) }, nil
	case "u64":
		return func(g *streamrng.Generator) string { return fmt.Sprint(g.NextU64()) }, nil
	case "f32":
		return func(g *streamrng.Generator) string { return fmt.Sprint(g.NextF32()) }, nil
	case "f64":
		return func(g *streamrng.Generator) string { return fmt.Sprint(g.NextF64()) }, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
