package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ramprajapat28/DhanMunch/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		mute    bool
		seed    int64
	)

	root := &cobra.Command{
		Use:           "dhanmunch",
		Short:         "Sort falling income and expense bubbles into the right bin before time runs out",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			tuning, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			return run(tuning, mute || tuning.Muted, seed)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to a YAML tuning file")
	root.Flags().BoolVar(&mute, "mute", false, "disable audio cues")
	root.Flags().Int64Var(&seed, "seed", 0, "spawn RNG seed, 0 derives one from the clock")
	return root
}
