// Command avltree builds AVL trees from the command line or from a YAML
// script and prints their traversals, heights and shape.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "v0.1.0"

var Log = logrus.New()

type app struct {
	configPath string
	logLevel   string
	config     *Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		Log.WithError(err).Error("avltree failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "avltree",
		Version:       version,
		Short:         "Build and inspect AVL trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/"+configName+")")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(a.buildCmd(), a.runCmd(), versionCmd())
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	config, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		config.LogLevel = a.logLevel
	}

	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	Log.SetLevel(level)
	Log.SetOutput(cmd.ErrOrStderr())

	a.config = config
	Log.WithFields(logrus.Fields{
		"config": a.configPath,
		"level":  level,
	}).Debug("configured")
	return nil
}

func (a *app) buildCmd() *cobra.Command {
	var (
		removeKeys []string
		orders     []string
		dump       bool
		check      bool
		heights    bool
		strs       bool
	)

	cmd := &cobra.Command{
		Use:   "build [keys...]",
		Short: "Insert keys in order, optionally remove some, and print the tree",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := a.config.Output
			flags := cmd.Flags()
			if flags.Changed("order") {
				out.Orders = orders
			}
			if flags.Changed("dump") {
				out.Dump = dump
			}
			if flags.Changed("check") {
				out.Check = check
			}
			if flags.Changed("heights") {
				out.Heights = heights
			}

			keyType := intKeys
			if strs {
				keyType = stringKeys
			}
			r, err := newRunner(keyType, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := r.insert(args); err != nil {
				return err
			}
			if err := r.remove(removeKeys); err != nil {
				return err
			}
			return r.print(out.items())
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&removeKeys, "remove", nil, "keys to remove after inserting")
	flags.StringSliceVar(&orders, "order", nil, "traversals to print: in, pre, post")
	flags.BoolVar(&dump, "dump", false, "print the tree shape")
	flags.BoolVar(&check, "check", false, "verify the tree invariants")
	flags.BoolVar(&heights, "heights", false, "print height and children of every key")
	flags.BoolVar(&strs, "strings", false, "treat keys as strings instead of integers")
	return cmd
}

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Execute a YAML script of insert, remove and print steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := LoadScript(args[0])
			if err != nil {
				return err
			}
			r, err := newRunner(script.Keys, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			Log.WithFields(logrus.Fields{
				"script": args[0],
				"steps":  len(script.Steps),
			}).Info("running script")
			return script.Run(r)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print avltree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

// items lists the print steps selected by the output settings
func (o OutputConfig) items() []string {
	items := append([]string(nil), o.Orders...)
	if o.Heights {
		items = append(items, "heights")
	}
	if o.Dump {
		items = append(items, "dump")
	}
	if o.Check {
		items = append(items, "check")
	}
	return items
}
