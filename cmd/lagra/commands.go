package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0xalexb/lagra"
)

var rootCmd = &cobra.Command{
	Use:   "lagra",
	Short: "Inspect and edit key-value config files",
	Long: `Inspect and edit "key: value" config files.

Edits preserve comments, blank lines and unrelated content; only the lines
whose value changed are rewritten.

Examples:
  lagra --file etc/configs/app.cfg keys
  lagra --file etc/configs/app.cfg get window.width
  lagra --file etc/configs/app.cfg set window.width 1280`,
	Version:       lagra.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func openStore(cmd *cobra.Command) (*lagra.Store, error) {
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return nil, err
	}

	if file == "" {
		return nil, fmt.Errorf("--file is required")
	}

	var failures collectReporter

	store := lagra.Open(file, lagra.WithReporter(&failures))
	if len(failures.msgs) > 0 {
		return nil, fmt.Errorf("opening %s: %s", file, failures.msgs[0])
	}

	return store, nil
}

// collectReporter gathers store diagnostics so commands can turn them into
// exit errors instead of log lines.
type collectReporter struct {
	msgs []string
}

func (r *collectReporter) Report(msg string) {
	r.msgs = append(r.msgs, msg)
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the raw value of a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}

		key := args[0]
		if !store.Has(key) {
			return fmt.Errorf("key %q not found", key)
		}

		fmt.Fprintln(cmd.OutOrStdout(), store.String(key))
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a key and save, preserving file formatting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}

		key, value := args[0], args[1]

		store.Set(key, value)
		if !store.Has(key) {
			return fmt.Errorf("key %q is not valid for the file format", key)
		}

		return store.Save()
	},
}

var unsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Remove a key and rewrite the file",
	Long: `Remove a key from the config file.

Removal cannot be expressed as a preserving merge, so the file is rewritten
from the remaining keys and comments are lost. Use with care.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}

		key := args[0]
		if !store.Has(key) {
			return fmt.Errorf("key %q not found", key)
		}

		store.Unset(key)
		return store.Rewrite()
	},
}

var hasCmd = &cobra.Command{
	Use:   "has <key>",
	Short: "Print whether a key is present",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), store.Has(args[0]))
		return nil
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List keys in file order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}

		for _, key := range store.Keys() {
			fmt.Fprintln(cmd.OutOrStdout(), key)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("file", "", "path to the config file")

	rootCmd.AddCommand(getCmd, setCmd, unsetCmd, hasCmd, keysCmd)
}
