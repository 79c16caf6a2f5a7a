package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func Execute() error {
	if err := newRootCmd().Execute(); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "slidium",
		Short: "Terminal slide presenter",
		Long:  "Slidium: present a slide deck in the terminal with keyboard, mouse and swipe navigation.",
		Args:  cobra.NoArgs,
	}

	root.PersistentFlags().StringP("deck", "d", "", "Path to a deck YAML file (default: built-in deck)")
	root.PersistentFlags().String("config", "", "Path to the preferences file (default: user config dir)")

	present := newPresentCmd()
	root.RunE = present.RunE
	root.Flags().AddFlagSet(present.Flags())

	// Add subcommands
	root.AddCommand(present)
	root.AddCommand(newExportCmd())
	root.AddCommand(newPrintCmd())

	return root
}

func mustGetStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "flag error:", err)
		os.Exit(2)
	}
	return v
}
