package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/GamesCrafters/gamesman-gateway/internal/hexify"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Rewrite 0b binary literals in a source file to hex, in place",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := hexify.RewriteFile(args[0])
		if err != nil {
			return err
		}
		if n == 0 {
			color.Yellow("no binary literals found in %s", args[0])
			return nil
		}
		color.Green("rewrote %d binary literal(s) in %s", n, args[0])
		return nil
	},
}

func init() {
	convertCmd.SilenceUsage = true
	rootCmd.AddCommand(convertCmd)
}
