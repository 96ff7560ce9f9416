package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls [DIR]",
	Short: "List a directory tree",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "/"
		if len(args) > 0 {
			dir = args[0]
		}
		records, err := newHandle("/").ListDirectory(dir, 0)
		if err != nil {
			return Fatal(err)
		}
		dirColor := color.New(color.FgCyan, color.Bold)
		out := cmd.OutOrStdout()
		for _, record := range records {
			indent := strings.Repeat("  ", record.Depth)
			if record.IsDir {
				dirColor.Fprintf(out, "%s%s/\n", indent, record.Name)
			} else {
				fmt.Fprintf(out, "%s%-24s %10d\n", indent, record.Name, record.Size)
			}
		}
		return nil
	},
}

var mkdirCmd = &cobra.Command{
	Use:   "mkdir DIR",
	Short: "Create a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newHandle("/").CreateDirectory(args[0]); err != nil {
			return Fatal(err)
		}
		return nil
	},
}

var rmdirCmd = &cobra.Command{
	Use:   "rmdir DIR",
	Short: "Remove an empty directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newHandle("/").RemoveDirectory(args[0]); err != nil {
			return Fatal(err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lsCmd, mkdirCmd, rmdirCmd)
}
