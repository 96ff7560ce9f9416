package main

import (
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var catCmd = &cobra.Command{
	Use:   "cat FILE",
	Short: "Print a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := newHandle(args[0]).ReadText()
		if err != nil {
			return Fatal(err)
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	},
}

var headCmd = &cobra.Command{
	Use:   "head FILE",
	Short: "Print the first line of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		line, err := newHandle(args[0]).ReadLine()
		if err != nil {
			return Fatal(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
		return nil
	},
}

var writeCmd = &cobra.Command{
	Use:   "write FILE TEXT...",
	Short: "Append a line to a file, creating it if needed",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		h := newHandle(args[0])
		if !h.Exists() {
			if err := h.Create(); err != nil {
				return Fatal(err)
			}
		}
		if err := h.WriteLine(strings.Join(args[1:], " ")); err != nil {
			return Fatal(err)
		}
		return nil
	},
}

var appendCmd = &cobra.Command{
	Use:   "append FILE TEXT...",
	Short: "Append a line to an existing file",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newHandle(args[0]).AppendLine(strings.Join(args[1:], " ")); err != nil {
			return Fatal(err)
		}
		return nil
	},
}

var saveCmd = &cobra.Command{
	Use:   "save FILE NUMBER",
	Short: "Append a number to an existing file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return Fatal(err)
		}
		if err := newHandle(args[0]).SaveFloat(value); err != nil {
			return Fatal(err)
		}
		return nil
	},
}

var touchCmd = &cobra.Command{
	Use:   "touch FILE",
	Short: "Create a file or update its timestamp",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h := newHandle(args[0])
		if !h.Exists() {
			if err := h.Create(); err != nil {
				return Fatal(err)
			}
			return nil
		}
		if err := h.SetTimestamp(h.FullPath(), time.Now()); err != nil {
			return Fatal(err)
		}
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm FILE",
	Short: "Remove a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newHandle(args[0]).Remove(); err != nil {
			return Fatal(err)
		}
		return nil
	},
}

var mvCmd = &cobra.Command{
	Use:   "mv FILE DEST",
	Short: "Move a file to a new path",
	Long: `Move a file to DEST, a file path from the volume root, by copying it
and removing the original. DEST must not exist. An interrupted move leaves
both copies on the card.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		h := newHandle(args[0])
		if err := h.Move(path.Clean("/" + args[1])); err != nil {
			return Fatal(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), h.FullPath())
		return nil
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename FILE NAME",
	Short: "Rename a file within its directory",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		h := newHandle(args[0])
		if err := h.Rename(args[1]); err != nil {
			return Fatal(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), h.FullPath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catCmd, headCmd, writeCmd, appendCmd, saveCmd,
		touchCmd, rmCmd, mvCmd, renameCmd)
}
