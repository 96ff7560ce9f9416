package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var cksumCmd = &cobra.Command{
	Use:   "cksum FILE...",
	Short: "Print the CRC32 of files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h := newHandle("/")
		for _, name := range args {
			sum, err := h.CalculateChecksum(name)
			if err != nil {
				return Fatal(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%08x  %s\n", sum, name)
		}
		return nil
	},
}

var sniff bool

var typeCmd = &cobra.Command{
	Use:   "type FILE...",
	Short: "Classify files as text, image or binary",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h := newHandle("/")
		for _, name := range args {
			ftype := h.GetFileType(name)
			if sniff {
				var err error
				ftype, err = h.SniffFileType(name)
				if err != nil {
					return Fatal(err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, ftype)
		}
		return nil
	},
}

var statCmd = &cobra.Command{
	Use:   "stat FILE",
	Short: "Print size, timestamp and type of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h := newHandle("/")
		size, err := h.GetFileSize(args[0])
		if err != nil {
			return Fatal(err)
		}
		stamp, err := h.GetTimestamp(args[0])
		if err != nil {
			return Fatal(err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "name: %s\n", args[0])
		fmt.Fprintf(out, "size: %d\n", size)
		fmt.Fprintf(out, "modified: %s\n", stamp.UTC().Format(time.RFC3339))
		fmt.Fprintf(out, "type: %s\n", h.GetFileType(args[0]))
		return nil
	},
}

var stampCmd = &cobra.Command{
	Use:   "stamp FILE TIME",
	Short: "Set the modification time of a file (RFC3339)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		stamp, err := time.Parse(time.RFC3339, args[1])
		if err != nil {
			return Fatal(err)
		}
		if err := newHandle("/").SetTimestamp(args[0], stamp); err != nil {
			return Fatal(err)
		}
		return nil
	},
}

func init() {
	typeCmd.Flags().BoolVar(&sniff, "sniff", false, "classify by content instead of extension")
	rootCmd.AddCommand(cksumCmd, typeCmd, statCmd, stampCmd)
}
