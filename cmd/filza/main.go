package main

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/rstms/filza/handle"
	"github.com/rstms/filza/sd"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const Version = "0.1.0"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "filza",
	Short: "SD card file utility",
	Long: `Inspect and modify the files on an SD card volume.

The volume root is the directory the card is mounted on, set with --root,
the FILZA_ROOT environment variable or the root key of the config file.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "filza %s\n", Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.filza.yaml)")
	rootCmd.PersistentFlags().String("root", ".", "mount point of the SD card")
	rootCmd.PersistentFlags().Bool("debug", false, "log every file operation to stderr")
	rootCmd.PersistentFlags().Int("precision", handle.DefaultPrecision, "decimals written for numbers")
	cobra.CheckErr(viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root")))
	cobra.CheckErr(viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")))
	cobra.CheckErr(viper.BindPFlag("precision", rootCmd.PersistentFlags().Lookup("precision")))
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err == nil && IsFile(filepath.Join(home, ".filza.yaml")) {
			cfgFile = filepath.Join(home, ".filza.yaml")
		}
	}
	viper.SetEnvPrefix("filza")
	viper.AutomaticEnv()
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		cobra.CheckErr(viper.ReadInConfig())
	}
}

// volume opens the configured card root.
func volume() *sd.FileSystem {
	return sd.New(afero.NewBasePathFs(afero.NewOsFs(), viper.GetString("root")))
}

func logger() handle.Logger {
	if viper.GetBool("debug") {
		return handle.NewLogger(os.Stderr, "filza: ")
	}
	return handle.Discard
}

// newHandle binds a handle to name on the configured volume.
func newHandle(name string) *handle.Handle {
	dir, file := path.Split(path.Clean("/" + name))
	return handle.New(volume(), dir, file,
		handle.WithLogger(logger()),
		handle.WithPrecision(viper.GetInt("precision")))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
