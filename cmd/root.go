package cmd

import (
	"errors"
	"io/fs"
	"log"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/oshkit/osh/core"
	"github.com/oshkit/osh/core/config"
)

var cfgPath string

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(afero.NewOsFs(), cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("No config.yaml found, using built-in defaults. Run init to create one.")
		return config.Default(), nil
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "osh",
	Short: "A minimal interactive job launcher",
	Long: `osh reads commands from the terminal and runs them in child processes.
It understands input/output redirection (< and >), a single pipeline
stage (|), background execution (&) and last-command recall (!!).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		shell, err := core.NewShell(cfg)
		if err != nil {
			return err
		}

		return shell.Run()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
