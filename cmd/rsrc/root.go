package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cinegraph/rsrc-engine/fork"
	"github.com/cinegraph/rsrc-engine/mactext"
	"github.com/cinegraph/rsrc-engine/manager"
)

// commandContext carries flag state and the lazily loaded config into the
// subcommands.
type commandContext struct {
	configFlag  *string
	memberFlag  *string
	verboseFlag *bool

	cfg    Config
	loaded bool
}

func (ctx *commandContext) ensureConfig() (Config, error) {
	if ctx.loaded {
		return ctx.cfg, nil
	}
	cfg, err := loadConfig(*ctx.configFlag)
	if err != nil {
		return Config{}, err
	}
	ctx.cfg = cfg
	ctx.loaded = true
	mactext.SetActive(cfg.selection())
	return cfg, nil
}

func newRootCommand() *cobra.Command {
	var configFlag, memberFlag string
	var verboseFlag bool

	ctx := &commandContext{
		configFlag:  &configFlag,
		memberFlag:  &memberFlag,
		verboseFlag: &verboseFlag,
	}

	rootCmd := &cobra.Command{
		Use:           "rsrc",
		Short:         "Inspect and decode legacy resource containers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verboseFlag {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				fork.SetLogger(logger)
				manager.SetLogger(logger)
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path (TOML)")
	rootCmd.PersistentFlags().StringVarP(&memberFlag, "member", "m", "", "Member path inside a zip archive")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newLsCommand(ctx))
	rootCmd.AddCommand(newCatCommand(ctx))
	rootCmd.AddCommand(newInfoCommand(ctx))
	rootCmd.AddCommand(newBrowseCommand(ctx))

	return rootCmd
}
