package app

import (
	"fmt"
	"strings"

	"github.com/QinCai-rui/WakaTerm-NG/internal/config"
	"github.com/QinCai-rui/WakaTerm-NG/internal/ignore"
	"github.com/QinCai-rui/WakaTerm-NG/internal/output"
	"github.com/spf13/cobra"
)

var ignoreCmd = &cobra.Command{
	Use:   "ignore",
	Short: "Manage ignore patterns",
	Long: `Inspect and edit the ignore pattern file. Commands matching an ignore
pattern are never tracked; ! negations re-include commands a previous rule
ignored, and the last matching rule wins.`,
}

var ignoreListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active ignore patterns",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		setupColor(cfg)

		rules := ignore.Load(cfg.IgnoreFile)
		fmt.Println(output.Section("Ignore patterns"))
		fmt.Println()
		fmt.Printf(" File: %s\n\n", cfg.IgnoreFile)
		if rules.Len() == 0 {
			fmt.Println(" No patterns configured; every command is tracked.")
			return nil
		}
		for _, p := range rules.Patterns() {
			if strings.HasPrefix(p, "!") {
				fmt.Printf(" %s\n", output.StyleSuccess.Render(p))
				continue
			}
			fmt.Printf(" %s\n", p)
		}
		return nil
	},
}

var ignoreAddCmd = &cobra.Command{
	Use:   "add <pattern>",
	Short: "Append a pattern to the ignore file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := ignore.Add(cfg.IgnoreFile, args[0]); err != nil {
			return fmt.Errorf("adding pattern: %w", err)
		}
		fmt.Printf("Added %q to %s\n", args[0], cfg.IgnoreFile)
		return nil
	},
}

var ignoreRemoveCmd = &cobra.Command{
	Use:   "remove <pattern>",
	Short: "Remove a pattern from the ignore file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		found, err := ignore.Remove(cfg.IgnoreFile, args[0])
		if err != nil {
			return fmt.Errorf("removing pattern: %w", err)
		}
		if !found {
			fmt.Printf("Pattern %q not found in %s\n", args[0], cfg.IgnoreFile)
			return nil
		}
		fmt.Printf("Removed %q from %s\n", args[0], cfg.IgnoreFile)
		return nil
	},
}

var ignoreCheckCmd = &cobra.Command{
	Use:   "check <command...>",
	Short: "Test whether a command would be ignored",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		setupColor(cfg)

		command := strings.Join(args, " ")
		if ignore.Load(cfg.IgnoreFile).Ignored(command) {
			fmt.Printf("%s %q\n", output.StyleError.Render("IGNORE"), command)
			return nil
		}
		fmt.Printf("%s %q\n", output.StyleSuccess.Render("TRACK"), command)
		return nil
	},
}

func init() {
	ignoreCmd.AddCommand(ignoreListCmd, ignoreAddCmd, ignoreRemoveCmd, ignoreCheckCmd)
	rootCmd.AddCommand(ignoreCmd)
}
