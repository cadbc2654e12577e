package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/registry"
)

var skinsCmd = &cobra.Command{
	Use:   "skins",
	Short: "List the registered target skins",
	Long: `Shows every skin that can sit behind a start button, with the
bounty each of its targets is worth under the current configuration.`,
	Args: cobra.NoArgs,
	RunE: runSkins,
}

func runSkins(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	skins := registry.List()
	if len(skins) == 0 {
		fmt.Fprintln(out, "No skins available.")
		return nil
	}

	fmt.Fprintln(out, "Available skins:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range skins {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %-14s %-22s %-22s %s\n", maxIDLen, "ID", "Title", "Shoot", "Spare", "Super")
	fmt.Fprintf(out, "  %-*s  %-14s %-22s %-22s %s\n", maxIDLen, "--", "-----", "-----", "-----", "-----")

	for _, s := range skins {
		side := ""
		switch s.ID {
		case cfg.Modes.Left:
			side = " (left)"
		case cfg.Modes.Right:
			side = " (right)"
		}
		fmt.Fprintf(out, "  %-*s  %-14s %-22s %-22s %s\n", maxIDLen, s.ID, s.Title,
			fmt.Sprintf("%s +%s", s.Evil, humanize.Comma(int64(cfg.Bounty.Evil))),
			fmt.Sprintf("%s -%s", s.Hero, humanize.Comma(int64(cfg.Bounty.Hero))),
			fmt.Sprintf("%s +%s%s", s.Super, humanize.Comma(int64(cfg.Bounty.SuperEvil)), side))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Set modes.left / modes.right in the config to choose the start buttons.")
	return nil
}
