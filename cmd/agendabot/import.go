package main

import (
	"fmt"

	"github.com/KirkDiggler/agendabot/internal/agenda"
	"github.com/KirkDiggler/agendabot/internal/common/clock"
	"github.com/KirkDiggler/agendabot/internal/services/session"
	"github.com/spf13/cobra"
)

var importDryRun bool

// importCmd loads an agenda file into the session store
var importCmd = &cobra.Command{
	Use:   "import <agenda.yaml>",
	Short: "Import sessions from an agenda file",
	Long: `Import sessions from a YAML agenda file. Sessions are keyed by id:
new ones are created and existing ones get their title, description, times,
room and featured flag updated. Times are quoted RFC 3339 strings.

Example agenda:
  event: devcon
  sessions:
    - id: keynote
      title: Opening Keynote
      type: keynote
      start: "2025-04-19T10:00:00Z"
      end: "2025-04-19T11:00:00Z"
      room: Hall A

Examples:
  # Check a file without writing anything
  agendabot import agenda.yaml --dry-run

  # Import into the configured Redis
  agendabot import agenda.yaml --config agendabot.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "parse and validate the file only")
}

// runImport handles the import command
func runImport(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	file, err := agenda.Load(args[0], cfg.Event.ID)
	if err != nil {
		return err
	}
	if importDryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d valid session(s) for event %s\n", args[0], len(file.Sessions), file.EventID)
		return nil
	}

	clk := clock.New()
	b, err := openBackend(cmd.Context(), cfg, clk, logger)
	if err != nil {
		return err
	}
	defer b.Close()

	sessions, err := session.New(&session.Config{DocumentRepo: b.documents, Clock: clk, Logger: logger})
	if err != nil {
		return err
	}

	result, err := agenda.Import(cmd.Context(), sessions, file, logger)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %d, updated %d session(s)\n", len(result.Created), len(result.Updated))
	return nil
}
