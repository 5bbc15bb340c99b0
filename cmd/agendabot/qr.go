package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/agendabot/internal/common/clock"
	"github.com/KirkDiggler/agendabot/internal/qrcode"
	"github.com/spf13/cobra"
)

var (
	qrEventID string
	qrOutput  string
	qrSize    int
	qrText    bool
)

// qrCmd renders a session check-in QR code without a running bot
var qrCmd = &cobra.Command{
	Use:   "qr <session-id>",
	Short: "Render a session check-in QR code",
	Long: `Render the check-in QR code for a session as a PNG, for printing on
room signs. Attendees scan it and paste the text into /checkin scan.

Examples:
  # Write a PNG file
  agendabot qr keynote -o keynote.png

  # Print the encoded payload instead of an image
  agendabot qr keynote --text --event devcon`,
	Args: cobra.ExactArgs(1),
	RunE: runQR,
}

func init() {
	qrCmd.Flags().StringVar(&qrEventID, "event", "", "event ID embedded in the code (defaults to the configured event)")
	qrCmd.Flags().StringVarP(&qrOutput, "output", "o", "-", "PNG destination, - for stdout")
	qrCmd.Flags().IntVar(&qrSize, "size", qrcode.DefaultSize, "image edge in pixels")
	qrCmd.Flags().BoolVar(&qrText, "text", false, "print the encoded payload instead of a PNG")
}

// runQR handles the qr command
func runQR(cmd *cobra.Command, args []string) error {
	eventID := qrEventID
	if eventID == "" {
		cfg, _, err := setup()
		if err != nil {
			return err
		}
		eventID = cfg.Event.ID
	}

	payload := qrcode.NewPayload(args[0], eventID, clock.New().Now())

	if qrText {
		text, err := qrcode.Encode(payload)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
		return err
	}

	if qrSize <= 0 || qrSize > 4096 {
		return fmt.Errorf("size must be between 1 and 4096, got %d", qrSize)
	}
	png, err := qrcode.PNG(payload, qrSize)
	if err != nil {
		return err
	}

	if qrOutput == "-" {
		_, err = cmd.OutOrStdout().Write(png)
		return err
	}
	if err := os.WriteFile(qrOutput, png, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", qrOutput, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", qrOutput)
	return nil
}
