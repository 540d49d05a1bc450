/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ssargent/bifrost/pkg/frame"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <stream-file>",
	Short: "Scan a captured byte stream and list the frames in it",
	Long: `Scan a captured byte stream, resynchronizing past corrupted regions,
and print one row per recovered frame.

Examples:
  bifrost scan stream.bin
  bifrost scan --payloads capture.raw`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		showPayloads, _ := cmd.Flags().GetBool("payloads")

		stream, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read stream file: %w", err)
		}

		var collector frame.StatsCollector
		scanner := frame.NewScanner(stream)
		scanner.Observe(&collector)

		rows := pterm.TableData{{"Offset", "Counter", "Payload Size", "Payload CRC"}}
		if showPayloads {
			rows = pterm.TableData{{"Offset", "Counter", "Payload Size", "Payload CRC", "Payload"}}
		}

		for scanner.Next() {
			f := scanner.Frame()
			start := scanner.Offset() - frame.FrameSize(len(f.Payload))
			row := []string{
				fmt.Sprintf("%d", start),
				fmt.Sprintf("%d", f.Header.Counter),
				fmt.Sprintf("%d", f.Header.PayloadSize),
				fmt.Sprintf("0x%04X", f.PayloadCRC),
			}
			if showPayloads {
				row = append(row, fmt.Sprintf("%q", f.Payload))
			}
			rows = append(rows, row)
		}

		if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
			return err
		}

		stats := collector.Stats
		pterm.Info.Println(fmt.Sprintf("%d frame(s) decoded from %d bytes", stats.FramesDecoded, len(stream)))
		if stats.HeaderCRCErrors+stats.PayloadCRCErrors > 0 || stats.BytesResynced > 0 {
			pterm.Warning.Println(fmt.Sprintf(
				"%d header CRC failure(s), %d payload CRC failure(s), %d byte(s) resynced",
				stats.HeaderCRCErrors, stats.PayloadCRCErrors, stats.BytesResynced))
		}
		if scanner.Err() != nil {
			pterm.Warning.Println("stream ends with an incomplete frame candidate")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolP("payloads", "p", false, "Show payload bytes for each frame")
}
