/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/bifrost/pkg/frame"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Pack a payload into frames appended to a stream file",
	Long: `Read a payload from a file (or stdin with --in -) and append one or
more frames carrying it to the output stream file.

Examples:
  bifrost build --in payload.bin --out stream.bin
  echo -n "reading" | bifrost build --in - --out stream.bin --count 3 --counter 65534`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, _ := cmd.Flags().GetString("in")
		out, _ := cmd.Flags().GetString("out")
		count, _ := cmd.Flags().GetInt("count")
		counter, _ := cmd.Flags().GetUint16("counter")

		payload, err := readPayload(in)
		if err != nil {
			return fmt.Errorf("failed to read payload: %w", err)
		}

		written, err := appendFrames(out, payload, count, counter)
		if err != nil {
			return err
		}

		cmd.Printf("Appended %d frame(s), %d bytes each, to %s\n", count, written, out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringP("in", "i", "-", "Payload file, or - for stdin")
	buildCmd.Flags().StringP("out", "o", "", "Output stream file (appended to)")
	buildCmd.Flags().IntP("count", "c", 1, "Number of frames to append")
	buildCmd.Flags().Uint16("counter", 0, "Frame counter assigned to the first frame")
	_ = buildCmd.MarkFlagRequired("out")
}

func readPayload(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// appendFrames packs payload into count consecutive frames starting at
// the given counter and appends them to the stream file. It returns the
// wire size of one frame.
func appendFrames(path string, payload []byte, count int, counter uint16) (int, error) {
	if count < 1 {
		return 0, fmt.Errorf("count must be at least 1, got %d", count)
	}

	builder, err := frame.NewBuilder(make([]byte, frame.FrameSize(len(payload))))
	if err != nil {
		return 0, fmt.Errorf("failed to create builder: %w", err)
	}
	builder.SetCounter(counter)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return 0, fmt.Errorf("failed to open stream file: %w", err)
	}
	defer f.Close()

	size := 0
	for i := 0; i < count; i++ {
		encoded, err := builder.Build(payload)
		if err != nil {
			return 0, fmt.Errorf("failed to build frame %d: %w", i, err)
		}
		if _, err := f.Write(encoded); err != nil {
			return 0, fmt.Errorf("failed to write frame %d: %w", i, err)
		}
		size = len(encoded)
	}
	return size, nil
}
