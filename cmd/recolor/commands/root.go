package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/recolor/internal/batch"
	"github.com/ironsheep/recolor/internal/imaging"
)

// BuildInfo carries the version details stamped into the binary.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// Options holds settings that come from the environment rather than the
// command line.
type Options struct {
	// Debug enables per-file debug logging.
	Debug bool
}

// Execute runs the root command against os.Args.
func Execute(info BuildInfo, opts Options) error {
	return newRootCmd(info, opts, os.Stdout, os.Stderr).Execute()
}

func newRootCmd(info BuildInfo, opts Options, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recolor <input_folder> <output_folder> <old_color_hex> <new_color_hex>",
		Short: "Replace one exact color in every PNG of a folder",
		Long: `recolor reads every .png file in input_folder. It replaces each pixel whose RGB
equals old_color_hex with new_color_hex and keeps that pixel's transparency.
The results go to output_folder under the same filenames.

Colors are six hex digits, with or without a leading '#', e.g. FF0000 or "#00ff00".

Environment variables:
  RECOLOR_LOG_LEVEL=debug    Enable debug logging`,
		Example: `  recolor ./icons ./icons-green FF0000 00FF00`,
		Version: info.Version,
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := imaging.ParseHexColor(args[2])
			if err != nil {
				return fmt.Errorf("old color: %w", err)
			}
			to, err := imaging.ParseHexColor(args[3])
			if err != nil {
				return fmt.Errorf("new color: %w", err)
			}
			cmd.SilenceUsage = true

			job := batch.Job{
				InputDir:  args[0],
				OutputDir: args[1],
				From:      from,
				To:        to,
				Debug:     opts.Debug,
			}
			_, err = batch.Run(job, cmd.OutOrStdout())
			return err
		},
	}

	cmd.SetVersionTemplate(fmt.Sprintf("recolor %s\n  Build time: %s\n  Git commit: %s\n",
		info.Version, info.BuildTime, info.GitCommit))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return cmd
}
