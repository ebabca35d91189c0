package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xavierca1/mailchimp-organizer/internal/entity"
	"github.com/xavierca1/mailchimp-organizer/internal/usecase"
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert an export, picking the pipeline from the file extension",
	Long: `Converts one export file. Files ending in .txt are treated as volunteer
exports, everything else as a team roster.

Without a file argument the path is read from stdin; an empty answer
cancels without doing anything.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args, "")
	},
}

var rosterCmd = &cobra.Command{
	Use:   "roster <file>",
	Short: "Convert a team roster export into mailchimp_contacts.csv",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args, entity.KindRoster)
	},
}

var volunteersCmd = &cobra.Command{
	Use:   "volunteers <file>",
	Short: "Convert a volunteer export into mailchimp_volunteers.csv",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args, entity.KindVolunteer)
	},
}

func runConvert(cmd *cobra.Command, args []string, kind entity.ExportKind) error {
	path, err := selectPath(cmd.InOrStdin(), cmd.OutOrStdout(), args)
	if usecase.IsCancelled(err) {
		log.Debug("no file selected")
		return nil
	}
	if err != nil {
		return err
	}

	a := newApp(cfg, log, nil)
	defer a.Close()

	out, err := a.Convert.Execute(cmd.Context(), usecase.ConvertFileInput{Path: path, Kind: kind})
	if err != nil {
		reportFailure(cmd.ErrOrStderr(), err)
		return errReported
	}

	reportSuccess(cmd.OutOrStdout(), out.OutputPath)
	log.Debug("run complete", zap.String("run_id", out.RunID))
	return nil
}

// selectPath returns the file named on the command line, or asks for one.
// An empty answer (or EOF) yields usecase.ErrCancelled.
func selectPath(in io.Reader, out io.Writer, args []string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return strings.TrimSpace(args[0]), nil
	}

	fmt.Fprint(out, "Export file (.csv roster or .txt volunteers): ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read file path: %w", err)
	}
	path := strings.Trim(strings.TrimSpace(line), `"'`)
	if path == "" {
		return "", usecase.ErrCancelled
	}
	return path, nil
}

func reportSuccess(w io.Writer, outputPath string) {
	fmt.Fprintf(w, "Success: Mailchimp contacts saved to:\n%s\n", outputPath)
}

func reportFailure(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: Failed to process file:\n%s\n", err)
}
