package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-app-info/models"
)

const (
	formatText  = "text"
	formatTable = "table"
	formatJSON  = "json"
)

func newShowCommand(env *environment) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the build metadata of this binary.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printInfo(cmd.OutOrStdout(), env.info.Response(), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, table or json")

	return cmd
}

func printInfo(w io.Writer, info models.AppInfoResponse, format string) error {
	switch strings.ToLower(format) {
	case formatText:
		for _, r := range infoRows(info) {
			if _, err := fmt.Fprintf(w, "%-8s %s\n", r[0]+":", r[1]); err != nil {
				return err
			}
		}
		return nil
	case formatTable:
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Field", "Value"})
		for _, r := range infoRows(info) {
			t.AppendRow(table.Row{r[0], r[1]})
		}
		t.Render()
		return nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func infoRows(info models.AppInfoResponse) [][2]string {
	return [][2]string{
		{"Name", orNA(info.Name)},
		{"Version", orNA(info.Version)},
		{"Build", orNA(info.Build)},
		{"Date", info.Date.UTC().Format(time.RFC3339)},
		{"Commit", orNA(info.Commit)},
	}
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
