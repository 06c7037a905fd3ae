package main

import (
	"slices"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/rsilvagit/jobsheet/internal/model"
	"github.com/rsilvagit/jobsheet/internal/output"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print the jobs stored in an exported spreadsheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(args[0], output.NewConsolePrinter(cmd.OutOrStdout()))
	},
}

func runInspect(path string, w output.ResultWriter) error {
	rows, err := output.ReadXLSX(path)
	if err != nil {
		return err
	}
	if len(rows) == 0 || !slices.Equal(rows[0], model.Columns) {
		return eris.Errorf("inspect: %s does not have the expected header", path)
	}

	jobs := make([]model.JobRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		jobs = append(jobs, model.RecordFromRow(row))
	}
	return w.WriteJobs(jobs)
}
