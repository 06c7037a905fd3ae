package output

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rsilvagit/jobsheet/internal/model"
)

// ResultWriter defines how scraped records are presented or stored.
type ResultWriter interface {
	WriteJobs(jobs []model.JobRecord) error
}

// ConsolePrinter writes a summary of jobs as an aligned table.
type ConsolePrinter struct {
	w io.Writer
}

// NewConsolePrinter prints to w, or to stdout when w is nil.
func NewConsolePrinter(w io.Writer) *ConsolePrinter {
	if w == nil {
		w = os.Stdout
	}
	return &ConsolePrinter{w: w}
}

func (cp *ConsolePrinter) WriteJobs(jobs []model.JobRecord) error {
	if len(jobs) == 0 {
		_, err := fmt.Fprintln(cp.w, "No jobs found.")
		return err
	}

	w := tabwriter.NewWriter(cp.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTITLE\tLOCATION\tSALARY\tURL")
	fmt.Fprintln(w, "-\t-----\t--------\t------\t---")
	for i, j := range jobs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			i+1, orDash(j.Title), orDash(j.Location), orDash(j.Salary), orDash(j.JobURL))
	}
	return w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
