// Package report renders aggregated association results in two passes: the
// raw association tables, then summary statistics of the overall score.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/tskir/opentargets-test/internal/assoc"
	"github.com/tskir/opentargets-test/internal/ui"
)

const (
	msgUnspecified = "no filter was specified"
	msgNoResults   = "query returned no results"
)

// Reporter writes both output passes to a single destination.
type Reporter struct {
	w     io.Writer
	width int
	color bool
}

// New creates a Reporter writing to w, sized and colored for the current
// terminal.
func New(w io.Writer) *Reporter {
	return &Reporter{
		w:     w,
		width: ui.GetWidth(),
		color: ui.ShouldUseColor(),
	}
}

// Raw prints the full association table for every axis, in fixed order
// (target first). Unspecified and empty axes get a one-line message instead.
func (r *Reporter) Raw(results assoc.ResultMap) {
	fmt.Fprintln(r.w, r.title("Raw association data"))

	for _, kind := range assoc.Kinds {
		res := results[kind]
		fmt.Fprintf(r.w, "\n%s:\n", kind)
		switch res.State {
		case assoc.StateUnspecified:
			fmt.Fprintln(r.w, r.muted(msgUnspecified))
		case assoc.StateEmpty:
			fmt.Fprintln(r.w, r.muted(msgNoResults))
		case assoc.StatePopulated:
			fmt.Fprintln(r.w, r.renderTable(res.Records))
		}
	}
	fmt.Fprintln(r.w)
}

// Summary prints min/max/mean/stdev of the overall score for every axis, in
// fixed order. No statistics are computed for unspecified or empty axes;
// those repeat the respective message from the raw pass.
func (r *Reporter) Summary(results assoc.ResultMap) error {
	fmt.Fprintln(r.w, r.title("Summary statistics (association_score.overall)"))

	for _, kind := range assoc.Kinds {
		res := results[kind]
		fmt.Fprintf(r.w, "\n%s:\n", kind)
		switch res.State {
		case assoc.StateUnspecified:
			fmt.Fprintln(r.w, r.muted(msgUnspecified))
		case assoc.StateEmpty:
			fmt.Fprintln(r.w, r.muted(msgNoResults))
		case assoc.StatePopulated:
			s, err := assoc.Summarize(res.Records)
			if err != nil {
				return fmt.Errorf("summarizing %s scores: %w", kind, err)
			}
			fmt.Fprintf(r.w, "min:   %.3f\n", s.Min)
			fmt.Fprintf(r.w, "max:   %.3f\n", s.Max)
			fmt.Fprintf(r.w, "mean:  %.3f\n", s.Mean)
			fmt.Fprintf(r.w, "stdev: %.3f\n", s.Stdev)
		}
	}
	return nil
}

func (r *Reporter) title(s string) string {
	if r.color {
		return ui.SectionTitleStyle.Render(s)
	}
	return s
}

func (r *Reporter) muted(s string) string {
	if r.color {
		return ui.MutedTextStyle.Render(s)
	}
	return s
}

func (r *Reporter) renderTable(records []assoc.Record) string {
	t := ui.NewAssociationTable("target_id", "disease_id", "score_overall")
	if r.width < 80 {
		t.Width(r.width)
	}
	for _, rec := range records {
		t.Row(rec.TargetID, rec.DiseaseID, strconv.FormatFloat(rec.ScoreOverall, 'g', -1, 64))
	}
	return t.String()
}
