package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF"))
)

// Write renders r in format.
func (r *Run) Write(w io.Writer, format string) error {
	switch format {
	case FormatJSON:
		return r.WriteJSON(w)
	case FormatYAML:
		return r.WriteYAML(w)
	case FormatTable, "":
		return r.WriteTable(w)
	default:
		return fmt.Errorf("report: unknown format %q (want %s, %s or %s)", format, FormatTable, FormatJSON, FormatYAML)
	}
}

// WriteJSON renders r as indented JSON.
func (r *Run) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteYAML renders r as YAML.
func (r *Run) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// WriteTable renders r as terminal tables: epochs, then the ledger.
func (r *Run) WriteTable(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render(fmt.Sprintf("run %s", r.ID)))
	fmt.Fprintf(&b, "capacity bound: %d units per epoch\n", r.MaxFlow)

	epochs := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("EPOCH", "COLLECTED", "STALLED", "DELIVERED", "TOTAL PAID", "BEST PAID", "MS")
	for _, e := range r.Epochs {
		epochs.Row(
			strconv.Itoa(e.Epoch),
			strconv.Itoa(e.Collected),
			strconv.Itoa(e.Stalled),
			strconv.Itoa(e.Delivered),
			formatFloat(e.TotalPaid),
			formatFloat(e.BestPaid),
			formatFloat(e.ElapsedMS),
		)
	}
	fmt.Fprintln(&b, epochs.Render())

	ledger := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("COMMODITY", "DEMAND", "SUPPLY", "GAP")
	for _, c := range r.Commodities {
		ledger.Row(strconv.Itoa(c.Commodity), strconv.Itoa(c.Demand), strconv.Itoa(c.Supply), strconv.Itoa(c.Gap))
	}
	fmt.Fprintln(&b, ledger.Render())

	if r.Best != nil {
		fmt.Fprintf(&b, "best route: epoch %d ant %d commodity %d path %v package %d paid %s\n",
			r.Best.Epoch, r.Best.AntID, r.Best.Commodity, r.Best.Path, r.Best.Package, formatFloat(r.Best.Paid))
	}
	if r.Error != "" {
		fmt.Fprintln(&b, errorStyle.Render("error: "+r.Error))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
