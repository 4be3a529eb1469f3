// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a formatted string without performing I/O.
//   - Write* functions write data to files on the filesystem.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/blcheck/internal/format"
	"github.com/agbru/blcheck/internal/scan"
	"github.com/agbru/blcheck/internal/ui"
)

// OutputConfig holds configuration for check result output.
type OutputConfig struct {
	// OutputFile receives the result as JSON when non-empty.
	OutputFile string
	// Quiet prints a single line suitable for scripting.
	Quiet bool
	// JSON prints the API response body instead of the banner.
	JSON bool
}

// MaxListedMatches caps the indices shown in the banner.
const MaxListedMatches = 10

// WriteResultToFile writes the JSON form of a result to config.OutputFile,
// creating missing directories. It does nothing when no file is configured.
func WriteResultToFile(res scan.Result, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := writeJSON(file, res); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func writeJSON(w io.Writer, res scan.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// FormatVerdict returns the one-word verdict.
func FormatVerdict(trustworthy bool) string {
	if trustworthy {
		return "trustworthy"
	}
	return "NOT trustworthy"
}

// FormatQuietResult returns "<host> <verdict> <matches>/<checked>".
func FormatQuietResult(res scan.Result) string {
	verdict := "trustworthy"
	if !res.Trustworthy() {
		verdict = "untrustworthy"
	}
	return fmt.Sprintf("%s %s %d/%d", res.Host(), verdict, res.MatchCount(), res.CheckedServers())
}

// FormatMatches lists the matched indices, truncated after limit entries.
func FormatMatches(matches []int, limit int) string {
	if len(matches) == 0 {
		return "none"
	}
	shown := matches
	if limit > 0 && len(matches) > limit {
		shown = matches[:limit]
	}
	parts := make([]string, len(shown))
	for i, m := range shown {
		parts[i] = fmt.Sprint(m)
	}
	s := strings.Join(parts, ", ")
	if len(shown) < len(matches) {
		s += fmt.Sprintf(", … (+%d)", len(matches)-len(shown))
	}
	return s
}

// FormatVerdictBanner renders the boxed verdict block of a check.
func FormatVerdictBanner(res scan.Result) string {
	st := ui.NewVerdictStyles()

	verdict := st.Trustworthy.Render(FormatVerdict(true))
	if !res.Trustworthy() {
		verdict = st.Untrusted.Render(FormatVerdict(false))
	}
	earlyStop := "no"
	if res.EarlyStopped() {
		earlyStop = "yes"
	}

	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, st.Label.Render(label), value)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		st.Title.Render("Blacklist check"),
		"",
		row("Host", res.Host()),
		row("Verdict", verdict),
		row("Matches", fmt.Sprintf("%d [%s]", res.MatchCount(), FormatMatches(res.Matches(), MaxListedMatches))),
		row("Checked", fmt.Sprintf("%s / %s", format.FormatInt(res.CheckedServers()), format.FormatInt(res.TotalServers()))),
		row("Efficiency", format.FormatPercent(res.Efficiency())),
		row("Early stop", earlyStop),
		row("Elapsed", format.FormatExecutionDuration(res.Elapsed())),
		row("Threads", fmt.Sprint(res.Threads())),
	)
	return st.Box.Render(body)
}

// DisplayCheckResult writes a check result in the mode selected by config
// and, when configured, saves it to a file.
func DisplayCheckResult(out io.Writer, res scan.Result, config OutputConfig) error {
	switch {
	case config.JSON:
		if err := writeJSON(out, res); err != nil {
			return err
		}
	case config.Quiet:
		fmt.Fprintln(out, FormatQuietResult(res))
	default:
		fmt.Fprintln(out, FormatVerdictBanner(res))
	}

	if config.OutputFile != "" {
		if err := WriteResultToFile(res, config); err != nil {
			return err
		}
		if !config.Quiet && !config.JSON {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}
	return nil
}
