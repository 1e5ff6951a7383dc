// Package main provides the CLI entrypoint for kanaq.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yomikata/kanaq/internal/config"
	"github.com/yomikata/kanaq/internal/kana"
	"github.com/yomikata/kanaq/internal/quiz"
	"github.com/yomikata/kanaq/internal/tui"
)

const (
	defaultRevealDelayMs = 1200
	fallbackTermWidth    = 80
)

var (
	drillRevealDelayMs int
	drillSeed          int64
	drillGroups        string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "kanaq",
		Short:         "TUI kana drill",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDrillCmd,
	}

	rootCmd.Flags().IntVar(&drillRevealDelayMs, "reveal-delay", defaultRevealDelayMs, "milliseconds the correct answer stays visible after a miss")
	rootCmd.Flags().Int64Var(&drillSeed, "seed", 0, "random seed, 0 uses the current time")
	rootCmd.Flags().StringVar(&drillGroups, "groups", "", "preselect groups, e.g. hiragana:あ行,katakana:カ行")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newGroupsCmd())

	return rootCmd
}

func runDrillCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "reveal-delay", &drillRevealDelayMs, fileCfg.Drill.RevealDelayMs)
	applyInt64Config(cmd, "seed", &drillSeed, fileCfg.Drill.Seed)
	applyStringConfig(cmd, "groups", &drillGroups, fileCfg.Drill.Groups)

	if drillRevealDelayMs <= 0 {
		return fmt.Errorf("--reveal-delay must be > 0")
	}

	sel := quiz.NewSelection()
	if drillGroups != "" {
		if err := preselectGroups(sel, drillGroups); err != nil {
			return err
		}
	}

	gen := quiz.New()
	if drillSeed != 0 {
		gen = quiz.NewSeeded(drillSeed)
	}
	session := quiz.NewSession(sel, gen)

	model := tui.NewModel(session, time.Duration(drillRevealDelayMs)*time.Millisecond)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// preselectGroups toggles each "syllabary:row" pair from a comma-separated
// list into the selection.
func preselectGroups(sel *quiz.Selection, list string) error {
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, row, ok := strings.Cut(part, ":")
		if !ok {
			return fmt.Errorf("invalid group %q (expected syllabary:row)", part)
		}
		syl, err := kana.ParseSyllabary(strings.TrimSpace(name))
		if err != nil {
			return fmt.Errorf("invalid group %q: %w", part, err)
		}
		if err := sel.Toggle(syl, strings.TrimSpace(row)); err != nil {
			return fmt.Errorf("invalid group %q: %w", part, err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newGroupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List practice groups",
		Args:  cobra.NoArgs,
		RunE:  runGroupsCmd,
	}
}

func runGroupsCmd(cmd *cobra.Command, _ []string) error {
	width := fallbackTermWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	out := cmd.OutOrStdout()
	for _, s := range []kana.Syllabary{kana.Hiragana, kana.Katakana} {
		if _, err := fmt.Fprintf(out, "%s\n", s); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		sections := []struct {
			name string
			rows []string
		}{
			{"basic", kana.BasicRows(s)},
			{"dakuon", kana.DakuonRows(s)},
			{"handakuon", kana.HandakuonRows(s)},
		}
		for _, section := range sections {
			if _, err := fmt.Fprintf(out, "  %s\n", section.name); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			for _, line := range groupLines(s, section.rows, width) {
				if _, err := fmt.Fprintf(out, "    %s\n", line); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
		}
	}
	return nil
}

// groupLines formats "row  glyphs" cells and flows them into the terminal
// width.
func groupLines(s kana.Syllabary, rows []string, width int) []string {
	cells := make([]string, 0, len(rows))
	cellWidth := 0
	for _, row := range rows {
		g, err := kana.GetGroup(s, row)
		if err != nil {
			continue
		}
		glyphs := make([]string, 0, len(g.Items))
		for _, it := range g.Items {
			glyphs = append(glyphs, it.Glyph)
		}
		cell := fmt.Sprintf("%s  %s", row, strings.Join(glyphs, " "))
		if w := runewidth.StringWidth(cell); w > cellWidth {
			cellWidth = w
		}
		cells = append(cells, cell)
	}
	cellWidth += 4

	perLine := width / cellWidth
	if perLine < 1 {
		perLine = 1
	}
	var lines []string
	for i := 0; i < len(cells); i += perLine {
		end := i + perLine
		if end > len(cells) {
			end = len(cells)
		}
		var b strings.Builder
		for j, cell := range cells[i:end] {
			if j < end-i-1 {
				b.WriteString(padRight(cell, cellWidth))
			} else {
				b.WriteString(cell)
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}

func padRight(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# kanaq configuration
# Uncomment a value to enable it. CLI flags override config values.

[drill]
# reveal-delay-ms = %d    # Milliseconds the correct answer stays visible after a miss
# seed = 0                  # Random seed (0 = time-based)
# groups = ""               # Preselected groups, e.g. "hiragana:あ行,katakana:カ行"
`,
		defaultRevealDelayMs,
	)
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
