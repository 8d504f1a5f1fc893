// Package main provides the CLI entrypoint for typewright.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/typewright/typewright/internal/config"
	"github.com/typewright/typewright/internal/eventlog"
	"github.com/typewright/typewright/internal/historyui"
	"github.com/typewright/typewright/internal/logging"
	"github.com/typewright/typewright/internal/mistake"
	"github.com/typewright/typewright/internal/model"
	"github.com/typewright/typewright/internal/report"
	"github.com/typewright/typewright/internal/settings"
	"github.com/typewright/typewright/internal/sink"
	"github.com/typewright/typewright/internal/store"
	"github.com/typewright/typewright/internal/textstats"
	"github.com/typewright/typewright/internal/tui"
	"github.com/typewright/typewright/internal/typist"
)

const (
	defaultSpeed       = 60.0
	defaultCountdown   = 3.0
	defaultTheme       = "dark"
	defaultCurveWindow = 20
)

var (
	typeText      string
	typeClipboard bool
	typeSpeed     float64
	typeErrorRate float64
	typeFatigue   bool
	typeSeed      int64
	typeCountdown float64
	typeDryRun    bool
	typeNoTUI     bool
	typeEventLog  string
	typeShowStats bool
	typeLegacy    string
	typeNoStore   bool
	typeTheme     string

	logLevel string
	logFile  string

	analyzeSpeed float64

	historySince       string
	historyLimit       int
	historyPlot        bool
	historyInteractive bool
	historyWindow      int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typewright [file]",
		Short:         "Ghost-type text with human pacing and mistakes",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTypeCmd,
	}

	rootCmd.Flags().StringVar(&typeText, "text", "", "type this text instead of reading a file")
	rootCmd.Flags().BoolVar(&typeClipboard, "from-clipboard", false, "read the text from the clipboard")
	rootCmd.Flags().Float64Var(&typeSpeed, "wpm", defaultSpeed, "typing speed in words per minute")
	rootCmd.Flags().Float64Var(&typeErrorRate, "error-rate", 0, "mistake rate override in percent (default: derived from the text)")
	rootCmd.Flags().BoolVar(&typeFatigue, "fatigue", false, "slow down gradually as the session progresses")
	rootCmd.Flags().Int64Var(&typeSeed, "seed", 0, "seed for reproducible sessions")
	rootCmd.Flags().Float64Var(&typeCountdown, "countdown", defaultCountdown, "seconds before typing starts")
	rootCmd.Flags().BoolVar(&typeDryRun, "dry-run", false, "simulate on a virtual clock, instantly and without persistence")
	rootCmd.Flags().BoolVar(&typeNoTUI, "no-tui", false, "ghost-type straight to the terminal instead of the TUI")
	rootCmd.Flags().StringVar(&typeEventLog, "event-log", "", "write session events as NDJSON to this file")
	rootCmd.Flags().BoolVar(&typeShowStats, "stats", false, "print text statistics before typing")
	rootCmd.Flags().StringVar(&typeLegacy, "legacy-settings", "", "apply a legacy profile file before typing")
	rootCmd.Flags().BoolVar(&typeNoStore, "no-store", false, "skip recording the run")
	rootCmd.Flags().StringVar(&typeTheme, "theme", defaultTheme, "display theme (dark or light)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file (rotated)")

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newSettingsCmd())

	return rootCmd
}

func runTypeCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFloatConfig(cmd, "wpm", &typeSpeed, fileCfg.Typing.Speed)
	applyFloatConfig(cmd, "error-rate", &typeErrorRate, fileCfg.Typing.ErrorRate)
	applyBoolConfig(cmd, "fatigue", &typeFatigue, fileCfg.Typing.Fatigue)
	applyFloatConfig(cmd, "countdown", &typeCountdown, fileCfg.Typing.Countdown)
	applyInt64Config(cmd, "seed", &typeSeed, fileCfg.Typing.Seed)
	applyStringConfig(cmd, "theme", &typeTheme, fileCfg.Output.Theme)
	applyBoolConfig(cmd, "no-tui", &typeNoTUI, fileCfg.Output.NoTUI)
	applyStringConfig(cmd, "event-log", &typeEventLog, fileCfg.Output.EventLog)
	applyBoolConfig(cmd, "no-store", &typeNoStore, fileCfg.Output.NoStore)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Logging.Level)
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Logging.File)

	seeded := cmd.Flags().Changed("seed") || fileCfg.Typing.Seed != nil
	rateSet := cmd.Flags().Changed("error-rate") || fileCfg.Typing.ErrorRate != nil

	if typeLegacy != "" {
		profile, err := settings.Load(typeLegacy)
		if err != nil {
			return fmt.Errorf("failed to load legacy settings: %w", err)
		}
		if !cmd.Flags().Changed("wpm") {
			typeSpeed = profile.Speed
		}
		if profile.Mode == settings.ModeAdvanced {
			if !cmd.Flags().Changed("error-rate") {
				typeErrorRate = profile.ErrorRate
				rateSet = true
			}
			if !cmd.Flags().Changed("fatigue") {
				typeFatigue = profile.Fatigue
			}
		}
	}

	if typeErrorRate < 0 || typeErrorRate > 100 {
		return fmt.Errorf("--error-rate must be between 0 and 100")
	}
	if typeCountdown < 0 {
		return fmt.Errorf("--countdown must be >= 0")
	}
	if typeTheme != "dark" && typeTheme != "light" {
		return fmt.Errorf("--theme must be dark or light")
	}

	text, label, err := resolveText(args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("input text is empty")
	}

	logger, cleanup, err := logging.New(logging.Options{
		Level:   logLevel,
		File:    logFile,
		Console: logFile == "" && logLevel != "",
	})
	if err != nil {
		return err
	}
	defer cleanup()

	stats := textstats.Analyze(text)
	rate := mistake.Clamp01(mistake.Rate(typeSpeed, stats))
	if rateSet {
		rate = typeErrorRate / 100
	}

	if typeShowStats {
		if err := report.RenderAnalysis(cmd.OutOrStdout(), label, stats, typeSpeed); err != nil {
			return fmt.Errorf("failed to render analysis: %w", err)
		}
	}

	var events *eventlog.Writer
	if typeEventLog != "" {
		f, err := os.Create(typeEventLog)
		if err != nil {
			return fmt.Errorf("failed to create event log: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				logErrf("failed to close event log: %v\n", cerr)
			}
		}()
		events = eventlog.NewWriter(f)
	}

	tcfg := typist.Config{
		Speed:       typeSpeed,
		MistakeRate: rate,
		Fatigue:     typeFatigue,
		Stats:       stats,
	}
	opts := []typist.Option{typist.WithLogger(logger)}
	if seeded {
		opts = append(opts, typist.WithSeed(typeSeed))
	}
	if typeDryRun {
		opts = append(opts, typist.WithClock(typist.NewVirtualClock()))
	}

	startedAt := time.Now()
	var (
		result  typist.Result
		runErr  error
		started = true
	)
	if typeDryRun || typeNoTUI {
		result, runErr = runPlain(cmd.OutOrStdout(), tcfg, opts, events, text)
	} else {
		tui.SetTheme(typeTheme)
		result, started, runErr = runViewer(tcfg, opts, events, text)
	}
	if !started {
		return runErr
	}

	if events != nil {
		if werr := events.Err(); werr != nil {
			logErrf("failed to write event log: %v\n", werr)
		}
	}

	aborted := errors.Is(runErr, context.Canceled)
	if result.Stats.CharsTyped > 0 {
		rec := model.RunRecord{
			ID:          uuid.NewString(),
			StartedAt:   startedAt,
			Label:       label,
			Speed:       typeSpeed,
			MistakeRate: rate,
			Fatigue:     typeFatigue,
			Chars:       len([]rune(text)),
			CharsTyped:  result.Stats.CharsTyped,
			Mistakes:    result.Stats.Mistakes,
			Corrected:   result.Stats.Corrected,
			Backspaces:  result.Stats.Backspaces,
			DurationMs:  result.Elapsed.Milliseconds(),
			Completed:   runErr == nil,
		}
		if !typeNoStore && !typeDryRun {
			if err := recordRun(fileCfg, rec, stats); err != nil {
				return err
			}
		}
		printRunResult(cmd.OutOrStdout(), rec, result, aborted)
	}
	if runErr != nil && !aborted {
		return runErr
	}
	return nil
}

// runViewer types through the TUI. The engine writes into a capture sink
// while the viewer mirrors its events; started is false when the session
// was aborted before the first keystroke.
func runViewer(cfg typist.Config, opts []typist.Option, events *eventlog.Writer, text string) (typist.Result, bool, error) {
	var feed typist.Listener
	listen := func(ev typist.Event) {
		if events != nil {
			events.Record(ev)
		}
		if feed != nil {
			feed(ev)
		}
	}
	sim, err := typist.New(sink.NewCapture(), cfg, append(opts, typist.WithListener(listen))...)
	if err != nil {
		return typist.Result{}, false, err
	}
	run := func(ctx context.Context, listener typist.Listener) (typist.Result, error) {
		feed = listener
		result, err := sim.Simulate(ctx, text)
		return *result, err
	}

	countdown := time.Duration(typeCountdown * float64(time.Second))
	viewer := tui.NewModel(text, countdown, run)
	program := tea.NewProgram(viewer, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return typist.Result{}, false, fmt.Errorf("failed to run TUI: %w", err)
	}
	if !viewer.Started() {
		return typist.Result{}, false, nil
	}
	return viewer.Result(), true, viewer.Err()
}

// runPlain ghost-types straight to w. Interrupts cancel the session but
// keep the partial result.
func runPlain(w io.Writer, cfg typist.Config, opts []typist.Option, events *eventlog.Writer, text string) (typist.Result, error) {
	listen := func(ev typist.Event) {
		if events != nil {
			events.Record(ev)
		}
	}
	sim, err := typist.New(sink.NewTerminal(w), cfg, append(opts, typist.WithListener(listen))...)
	if err != nil {
		return typist.Result{}, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if !typeDryRun {
		if err := waitCountdown(ctx, typeCountdown); err != nil {
			return typist.Result{}, err
		}
	}
	result, err := sim.Simulate(ctx, text)
	if _, werr := fmt.Fprintln(w); werr != nil {
		logErrf("failed to write output: %v\n", werr)
	}
	return *result, err
}

func waitCountdown(ctx context.Context, seconds float64) error {
	remaining := time.Duration(seconds * float64(time.Second))
	for remaining > 0 {
		logErrf("\rTyping begins in %d... ", int(math.Ceil(remaining.Seconds())))
		step := time.Second
		if remaining < step {
			step = remaining
		}
		timer := time.NewTimer(step)
		select {
		case <-ctx.Done():
			timer.Stop()
			logErrln()
			return ctx.Err()
		case <-timer.C:
		}
		remaining -= step
	}
	logErrf("\r%s\r", strings.Repeat(" ", 26))
	return nil
}

func printRunResult(w io.Writer, rec model.RunRecord, result typist.Result, aborted bool) {
	wpm, accuracy := report.RunMetrics(rec)
	elapsed := result.Elapsed.Round(100 * time.Millisecond)
	head := "Typed"
	switch {
	case typeDryRun:
		head = "Dry run: would type"
	case aborted:
		head = "Stopped early: typed"
	}
	fmt.Fprintf(w, "%s %d characters in %s\n", head, rec.CharsTyped, elapsed)
	fmt.Fprintf(w, "Speed %.1f WPM, accuracy %.1f%%\n", wpm, accuracy*100)
	fmt.Fprintf(w, "Mistakes %d (%d corrected, %d backspaces)\n", rec.Mistakes, rec.Corrected, rec.Backspaces)
}

func recordRun(fileCfg config.FileConfig, rec model.RunRecord, stats textstats.Statistics) error {
	st, err := store.Open(resolveDBPath(fileCfg))
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	letters := report.LetterCounts(stats.LetterFrequency)
	if err := st.InsertRun(context.Background(), rec, letters); err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Show text statistics and the projected mistake rate",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnalyzeCmd,
	}
	cmd.Flags().Float64Var(&analyzeSpeed, "wpm", defaultSpeed, "typing speed for the mistake-rate projection")
	return cmd
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFloatConfig(cmd, "wpm", &analyzeSpeed, fileCfg.Typing.Speed)

	if len(args) == 0 {
		return fmt.Errorf("no input text: pass a file or -")
	}
	text, label, err := readSource(args[0])
	if err != nil {
		return err
	}
	stats := textstats.Analyze(text)
	if err := report.RenderAnalysis(cmd.OutOrStdout(), label, stats, analyzeSpeed); err != nil {
		return fmt.Errorf("failed to render analysis: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show stored runs",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLimit, "limit", 0, "limit to last N runs")
	cmd.Flags().BoolVar(&historyPlot, "plot", false, "plot WPM and accuracy over the runs")
	cmd.Flags().BoolVar(&historyInteractive, "interactive", false, "browse runs in a TUI")
	cmd.Flags().IntVar(&historyWindow, "curve-window", defaultCurveWindow, "moving average window for curves")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	cfg := model.HistoryConfig{Since: sinceTime, Last: historyLimit}

	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	st, err := store.Open(resolveDBPath(fileCfg))
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if historyInteractive {
		browser := historyui.NewModel(st, cfg, historyWindow)
		program := tea.NewProgram(browser, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run history TUI: %w", err)
		}
		return nil
	}

	rep, err := report.BuildReport(context.Background(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to load runs: %w", err)
	}
	out := cmd.OutOrStdout()
	if err := report.RenderSummary(out, rep.Runs); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	if err := report.RenderHistory(out, rep.Runs); err != nil {
		return fmt.Errorf("failed to render history: %w", err)
	}
	if historyPlot {
		if err := report.RenderCurves(out, rep.Runs, historyWindow, 0, 0, false); err != nil {
			return fmt.Errorf("failed to render curves: %w", err)
		}
	}
	if err := report.RenderLetterTable(out, rep.Letters, rep.Total); err != nil {
		return fmt.Errorf("failed to render letters: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show config paths and resolved preferences",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(cmd *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config: %s\n", path)
	fmt.Fprintf(out, "Database: %s\n", resolveDBPath(fileCfg))
	fmt.Fprintf(out, "Legacy profile: %s\n", config.DefaultSettingsPath())
	fmt.Fprintln(out, "Preferences:")
	fmt.Fprintf(out, "  wpm: %g\n", floatOr(fileCfg.Typing.Speed, defaultSpeed))
	if fileCfg.Typing.ErrorRate != nil {
		fmt.Fprintf(out, "  error-rate: %g%%\n", *fileCfg.Typing.ErrorRate)
	} else {
		fmt.Fprintln(out, "  error-rate: derived from the text")
	}
	fmt.Fprintf(out, "  fatigue: %t\n", boolOr(fileCfg.Typing.Fatigue, false))
	fmt.Fprintf(out, "  countdown: %gs\n", floatOr(fileCfg.Typing.Countdown, defaultCountdown))
	fmt.Fprintf(out, "  theme: %s\n", stringOr(fileCfg.Output.Theme, defaultTheme))
	fmt.Fprintf(out, "  no-tui: %t\n", boolOr(fileCfg.Output.NoTUI, false))
	fmt.Fprintf(out, "  no-store: %t\n", boolOr(fileCfg.Output.NoStore, false))
	fmt.Fprintf(out, "  event-log: %s\n", stringOr(fileCfg.Output.EventLog, "off"))
	fmt.Fprintf(out, "  log-level: %s\n", stringOr(fileCfg.Logging.Level, "info"))
	fmt.Fprintf(out, "  log-file: %s\n", stringOr(fileCfg.Logging.File, "off"))
	return nil
}

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Import or export the legacy profile format",
	}
	cmd.AddCommand(newSettingsImportCmd())
	cmd.AddCommand(newSettingsExportCmd())
	return cmd
}

func newSettingsImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Copy a legacy profile into the config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSettingsImportCmd,
	}
}

func runSettingsImportCmd(cmd *cobra.Command, args []string) error {
	path := config.DefaultSettingsPath()
	if len(args) > 0 {
		path = args[0]
	}
	profile, err := settings.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load legacy settings: %w", err)
	}

	configPath := config.DefaultConfigPath()
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	fileCfg.Typing.Speed = &profile.Speed
	if profile.Mode == settings.ModeAdvanced {
		fileCfg.Typing.ErrorRate = &profile.ErrorRate
		fileCfg.Typing.Fatigue = &profile.Fatigue
	}
	if err := config.SaveConfig(configPath, fileCfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %s into %s\n", path, configPath)
	return nil
}

func newSettingsExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the configured profile in the legacy format",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSettingsExportCmd,
	}
}

func runSettingsExportCmd(cmd *cobra.Command, args []string) error {
	path := config.DefaultSettingsPath()
	if len(args) > 0 {
		path = args[0]
	}
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	profile := settings.Settings{
		Speed: floatOr(fileCfg.Typing.Speed, defaultSpeed),
		Mode:  settings.ModeSimple,
	}
	if fileCfg.Typing.ErrorRate != nil || fileCfg.Typing.Fatigue != nil {
		profile.Mode = settings.ModeAdvanced
		if fileCfg.Typing.ErrorRate != nil {
			profile.ErrorRate = *fileCfg.Typing.ErrorRate
		}
		profile.Fatigue = boolOr(fileCfg.Typing.Fatigue, false)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := settings.Save(path, profile); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported profile to %s\n", path)
	return nil
}

func resolveText(args []string) (string, string, error) {
	if typeText != "" {
		return typeText, "inline", nil
	}
	if typeClipboard {
		text, err := clipboard.ReadAll()
		if err != nil {
			return "", "", fmt.Errorf("failed to read clipboard: %w", err)
		}
		return text, "clipboard", nil
	}
	if len(args) == 0 {
		return "", "", fmt.Errorf("no input text: pass a file, -, --text, or --from-clipboard")
	}
	return readSource(args[0])
}

func readSource(arg string) (string, string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "stdin", nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), filepath.Base(arg), nil
}

func resolveDBPath(fileCfg config.FileConfig) string {
	if fileCfg.Output.Database != nil {
		return *fileCfg.Output.Database
	}
	return config.DefaultDBPath()
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

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
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

func floatOr(value *float64, fallback float64) float64 {
	if value == nil {
		return fallback
	}
	return *value
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

func stringOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
