// Command respring writes the Re:Spring business plan deck.
//
//	respring [build] [-o path] [-backend goppt|gooxml] [-config file] ...
//	respring verify [-o path]
//	respring history [-ledger path] [-n 10]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/google/uuid"

	"respring/config"
	"respring/content"
	"respring/deck"
	"respring/export"
	"respring/i18n"
	"respring/ledger"
	"respring/logger"
)

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	exitMismatch = 3
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// options are the flags shared by every subcommand.
type options struct {
	configPath string
	over       config.Config
	verbose    bool
	limit      int
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := "build"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	fs := flag.NewFlagSet("respring "+cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts options
	fs.StringVar(&opts.configPath, "config", "", "JSON config file")
	fs.StringVar(&opts.over.Output, "o", "", "output .pptx path")
	fs.StringVar(&opts.over.Backend, "backend", "", "presentation writer: goppt or gooxml")
	fs.StringVar(&opts.over.ExcelOutput, "xlsx", "", "also write the tables to this workbook")
	fs.StringVar(&opts.over.HandoutOutput, "handout", "", "also write a PDF handout")
	fs.StringVar(&opts.over.HandoutFont, "handout-font", "", "TTF font for the handout")
	fs.StringVar(&opts.over.LedgerPath, "ledger", "", "SQLite build history")
	fs.StringVar(&opts.over.LogDir, "log-dir", "", "directory for the run log")
	fs.StringVar(&opts.over.Language, "lang", "", "message language: 한국어 or English")
	fs.StringVar(&opts.over.OverflowPolicy, "overflow", "", "overflow policy: warn, fail or ignore")
	fs.BoolVar(&opts.verbose, "v", false, "mirror the log to stderr")
	fs.IntVar(&opts.limit, "n", 10, "history: number of builds to list")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		return exitUsage
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintln(stderr, i18n.T("error.config", err))
		return exitUsage
	}
	i18n.SetLanguage(i18n.ParseLanguage(cfg.Language))

	log := logger.NewLogger()
	if cfg.LogDir != "" {
		if err := log.Init(cfg.LogDir); err != nil {
			fmt.Fprintln(stderr, i18n.T("error.config", err))
			return exitUsage
		}
	}
	if opts.verbose {
		log.SetConsole(stderr)
	}
	defer log.Close()

	a := &app{cfg: cfg, log: log, stdout: stdout, stderr: stderr}
	switch cmd {
	case "build":
		return a.build(ctx)
	case "verify":
		return a.verify(ctx)
	case "history":
		return a.history(ctx, opts.limit)
	default:
		fmt.Fprintf(stderr, "unknown command %q (want build, verify or history)\n", cmd)
		return exitUsage
	}
}

func loadConfig(opts options) (config.Config, error) {
	cfg := config.Defaults()
	if opts.configPath != "" {
		file, err := config.LoadJSON(opts.configPath, nil)
		if err != nil {
			return cfg, err
		}
		cfg = config.Merge(cfg, file)
	}
	cfg = config.Merge(cfg, opts.over)
	return cfg, cfg.Validate()
}

type app struct {
	cfg    config.Config
	log    *logger.Logger
	stdout io.Writer
	stderr io.Writer
}

func (a *app) document() (*deck.Document, error) {
	return deck.NewBuilder(a.cfg.Title, a.cfg.Author).Build(content.ReSpring())
}

func (a *app) build(ctx context.Context) int {
	runID := uuid.NewString()
	logf := a.log.Tagged("build")
	logf(fmt.Sprintf("run %s: output %s, backend %s, language %s", runID, a.cfg.Output, a.cfg.Backend, i18n.GetLanguage()))

	backend, err := export.ParseBackend(a.cfg.Backend)
	if err != nil {
		fmt.Fprintln(a.stderr, i18n.T("error.config", err))
		return exitUsage
	}

	doc, err := a.document()
	if err != nil {
		fmt.Fprintln(a.stderr, i18n.T("error.build", err))
		return exitFailure
	}

	if a.cfg.OverflowPolicy != config.OverflowIgnore {
		overflows := deck.CheckBounds(doc)
		for _, o := range overflows {
			logf(o.String())
			if a.cfg.OverflowPolicy == config.OverflowWarn {
				fmt.Fprintln(a.stderr, i18n.T("build.overflow", o.Slide, o.Element+1, o.Role, o.Kind, float64(o.Need), float64(o.Have)))
			}
		}
		if a.cfg.OverflowPolicy == config.OverflowFail && len(overflows) > 0 {
			fmt.Fprintln(a.stderr, i18n.T("build.overflow_fail", len(overflows)))
			return exitFailure
		}
	}

	fingerprint, err := deck.Fingerprint(doc)
	if err != nil {
		fmt.Fprintln(a.stderr, i18n.T("error.build", err))
		return exitFailure
	}

	svc := export.NewPPTExportService(backend, a.log.Log)
	n, err := svc.Persist(ctx, doc, a.cfg.Output)
	if err != nil {
		fmt.Fprintln(a.stderr, i18n.T("error.build", err))
		return exitFailure
	}

	if code := a.sideArtifacts(ctx, doc); code != exitOK {
		return code
	}

	verified := false
	if rep, err := export.Verify(a.cfg.Output, doc); err != nil {
		logf("read-back failed: " + err.Error())
	} else {
		verified = rep.OK()
		for _, p := range rep.Problems() {
			logf("read-back: " + p)
		}
	}

	if a.cfg.LedgerPath != "" {
		if err := a.record(ctx, ledger.Build{
			RunID:       runID,
			Fingerprint: fingerprint,
			Output:      a.cfg.Output,
			Backend:     string(svc.Backend()),
			Slides:      len(doc.Slides),
			Bytes:       int64(n),
			Verified:    verified,
		}); err != nil {
			fmt.Fprintln(a.stderr, i18n.T("error.ledger", err))
			return exitFailure
		}
	}

	fmt.Fprintln(a.stdout, i18n.T("build.done", a.cfg.Output, len(doc.Slides)))
	return exitOK
}

func (a *app) sideArtifacts(ctx context.Context, doc *deck.Document) int {
	logf := a.log.Tagged("build")
	if p := a.cfg.ExcelOutput; p != "" {
		if err := export.NewExcelExportService().SaveTables(ctx, doc, p); err != nil {
			fmt.Fprintln(a.stderr, i18n.T("error.build", err))
			return exitFailure
		}
		logf("tables written to " + p)
		fmt.Fprintln(a.stdout, i18n.T("build.side_artifact", i18n.T("label.excel"), p))
	}
	if p := a.cfg.HandoutOutput; p != "" {
		svc := export.NewHandoutService(a.cfg.HandoutFont, a.log.Log)
		if !svc.HasHangulFont() {
			fmt.Fprintln(a.stderr, i18n.T("warn.handout_font"))
		}
		if err := svc.Save(ctx, doc, p); err != nil {
			fmt.Fprintln(a.stderr, i18n.T("error.build", err))
			return exitFailure
		}
		logf("handout written to " + p)
		fmt.Fprintln(a.stdout, i18n.T("build.side_artifact", i18n.T("label.handout"), p))
	}
	return exitOK
}

// record compares the build with the previous one and appends it to the
// ledger.
func (a *app) record(ctx context.Context, b ledger.Build) error {
	l, err := ledger.Open(ctx, a.cfg.LedgerPath, a.log.Log)
	if err != nil {
		return err
	}
	defer l.Close()

	prev, err := l.Last(ctx)
	switch {
	case errors.Is(err, ledger.ErrNoBuilds):
	case err != nil:
		return err
	case prev.Fingerprint == b.Fingerprint:
		a.log.Log("[build] " + i18n.T("build.unchanged"))
	default:
		a.log.Log("[build] " + i18n.T("build.changed", prev.RunID))
	}
	return l.Record(ctx, b)
}

func (a *app) verify(ctx context.Context) int {
	doc, err := a.document()
	if err != nil {
		fmt.Fprintln(a.stderr, i18n.T("error.build", err))
		return exitFailure
	}
	rep, err := export.Verify(a.cfg.Output, doc)
	if err != nil {
		fmt.Fprintln(a.stderr, i18n.T("verify.failed", err))
		return exitFailure
	}
	if !rep.OK() {
		for _, p := range rep.Problems() {
			fmt.Fprintln(a.stderr, "  "+p)
			a.log.Log("[verify] " + p)
		}
		fmt.Fprintln(a.stderr, i18n.T("verify.failed", rep.Path))
		return exitMismatch
	}
	if a.cfg.LedgerPath != "" {
		if err := a.markVerified(ctx, doc); err != nil {
			fmt.Fprintln(a.stderr, i18n.T("error.ledger", err))
			return exitFailure
		}
	}
	fmt.Fprintln(a.stdout, i18n.T("verify.ok", rep.Path, rep.GotSlides))
	return exitOK
}

// markVerified flags the last build when it produced this file with this
// content.
func (a *app) markVerified(ctx context.Context, doc *deck.Document) error {
	l, err := ledger.Open(ctx, a.cfg.LedgerPath, a.log.Log)
	if err != nil {
		return err
	}
	defer l.Close()

	last, err := l.Last(ctx)
	if errors.Is(err, ledger.ErrNoBuilds) {
		return nil
	}
	if err != nil {
		return err
	}
	fingerprint, err := deck.Fingerprint(doc)
	if err != nil {
		return err
	}
	if last.Output != a.cfg.Output || last.Fingerprint != fingerprint || last.Verified {
		return nil
	}
	return l.MarkVerified(ctx, last.RunID)
}

func (a *app) history(ctx context.Context, limit int) int {
	if a.cfg.LedgerPath == "" {
		fmt.Fprintln(a.stderr, i18n.T("error.config", "-ledger is required"))
		return exitUsage
	}
	l, err := ledger.Open(ctx, a.cfg.LedgerPath, a.log.Log)
	if err != nil {
		fmt.Fprintln(a.stderr, i18n.T("error.ledger", err))
		return exitFailure
	}
	defer l.Close()

	builds, err := l.List(ctx, limit)
	if err != nil {
		fmt.Fprintln(a.stderr, i18n.T("error.ledger", err))
		return exitFailure
	}
	if len(builds) == 0 {
		fmt.Fprintln(a.stdout, i18n.T("history.empty"))
		return exitOK
	}
	fmt.Fprintln(a.stdout, i18n.T("history.header"))
	for _, b := range builds {
		mark := ""
		if b.Verified {
			mark = " ✓"
		}
		fmt.Fprintf(a.stdout, "%-38s %-20s %-7s %-9d %-9d %s%s\n",
			b.RunID, b.CreatedAt.Local().Format(time.DateTime), b.Backend, b.Slides, b.Bytes, shortFingerprint(b.Fingerprint), mark)
	}
	return exitOK
}

func shortFingerprint(fp string) string {
	if len(fp) > 12 {
		return fp[:12]
	}
	return fp
}
