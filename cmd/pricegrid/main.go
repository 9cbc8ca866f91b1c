package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pricegrid"
	"github.com/fwojciec/pricegrid/excelize"
	"github.com/fwojciec/pricegrid/fs"
	"github.com/fwojciec/pricegrid/pdf"
	gridslog "github.com/fwojciec/pricegrid/slog"
	"github.com/fwojciec/pricegrid/sqlite"
	"github.com/fwojciec/pricegrid/yaml"
	"github.com/lmittmann/tint"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when neither --db nor PRICEGRID_DB is set.
	DBPath string

	// SQLite database used by the run history.
	DB *sqlite.DB

	// OpenSource opens the document a catalog reads from.
	OpenSource func(path string) (pricegrid.TokenSource, error)
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		OpenSource: openPDF,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Catalogs: yaml.NewLoader(),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pricegrid"),
		kong.Description("Reconstruct price grids from supplier price books."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pricegrid --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	var logger *slog.Logger
	if cli.Debug {
		logger = slog.New(tint.NewHandler(stderr, &tint.Options{
			Level:   slog.LevelDebug,
			NoColor: stderr != os.Stderr,
		}))
	}

	deps.OpenSource = func(path string) (pricegrid.TokenSource, error) {
		src, err := m.OpenSource(path)
		if err != nil {
			return nil, err
		}
		if logger != nil {
			return gridslog.NewLoggingTokenSource(src, logger), nil
		}
		return src, nil
	}
	deps.NewXLSXWriter = func(path string, supplements *pricegrid.Supplements) pricegrid.GridWriter {
		w := excelize.NewWriter(path)
		w.Supplements = supplements
		if logger != nil {
			return gridslog.NewLoggingGridWriter(w, "xlsx", logger)
		}
		return w
	}
	deps.NewCSVWriter = func(dir string, supplements *pricegrid.Supplements) pricegrid.GridWriter {
		w := fs.NewWriter(dir)
		w.Supplements = supplements
		if logger != nil {
			return gridslog.NewLoggingGridWriter(w, "csv", logger)
		}
		return w
	}

	if needsHistory(cmd, cli) {
		dbPath := cli.DB
		if dbPath == "" {
			dbPath = m.DBPath
		}
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}

		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PRICEGRID_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		defer m.Close()

		var runs pricegrid.RunService = sqlite.NewRunService(m.DB)
		if logger != nil {
			runs = gridslog.NewLoggingRunService(runs, logger)
		}
		deps.Runs = runs
	}

	return kongCtx.Run(deps)
}

// needsHistory reports whether the command reads or writes the run history.
func needsHistory(cmd string, cli *CLI) bool {
	switch cmd {
	case "runs", "show", "delete":
		return true
	case "extract":
		return !cli.Extract.NoHistory
	default:
		return false
	}
}

func openPDF(path string) (pricegrid.TokenSource, error) {
	src, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	return src, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pricegrid.db"
	}
	return filepath.Join(home, ".pricegrid", "pricegrid.db")
}
