package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"slices"
	"syscall"
	"time"

	"github.com/tartampluch/go-almanac/internal/almanac"
	"github.com/tartampluch/go-almanac/internal/config"
	"github.com/tartampluch/go-almanac/internal/engine"
	"github.com/tartampluch/go-almanac/internal/names"
	"github.com/tartampluch/go-almanac/internal/server"
	"github.com/zalando/go-keyring"
)

// options groups the parsed CLI flags.
type options struct {
	date    string
	from    string
	to      string
	lang    string
	serve   bool
	port    string
	vcfPath string
	webURL  string
	webUser string
	system  string
}

// main is the application entry point.
// It delegates execution to runMain to ensure that deferred function calls
// (like closing log files) are executed before the process terminates.
// os.Exit() does not run defers, so we must return an integer code first.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
// Returns config.ExitCodeSuccess on success, config.ExitCodeError on failure.
func runMain() int {
	// -------------------------------------------------------------------------
	// 1. CLI Argument Parsing
	// -------------------------------------------------------------------------
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)

	var opts options
	flag.StringVar(&opts.date, config.FlagDate, "", config.FlagDescDate)
	flag.StringVar(&opts.from, config.FlagFrom, config.SystemGregorian, config.FlagDescFrom)
	flag.StringVar(&opts.to, config.FlagTo, "", config.FlagDescTo)
	flag.StringVar(&opts.lang, config.FlagLang, config.SupportedLanguages[0], config.FlagDescLang)
	flag.BoolVar(&opts.serve, config.FlagServe, false, config.FlagDescServe)
	flag.StringVar(&opts.port, config.FlagPort, config.DefaultPort, config.FlagDescPort)
	flag.StringVar(&opts.vcfPath, config.FlagVCF, "", config.FlagDescVCF)
	flag.StringVar(&opts.webURL, config.FlagWebURL, "", config.FlagDescWebURL)
	flag.StringVar(&opts.webUser, config.FlagWebUser, "", config.FlagDescWebUser)
	flag.StringVar(&opts.system, config.FlagSystem, config.DefaultTargetSystem, config.FlagDescSystem)
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	// -------------------------------------------------------------------------
	// 2. Logging Initialization
	// -------------------------------------------------------------------------
	// We configure structured logging (slog) early to capture startup issues.
	logCloser := setupLogging(*debugMode)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	// -------------------------------------------------------------------------
	// 3. Context & Signal Handling
	// -------------------------------------------------------------------------
	// Create a root context that cancels on SIGINT (Ctrl+C) or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	// -------------------------------------------------------------------------
	// 4. Application Logic
	// -------------------------------------------------------------------------
	if err := run(ctx, opts); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run selects the language, then dispatches between the one-shot conversion
// and the anniversary feed server.
func run(ctx context.Context, opts options) error {
	if !slices.Contains(config.SupportedLanguages, opts.lang) {
		return fmt.Errorf("%s: %q", config.ErrLangUnsupport, opts.lang)
	}
	if err := names.Configure(opts.lang); err != nil {
		return err
	}

	if opts.serve {
		return runServe(ctx, opts)
	}
	return runConvert(opts)
}

// runConvert performs a single conversion and prints the result table to
// stdout. An empty -date means today.
func runConvert(opts options) error {
	var input almanac.Almanac
	var err error

	today := almanac.GregorianFromTime(time.Now())
	if opts.date == "" {
		input, err = almanac.Convert(opts.from, today)
	} else {
		input, err = almanac.ParseDate(opts.from, opts.date)
	}
	if err != nil {
		return err
	}

	targets := almanac.Systems()
	if opts.to != "" {
		targets = []string{opts.to}
	}

	fmt.Printf(config.FormatConvertInput,
		almanac.SystemID(input), input.Date(), input.JulianDay().Value())

	for _, id := range targets {
		converted, err := almanac.Convert(id, input)
		if err != nil {
			return err
		}
		weekday, err := converted.WeekDayName()
		if err != nil {
			return err
		}
		fmt.Printf(config.FormatConvertRow, id, converted.Date(), weekday)
	}
	return nil
}

// runServe runs the periodic contact sync and serves the generated feed until
// the context is cancelled.
func runServe(ctx context.Context, opts options) error {
	syncCfg, err := buildSyncConfig(opts)
	if err != nil {
		return err
	}

	gen := &engine.Generator{
		Clock:   engine.RealClock{},
		Fetcher: engine.NewHTTPFetcher(),
	}
	srv := server.NewCalendarServer(opts.port)

	refresh := func() {
		ics, _, _, err := gen.RunSync(ctx, syncCfg)
		if err != nil {
			slog.Error(config.ErrSyncFailed,
				config.LogKeyComponent, config.CompMain,
				config.LogKeyError, err,
			)
			return
		}
		srv.Update(ics)
	}

	// First sync before the listener opens so most clients never see a 503.
	refresh()

	go func() {
		ticker := time.NewTicker(config.DefaultRefreshMin * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				refresh()
			}
		}
	}()

	return srv.Start(ctx)
}

// buildSyncConfig derives the sync source from the flags. The web password is
// never a flag; it comes from the system keyring under the web username.
func buildSyncConfig(opts options) (engine.SyncConfig, error) {
	cfg := engine.SyncConfig{Target: opts.system}

	switch {
	case opts.vcfPath != "":
		cfg.Mode = config.SourceModeLocal
		cfg.LocalPath = opts.vcfPath
	case opts.webURL != "":
		cfg.Mode = config.SourceModeWeb
		cfg.WebURL = opts.webURL
		cfg.WebUser = opts.webUser
		if opts.webUser != "" {
			pass, err := keyring.Get(config.KeyringService, opts.webUser)
			if err != nil && !errors.Is(err, keyring.ErrNotFound) {
				return engine.SyncConfig{}, fmt.Errorf("%s: %w", config.ErrKeyringRead, err)
			}
			cfg.WebPass = pass
		}
	default:
		return engine.SyncConfig{}, errors.New(config.ErrSourceRequired)
	}
	return cfg, nil
}

// printVersion outputs the build information to stdout and exits.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger.
func setupLogging(debugMode bool) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	// 1. Always write to Stderr; stdout is reserved for conversion output.
	writers = append(writers, os.Stderr)

	// 2. Attempt to set up a file writer in the user's cache directory.
	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		// Use centralized permission constants for security.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	// Ensure the directory exists with restricted permissions (700).
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
