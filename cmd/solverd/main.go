package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"solverd/internal/common/fsutil"
	"solverd/internal/config"
	"solverd/internal/framework"
	"solverd/internal/httpapi"
	"solverd/internal/preload"
)

func main() {
	// Flags with environment variable defaults
	addr := flag.String("addr", envStr("SOLVERD_ADDR", ":8080"), "HTTP listen address, e.g. :8080")
	configPath := flag.String("config", "", "Optional config file (.yaml/.json/.toml); flags take precedence")
	preloadLibs := flag.String("preload-libs", envStr("SOLVERD_PRELOAD_LIBS", ""), `Preload spec, e.g. "highs:/opt/highs/lib/libhighs.so,ipopt:/opt/coin/lib/libipopt.so"`)
	frameworkDir := flag.String("framework-dir", envStr("SOLVERD_FRAMEWORK_DIR", ""), "Install directory of the dependent framework (optional)")
	frameworkInitialized := flag.Bool("framework-initialized", false, "Treat the framework as already initialized by the host process")
	strictOrder := flag.Bool("strict-order", false, "Fail startup on a preload/framework ordering violation instead of warning")
	logLevel := flag.String("log-level", envStr("SOLVERD_LOG_LEVEL", "info"), "Log level: debug|info|warn|error")
	corsEnabled := flag.Bool("cors-enabled", false, "Enable CORS middleware")
	corsOrigins := flag.String("cors-origins", "", "Comma-separated allowed CORS origins")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	logger := newLogger(*logLevel)

	// A config file fills in whatever flags and environment left unset.
	specSource := specOrigin(set["preload-libs"])
	if *configPath != "" {
		fileCfg, err := config.Load(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config file")
		}
		if !set["addr"] && os.Getenv("SOLVERD_ADDR") == "" && fileCfg.Addr != "" {
			*addr = fileCfg.Addr
		}
		if *preloadLibs == "" && fileCfg.PreloadLibs != "" {
			*preloadLibs = fileCfg.PreloadLibs
			specSource = "file"
		}
		if *frameworkDir == "" {
			*frameworkDir = fileCfg.FrameworkDir
		}
		if !set["framework-initialized"] && fileCfg.FrameworkInitialized {
			*frameworkInitialized = true
		}
		if !set["strict-order"] && fileCfg.StrictOrder {
			*strictOrder = true
		}
		if !set["log-level"] && os.Getenv("SOLVERD_LOG_LEVEL") == "" && fileCfg.LogLevel != "" {
			logger = newLogger(fileCfg.LogLevel)
		}
		if !set["cors-enabled"] && fileCfg.CORSEnabled {
			*corsEnabled = true
			if *corsOrigins == "" {
				*corsOrigins = strings.Join(fileCfg.CORSOrigins, ",")
			}
		}
	}
	if *preloadLibs == "" {
		specSource = "none"
	}

	httpapi.SetLogger(logger)
	httpapi.SetConfigSource(specSource)
	httpapi.SetCORSOptions(*corsEnabled, splitCSV(*corsOrigins),
		[]string{"GET", "OPTIONS"}, []string{"Accept", "Content-Type"})

	// An unset spec is a no-op; a malformed one aborts startup, since partial
	// application is worse than none.
	spec := map[string]string{}
	if strings.TrimSpace(*preloadLibs) != "" {
		parsed, err := config.ParseSpec(*preloadLibs)
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid preload spec")
		}
		spec = parsed
	}

	var fw framework.Observer
	if *frameworkDir != "" {
		if !fsutil.PathExists(*frameworkDir) {
			logger.Warn().Str("dir", *frameworkDir).Msg("framework directory does not exist")
		}
		rt := framework.NewRuntime(*frameworkDir, "")
		if *frameworkInitialized {
			rt.MarkInitialized()
		}
		fw = rt
	}
	reg := preload.New(fw)
	preload.InitDefault(reg)

	// Preload every configured entry before anything can initialize the
	// framework. Entries fail independently; the caller decides via /status
	// whether to live with framework defaults.
	failures := reg.ApplySpec(spec)
	for name, path := range spec {
		if err, ok := failures[name]; ok {
			logger.Error().Str("solver", name).Str("path", path).Err(err).Msg("preload failed")
			continue
		}
		logger.Info().Str("solver", name).Str("path", path).Msg("preloaded solver library")
	}
	for name := range spec {
		if *strictOrder {
			if err := reg.CheckOrderStrict(name); err != nil {
				logger.Fatal().Err(err).Msg("import-order violation")
			}
			continue
		}
		if v, violated := reg.CheckOrder(name); violated {
			logger.Warn().Str("solver", v.Solver).Msg(v.String())
		}
	}
	reg.MarkReady()

	mux := httpapi.NewMux(reg)
	srv := &http.Server{Addr: *addr, Handler: mux}

	go func() {
		logger.Info().Str("addr", *addr).Int("solvers", len(spec)).Msg("solverd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn().Err(err).Msg("graceful shutdown error")
	}
}

func newLogger(level string) zerolog.Logger {
	lvl := zerolog.InfoLevel
	switch strings.ToLower(level) {
	case "debug":
		lvl = zerolog.DebugLevel
	case "warn", "warning":
		lvl = zerolog.WarnLevel
	case "error", "err":
		lvl = zerolog.ErrorLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}

func specOrigin(fromFlag bool) string {
	if fromFlag {
		return "flags"
	}
	if os.Getenv("SOLVERD_PRELOAD_LIBS") != "" {
		return "env"
	}
	return "none"
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
