package ctl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"solverd/internal/config"
	"solverd/internal/dl"
	"solverd/internal/locator"
	"solverd/internal/preload"
	"solverd/pkg/types"
)

// Seams for tests; the real implementations touch the OS dynamic linker.
var (
	locateFn = locator.Locate
	loadFn   = dl.Open
)

// fnParse validates a spec string and prints the resulting mapping.
func fnParse(w io.Writer, raw string) error {
	m, err := config.ParseSpec(raw)
	if err != nil {
		return err
	}
	for _, name := range sortedNames(m) {
		fmt.Fprintf(w, "%s\t%s\n", name, m[name])
	}
	logger.Info().Int("entries", len(m)).Msg("spec ok")
	return nil
}

// fnPreflight locates and actually loads every entry, reporting per-entry
// verdicts. Loaded libraries stay resident in the solvctl process, which is
// harmless: the process exits right after.
//
// The argument is either a name:path spec string or a bare library path; for
// a bare path the solver name is derived from the filename.
func fnPreflight(w io.Writer, raw string) error {
	m, err := preflightSpec(raw)
	if err != nil {
		return err
	}
	if len(m) == 0 {
		return fmt.Errorf("empty preload spec")
	}
	failed := 0
	for _, name := range sortedNames(m) {
		if err := preflightOne(name, m[name]); err != nil {
			failed++
			fmt.Fprintf(w, "FAIL\t%s\t%v\n", name, err)
			continue
		}
		fmt.Fprintf(w, "OK\t%s\t%s\n", name, m[name])
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d libraries failed preflight", failed, len(m))
	}
	logger.Info().Int("entries", len(m)).Msg("all libraries loadable")
	return nil
}

// preflightSpec interprets the preflight argument. An argument without any
// colon is a bare library path whose solver name comes from the filename
// ("/opt/highs/lib/libhighs.so" preflights as "highs"); anything else goes
// through the spec grammar, so windows drive-letter paths still need the
// name: prefix.
func preflightSpec(raw string) (map[string]string, error) {
	if p := strings.TrimSpace(raw); p != "" && !strings.Contains(p, ":") && !strings.Contains(p, ",") {
		return map[string]string{preload.DeriveName(p): p}, nil
	}
	return config.ParseSpec(raw)
}

func preflightOne(name, path string) error {
	abs, err := locateFn(path)
	if err != nil {
		return err
	}
	logger.Debug().Str("solver", name).Str("path", abs).Msg("loading")
	if _, err := loadFn(abs); err != nil {
		return err
	}
	return nil
}

// fnReport queries a running solverd for the active binary of one solver.
func fnReport(w io.Writer, addr, name string, observe bool) error {
	base := strings.TrimSuffix(addr, "/")
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	u := base + "/solvers/" + url.PathEscape(name)
	if observe {
		u += "?observe=1"
	}
	resp, err := http.Get(u)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		var apiErr types.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("solverd: %s", apiErr.Error)
		}
		return fmt.Errorf("solverd: unexpected status %d", resp.StatusCode)
	}
	var info types.LibraryInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	fmt.Fprintf(w, "solver: %s\n", info.Solver)
	fmt.Fprintf(w, "preloaded: %v\n", info.Preloaded)
	if info.PreloadedPath != "" {
		fmt.Fprintf(w, "preloaded_path: %s\n", info.PreloadedPath)
	}
	fmt.Fprintf(w, "framework_initialized: %v\n", info.FrameworkInitialized)
	if info.FrameworkVersion != "" {
		fmt.Fprintf(w, "framework_version: %s\n", info.FrameworkVersion)
	}
	if info.FrameworkBundledPath != "" {
		fmt.Fprintf(w, "framework_bundled_path: %s (%d bytes)\n", info.FrameworkBundledPath, info.FrameworkBundledSize)
	}
	if info.ActivePath != "" {
		fmt.Fprintf(w, "active_path: %s\n", info.ActivePath)
	} else {
		fmt.Fprintf(w, "active_path: unknown\n")
	}
	return nil
}

func sortedNames(m map[string]string) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
