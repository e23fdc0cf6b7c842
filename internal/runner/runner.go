// Package runner maps input files and directories to generated RST
// outputs. It owns everything the core engine does not: discovery, output
// path computation, directory creation, and the per-file worker pool.
package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/julianshen/cmakedoc/internal/discovery"
	"github.com/julianshen/cmakedoc/internal/docgen"
)

// Config controls a documentation run.
type Config struct {
	OutputDir string // empty means print rendered RST to Stdout
	Recursive bool
	Jobs      int
	SkipDirs  []string
	Stdout    io.Writer
	Stderr    io.Writer
}

// job is one source file scheduled for documentation.
type job struct {
	path       string
	headerName string
	outputPath string // empty means stdout
}

// fileResult is the outcome of documenting one file.
type fileResult struct {
	index    int
	text     string // rendered RST when destined for stdout
	warnings []docgen.Warning
	err      error
}

// Run documents every file reachable from inputs. Files are processed by
// independent workers; a failure in one file never stops the others. The
// returned error is non-nil only when every file failed (or nothing could
// be discovered at all), matching the process exit contract.
func Run(inputs []string, cfg Config) error {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	if cfg.Jobs <= 0 {
		cfg.Jobs = 1
	}

	jobs, discoverErrs := buildJobs(inputs, cfg)
	for _, err := range discoverErrs {
		fmt.Fprintf(cfg.Stderr, "cmakedoc: %v\n", err)
	}
	if len(jobs) == 0 {
		if len(discoverErrs) > 0 {
			return errors.New("no inputs could be processed")
		}
		return nil
	}

	results := make([]fileResult, len(jobs))
	p := pool.New().WithMaxGoroutines(cfg.Jobs)
	for i, j := range jobs {
		i, j := i, j // capture loop variables
		p.Go(func() {
			text, warnings, err := processFile(j)
			results[i] = fileResult{index: i, text: text, warnings: warnings, err: err}
		})
	}
	p.Wait()

	// All output is emitted after the pool drains, in job order, so
	// concurrent workers never interleave documents or diagnostics.
	failed := 0
	for _, r := range results {
		path := jobs[r.index].path
		for _, w := range r.warnings {
			fmt.Fprintf(cfg.Stderr, "cmakedoc: %s: warning: %s\n", path, w)
		}
		if r.err != nil {
			failed++
			fmt.Fprintf(cfg.Stderr, "cmakedoc: %s: %v\n", path, r.err)
			continue
		}
		if out := jobs[r.index].outputPath; out != "" {
			fmt.Fprintf(cfg.Stderr, "Wrote RST file %s\n", out)
		}
		if r.text != "" {
			fmt.Fprintln(cfg.Stdout, r.text)
		}
	}

	if failed == len(jobs) {
		return fmt.Errorf("all %d files failed", len(jobs))
	}
	return nil
}

// buildJobs expands the input arguments into per-file jobs. Discovery
// failures are reported per input and do not stop the remaining inputs.
func buildJobs(inputs []string, cfg Config) ([]job, []error) {
	var jobs []job
	var errs []error

	for _, input := range inputs {
		files, err := discovery.Find(input, discovery.Options{
			Recursive: cfg.Recursive,
			SkipDirs:  cfg.SkipDirs,
		})
		if err != nil {
			errs = append(errs, err)
			continue
		}

		inputInfo, err := os.Stat(input)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		for _, file := range files {
			j := job{path: file, headerName: file}
			rel := filepath.Base(file)
			if inputInfo.IsDir() {
				if r, err := filepath.Rel(input, file); err == nil {
					rel = r
					j.headerName = r
				}
			}
			if cfg.OutputDir != "" {
				j.outputPath = filepath.Join(cfg.OutputDir, rstName(rel))
			}
			jobs = append(jobs, j)
		}
	}
	return jobs, errs
}

// processFile runs the core pipeline for one file. When the job has an
// output path the rendered text is written there and the returned string
// is empty; otherwise the text is returned for stdout emission.
func processFile(j job) (string, []docgen.Warning, error) {
	source, err := os.ReadFile(j.path)
	if err != nil {
		return "", nil, fmt.Errorf("reading: %w", err)
	}

	model, warnings := docgen.NewDocumenter(string(source), j.path, j.headerName).Process()

	out := docgen.RenderRST(model)
	if j.outputPath == "" {
		return out.String(), warnings, nil
	}

	if err := os.MkdirAll(filepath.Dir(j.outputPath), 0o755); err != nil {
		return "", warnings, fmt.Errorf("creating output directory: %w", err)
	}
	if err := out.WriteFile(j.outputPath); err != nil {
		return "", warnings, err
	}
	return "", warnings, nil
}

// rstName swaps the file's extension for .rst, preserving any relative
// directory prefix.
func rstName(rel string) string {
	base := filepath.Base(rel)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ".rst"
	return filepath.Join(filepath.Dir(rel), base)
}
