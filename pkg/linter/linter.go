package linter

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/siyuan-infoblox/lensort/pkg/config"
	"github.com/siyuan-infoblox/lensort/pkg/diag"
	"github.com/siyuan-infoblox/lensort/pkg/errors"
	"github.com/siyuan-infoblox/lensort/pkg/grouping"
	"github.com/siyuan-infoblox/lensort/pkg/report"
	"github.com/siyuan-infoblox/lensort/pkg/rules"
	"github.com/siyuan-infoblox/lensort/pkg/syntax"
	"github.com/siyuan-infoblox/lensort/pkg/utils"
)

// maxFixPasses bounds how often a file is re-checked while fixing.
// Import swaps move one pair per pass, so a reversed run of n imports
// needs about n passes.
const maxFixPasses = 100

// ErrProblemsFound is returned when error-severity diagnostics remain
var ErrProblemsFound = stderrors.New(errors.ErrMsgProblemsFound)

type LinterConfig struct {
	Root    string         // project root override; empty means nearest package.json
	Fix     bool           // write fixes back to the files
	Diff    bool           // print a unified diff of the fixes
	Rules   []string       // run only these rules; empty runs every enabled rule
	Jobs    int            // files processed in parallel
	NoColor bool           // disable colored output
	Config  *config.Config // file configuration, defaults when nil
	Logger  *zap.Logger    // nop logger when nil
	Out     io.Writer      // report destination, stdout when nil
}

type activeRule struct {
	rule     rules.Rule
	severity diag.Severity
}

// linter runs the ordering rules over source files
type linter struct {
	config LinterConfig
	logger *zap.Logger

	mu      sync.Mutex
	probers map[string]*grouping.FSProber
}

// New creates a new linter with the given configuration
func New(cfg LinterConfig) *linter {
	if cfg.Config == nil {
		cfg.Config = config.DefaultConfig()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Jobs < 1 {
		cfg.Jobs = max(1, cfg.Config.Jobs)
	}
	return &linter{
		config:  cfg,
		logger:  cfg.Logger,
		probers: make(map[string]*grouping.FSProber),
	}
}

// activeRules resolves which registered rules run and with what severity
func (g *linter) activeRules() ([]activeRule, error) {
	selected := make(map[string]bool)
	for _, name := range g.config.Rules {
		if _, ok := rules.Lookup(name); !ok {
			return nil, fmt.Errorf(errors.ErrMsgUnknownRule, name)
		}
		selected[name] = true
	}

	var active []activeRule
	for _, r := range rules.All() {
		if len(selected) > 0 && !selected[r.Name()] {
			continue
		}
		sev, err := g.config.Config.Severity(r.Name())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToResolveRuleSev, err)
		}
		if sev == diag.SevOff {
			continue
		}
		active = append(active, activeRule{rule: r, severity: sev})
	}
	return active, nil
}

// projectRoot returns the directory absolute imports of path resolve under
func (g *linter) projectRoot(path string) string {
	if g.config.Root != "" {
		return g.config.Root
	}
	if root := utils.GetProjectRoot(path); root != "" {
		return root
	}
	g.logger.Debug(fmt.Sprintf(errors.InfoMsgNoProjectRoot, path))
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// proberFor returns the shared filesystem prober for path's project
func (g *linter) proberFor(path string) grouping.Prober {
	root := g.projectRoot(path)

	g.mu.Lock()
	defer g.mu.Unlock()
	p, ok := g.probers[root]
	if !ok {
		p = grouping.NewFSProber(root)
		g.probers[root] = p
		g.logger.Debug("absolute import base", zap.String("root", root), zap.String("base", p.Base()))
	}
	return p
}

// check parses content and runs every active rule over it
func (g *linter) check(ctx context.Context, path, content string, active []activeRule, env *rules.Env) ([]diag.Diagnostic, error) {
	f, err := syntax.Parse(ctx, path, []byte(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToParseFile, err)
	}
	defer f.Close()

	if f.HasErrors() {
		g.logger.Warn("source has syntax errors, checking the recovered tree", zap.String("path", path))
	}

	var diagnostics []diag.Diagnostic
	for _, ar := range active {
		for _, d := range ar.rule.Check(f, env) {
			d.Severity = ar.severity
			diagnostics = append(diagnostics, d)
		}
	}
	sort.SliceStable(diagnostics, func(i, j int) bool {
		return diagnostics[i].Start < diagnostics[j].Start
	})
	return diagnostics, nil
}

// fix applies fixes pass by pass until nothing more applies or the content
// comes back to an earlier state. It returns the fixed content and the
// diagnostics that remain in it.
func (g *linter) fix(ctx context.Context, path, content string, active []activeRule, env *rules.Env) (string, []diag.Diagnostic, error) {
	current := content
	seen := map[string]bool{current: true}
	for pass := 1; ; pass++ {
		if err := ctx.Err(); err != nil {
			return "", nil, err
		}
		diagnostics, err := g.check(ctx, path, current, active, env)
		if err != nil {
			return "", nil, err
		}
		if pass > maxFixPasses {
			return current, diagnostics, nil
		}
		next, applied := diag.Apply(current, diagnostics)
		if applied == 0 {
			return current, diagnostics, nil
		}
		g.logger.Debug("applied fixes", zap.String("path", path), zap.Int("pass", pass), zap.Int("fixes", applied))
		if seen[next] {
			g.logger.Warn("fixes do not converge", zap.String("path", path), zap.Int("pass", pass))
			return current, diagnostics, nil
		}
		seen[next] = true
		current = next
	}
}

// lintFile checks, and when asked fixes, a single file
func (g *linter) lintFile(ctx context.Context, path string, active []activeRule) report.FileResult {
	res := report.FileResult{Path: path}

	src, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
		return res
	}
	res.Original = string(src)
	res.Content = res.Original

	env := &rules.Env{Prober: g.proberFor(path)}
	g.logger.Debug("checking", zap.String("path", path))

	if !g.config.Fix && !g.config.Diff {
		res.Diagnostics, res.Err = g.check(ctx, path, res.Original, active, env)
		return res
	}

	fixed, remaining, err := g.fix(ctx, path, res.Original, active, env)
	if err != nil {
		res.Err = err
		return res
	}

	if !g.config.Fix {
		// diff only: report against the untouched file
		res.Diagnostics, res.Err = g.check(ctx, path, res.Original, active, env)
		res.Content = res.Original
		res.Proposed = fixed
		return res
	}

	res.Content = fixed
	res.Proposed = fixed
	res.Diagnostics = remaining
	if fixed != res.Original {
		if err := writeFile(path, fixed); err != nil {
			res.Err = fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
			return res
		}
		res.Fixed = true
		g.logger.Info("fixed", zap.String("path", path), zap.Int("remaining", len(remaining)))
	}
	return res
}

func writeFile(path, content string) error {
	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	return os.WriteFile(path, []byte(content), perm)
}

// ProcessFiles lints the given files in parallel and reports them in order
func (g *linter) ProcessFiles(ctx context.Context, filePaths []string) error {
	active, err := g.activeRules()
	if err != nil {
		return err
	}

	results := make([]report.FileResult, len(filePaths))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.config.Jobs)
	for i, path := range filePaths {
		eg.Go(func() error {
			results[i] = g.lintFile(gctx, path, active)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	reporter := report.NewText(g.config.Out, g.config.NoColor)
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			g.logger.Error("processing failed", zap.String("path", res.Path), zap.Error(res.Err))
		}
		reporter.File(res)
		if g.config.Diff && res.Err == nil {
			d, err := report.Diff(res.Path, res.Original, res.Proposed)
			if err != nil {
				return fmt.Errorf("%s: %w", errors.ErrMsgFailedToDiffFile, err)
			}
			fmt.Fprint(g.config.Out, d)
		}
	}
	reporter.Summary(len(filePaths))

	if failed > 0 {
		return fmt.Errorf(errors.ErrMsgFilesFailedToProcess, failed)
	}
	if reporter.Errors() > 0 {
		return ErrProblemsFound
	}
	return nil
}

// ProcessPath lints a file or every source file below a directory
func (g *linter) ProcessPath(ctx context.Context, path string) error {
	return g.ProcessPaths(ctx, []string{path})
}

// ProcessPaths lints files and directories
func (g *linter) ProcessPaths(ctx context.Context, paths []string) error {
	var files []string
	for _, path := range paths {
		isDir, err := utils.IsDirectory(path)
		if err != nil {
			return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
		}
		if !isDir {
			files = append(files, path)
			continue
		}

		found, err := utils.FindSourceFiles(path, g.config.Config.Extensions, g.config.Config.Exclude)
		if err != nil {
			return fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindFiles, err)
		}
		if len(found) == 0 {
			g.logger.Info(fmt.Sprintf(errors.InfoMsgNoFilesFound, path))
			continue
		}
		g.logger.Info(fmt.Sprintf(errors.InfoMsgFoundFiles, len(found), path))
		files = append(files, found...)
	}

	if len(files) == 0 {
		return nil
	}
	if g.config.Root != "" {
		g.logger.Info(fmt.Sprintf(errors.InfoMsgProjectRoot, g.config.Root))
	}
	return g.ProcessFiles(ctx, files)
}
