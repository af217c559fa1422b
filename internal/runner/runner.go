// Package runner translates a local source to canonical syntax in memory and
// executes it with the embedded gpython interpreter.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-python/gpython/py"
	_ "github.com/go-python/gpython/stdlib" // регистрирует модули и py.NewContext

	"piyathon/internal/driver"
	"piyathon/internal/keywords"
	"piyathon/internal/source"
	"piyathon/internal/trace"
	"piyathon/internal/translate"
)

const bundledLibName = "Lib"

// ErrExecution is wrapped by ExecError.
var ErrExecution = errors.New("execution failed")

// ExecError wraps an exception raised by the executed program.
type ExecError struct {
	Path string
	Err  error
}

func (e *ExecError) Error() string { return e.Err.Error() }

func (e *ExecError) Unwrap() []error { return []error{ErrExecution, e.Err} }

// Option configures a Runner.
type Option func(*Runner)

// WithLibDirs prepends dirs to sys.path, in order.
func WithLibDirs(dirs ...string) Option {
	return func(r *Runner) { r.libDirs = append(r.libDirs, dirs...) }
}

// WithArgs sets sys.argv[1:].
func WithArgs(args ...string) Option {
	return func(r *Runner) { r.args = append(r.args, args...) }
}

// Runner executes local sources.
type Runner struct {
	tr      *translate.Translator
	libDirs []string
	args    []string
}

func New(tr *translate.Translator, opts ...Option) *Runner {
	r := &Runner{tr: tr}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Result carries what was executed, for diagnostics of failed runs.
type Result struct {
	FileSet *source.FileSet
	File    *source.File
	Python  string
}

// RunFile checks the extension of path, reads it, translates it and runs it
// as __main__. Translation failures are returned as the translate package
// reports them; exceptions come back as *ExecError.
func (r *Runner) RunFile(ctx context.Context, path string) (*Result, error) {
	if err := driver.CheckRunnable(path); err != nil {
		return nil, err
	}
	res := &Result{FileSet: source.NewFileSet()}
	file, err := driver.ReadSource(res.FileSet, path)
	if err != nil {
		return res, err
	}
	res.File = file

	res.Python, err = r.tr.TranslateFile(ctx, keywords.ToCanonical, file, nil)
	if err != nil {
		return res, err
	}
	return res, r.exec(ctx, path, res.Python)
}

// RunSource translates local src and executes it. name is used as the
// source description and sys.argv[0].
func (r *Runner) RunSource(ctx context.Context, name, src string) error {
	python, err := r.tr.TranslateContext(ctx, keywords.ToCanonical, strings.TrimPrefix(src, "\ufeff"))
	if err != nil {
		return err
	}
	return r.exec(ctx, name, python)
}

func (r *Runner) exec(ctx context.Context, name, python string) (err error) {
	_, span := trace.StartSpan(ctx, trace.ScopeCommand, "execute", name)
	defer func() { span.Finish(err, "") }()

	opts := py.DefaultContextOpts()
	opts.SysArgs = append([]string{name}, r.args...)
	opts.SysPaths = append(append([]string{}, r.libDirs...), opts.SysPaths...)
	pyCtx := py.NewContext(opts)
	defer pyCtx.Close() //nolint:errcheck

	defer func() {
		// паника интерпретатора не должна уронить процесс
		if rec := recover(); rec != nil {
			err = &ExecError{Path: name, Err: fmt.Errorf("interpreter panic: %v", rec)}
		}
	}()

	// py.RunSrc компилирует в SingleMode и выполняет только первый оператор
	code, compileErr := py.Compile(python+"\n", name, py.ExecMode, 0, true)
	if compileErr != nil {
		return &ExecError{Path: name, Err: compileErr}
	}
	if _, runErr := py.RunCode(pyCtx, code, name, nil); runErr != nil {
		return &ExecError{Path: name, Err: runErr}
	}
	return nil
}

// BundledLibDir returns the Lib directory next to the running executable,
// where the binding modules are installed, if it exists.
func BundledLibDir() (string, bool) {
	exe, err := os.Executable()
	if err != nil {
		return "", false
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return libDirNear(exe)
}

func libDirNear(exe string) (string, bool) {
	dir := filepath.Join(filepath.Dir(exe), bundledLibName)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", false
	}
	return dir, true
}
