package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"piyathon/internal/keywords"
	"piyathon/internal/observ"
	"piyathon/internal/source"
	"piyathon/internal/trace"
	"piyathon/internal/translate"
)

// DirOptions tunes ConvertDir.
type DirOptions struct {
	Direction keywords.Direction
	OutDir    string // пусто: рядом с исходниками
	Jobs      int
	Progress  ProgressSink
	Cache     *DiskCache
	Timer     *observ.Timer // одна фаза на файл
}

// DirFileResult содержит результат перевода одного файла
type DirFileResult struct {
	Source string
	Dest   string
	File   *source.File // nil, если файл не загрузился
	Cached bool
	Err    error
}

// listSources возвращает отсортированный список файлов с расширением ext
func listSources(root, ext string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == ext {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ListSources returns the files ConvertDir would pick up for dir, in the
// order it processes them.
func ListSources(root string, dir keywords.Direction) ([]string, error) {
	return listSources(root, SourceExt(dir))
}

func destFor(root, outDir, path string, dir keywords.Direction) (string, error) {
	if outDir == "" {
		return SwapExt(path, dir), nil
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	return SwapExt(filepath.Join(outDir, rel), dir), nil
}

// ConvertDir translates every source file under root in opts.Direction in
// parallel. Per-file failures are reported in the results; the returned
// error is set only when the tree cannot be walked or ctx is cancelled.
func ConvertDir(ctx context.Context, tr *translate.Translator, root string, opts DirOptions) (*source.FileSet, []DirFileResult, error) {
	files, err := ListSources(root, opts.Direction)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	ctx, span := trace.StartSpan(ctx, trace.ScopeCommand, "convert-dir", "")
	span.WithExtra("files", fmt.Sprint(len(files)))
	defer span.End("")

	// FileSet не потокобезопасен, загружаем заранее
	results := make([]DirFileResult, len(files))
	for i, path := range files {
		results[i].Source = path
		results[i].Dest, results[i].Err = destFor(root, opts.OutDir, path, opts.Direction)
		if results[i].Err != nil {
			continue
		}
		results[i].File, results[i].Err = ReadSource(fileSet, path)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	progress := opts.Progress
	if progress == nil {
		progress = func(Event) {}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i := range results {
		i := i
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res := &results[i]
			started := time.Now()
			progress(Event{Kind: EventStart, Index: i, Total: len(results), Path: res.Source})
			if res.Err == nil {
				res.Err = convertOne(gctx, tr, opts, res)
			}

			ev := Event{Kind: EventDone, Index: i, Total: len(results), Path: res.Source, Cached: res.Cached, Elapsed: time.Since(started)}
			if res.Err != nil {
				ev.Kind = EventFailed
				ev.Err = res.Err
			}
			progress(ev)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// convertOne работает только со своим слотом results[i], мьютекс не нужен
func convertOne(ctx context.Context, tr *translate.Translator, opts DirOptions, res *DirFileResult) (err error) {
	ctx, span := trace.StartSpan(ctx, trace.ScopeFile, "file:"+res.Source, res.Source)
	done := opts.Timer.Begin("file:" + res.Source)
	defer func() {
		note := ""
		switch {
		case err != nil:
			note = "failed"
		case res.Cached:
			note = "cached"
		}
		done(note)
		span.Finish(err, note)
	}()

	out, cached, err := translateFile(ctx, tr, opts.Direction, res.File, nil, opts.Cache)
	if err != nil {
		return err
	}
	res.Cached = cached
	if err := os.MkdirAll(filepath.Dir(res.Dest), 0o755); err != nil {
		return &FileAccessError{Path: res.Dest, Op: OpWrite, Err: err}
	}
	return WriteOutput(res.Dest, out, res.File.HadBOM())
}
