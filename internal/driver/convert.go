package driver

import (
	"context"

	"piyathon/internal/keywords"
	"piyathon/internal/observ"
	"piyathon/internal/source"
	"piyathon/internal/trace"
	"piyathon/internal/translate"
)

// FileOptions tunes ConvertFile.
type FileOptions struct {
	Timer *observ.Timer
	Cache *DiskCache
}

// FileResult describes one converted file. FileSet and File are set as soon
// as the source was read, so callers can render diagnostics of a failed
// translation.
type FileResult struct {
	Source    string
	Dest      string
	Direction keywords.Direction
	FileSet   *source.FileSet
	File      *source.File
	Output    string
	Cached    bool
}

// ConvertFile translates src into dst. The direction follows from the file
// extensions. Nothing is written unless the translation succeeded.
func ConvertFile(ctx context.Context, tr *translate.Translator, src, dst string, opts FileOptions) (res *FileResult, err error) {
	dir, err := DirectionFor(src, dst)
	if err != nil {
		return nil, err
	}

	res = &FileResult{Source: src, Dest: dst, Direction: dir, FileSet: source.NewFileSet()}
	ctx, span := trace.StartSpan(ctx, trace.ScopeCommand, "convert", src)
	defer func() { span.Finish(err, "") }()

	res.File, err = ReadSource(res.FileSet, src)
	if err != nil {
		return res, err
	}

	res.Output, res.Cached, err = translateFile(ctx, tr, dir, res.File, opts.Timer, opts.Cache)
	if err != nil {
		return res, err
	}

	if err = WriteOutput(dst, res.Output, res.File.HadBOM()); err != nil {
		return res, err
	}
	return res, nil
}

// translateFile consults cache before running the translator and stores
// successful results.
func translateFile(ctx context.Context, tr *translate.Translator, dir keywords.Direction, file *source.File, timer *observ.Timer, cache *DiskCache) (string, bool, error) {
	var key Digest
	if cache != nil {
		key = CacheKey(tr, dir, file.Content)
		var hit CachePayload
		if ok, err := cache.Get(key, &hit); err == nil && ok {
			trace.PointContext(ctx, trace.ScopeFile, "cache-hit", file.Path)
			return hit.Output, true, nil
		}
	}

	out, err := tr.TranslateFile(ctx, dir, file, timer)
	if err != nil {
		return "", false, err
	}

	if cache != nil {
		// кэш вспомогательный, ошибка записи не ломает перевод
		_ = cache.Put(key, &CachePayload{ //nolint:errcheck
			Table:     tr.Table().Name(),
			Direction: dir.String(),
			Output:    out,
		})
	}
	return out, false, nil
}
