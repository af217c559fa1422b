package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

var inlineSeeds = []string{
	"",
	"pass\n",
	"x = 1",
	"if a:\n    b\nelif c:\n    d\nelse:\n    e\n",
	"else if x: pass\n",
	"for i, (k, v) in enumerate(d.items()):\n    print(k in v)\n",
	"[x for x in range(3) if x in y]\n",
	"s = 'a'  'b' f'{x!r:>{w}}' \"c\"\n",
	"def f(*args, **kw) -> None:\n\treturn None\n",
	"x = (1,\n     2)  # comment\n",
	"y = 1 + \\\n    2\n",
	"'''doc\nstring'''\n",
	"ถ้า จริง:\n    พิมพ์('สวัสดี')\n",
	"\ufeffimport os\r\nprint(os.sep)\r\n",
	"x = 'unterminated\n",
	"    bad indent\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.py и *.pi файлы
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if ext := filepath.Ext(path); ext != ".py" && ext != ".pi" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
