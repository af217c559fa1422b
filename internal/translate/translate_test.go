package translate_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"piyathon/internal/diag"
	"piyathon/internal/keywords"
	"piyathon/internal/observ"
	"piyathon/internal/trace"
	"piyathon/internal/translate"
)

func newTranslator(opts ...translate.Option) *translate.Translator {
	return translate.New(keywords.Thai(), opts...)
}

func mustLocal(t *testing.T, tr *translate.Translator, src string) string {
	t.Helper()
	out, err := tr.ToLocal(src)
	if err != nil {
		t.Fatalf("ToLocal(%q): %v", src, err)
	}
	return out
}

func mustCanonical(t *testing.T, tr *translate.Translator, src string) string {
	t.Helper()
	out, err := tr.ToCanonical(src)
	if err != nil {
		t.Fatalf("ToCanonical(%q): %v", src, err)
	}
	return out
}

func TestKeywordTranslation(t *testing.T) {
	tr := newTranslator()
	if got := mustCanonical(t, tr, "ถ้า x > 0:\n    คืนค่า True"); got != "if x > 0:\n    return True" {
		t.Fatalf("got %q", got)
	}
	local := mustLocal(t, tr, "if x > 0:\n    return True")
	if local != "ถ้า x > 0:\n    คืนค่า จริง" {
		t.Fatalf("got %q", local)
	}
	if back := mustCanonical(t, tr, local); back != "if x > 0:\n    return True" {
		t.Fatalf("round trip got %q", back)
	}
}

func TestFromImportTranslation(t *testing.T) {
	tr := newTranslator()
	const (
		pi = "จาก math นำเข้า sqrt, sin, cos, tan"
		py = "from math import sqrt, sin, cos, tan"
	)
	if got := mustCanonical(t, tr, pi); got != py {
		t.Fatalf("got %q", got)
	}
	if got := mustLocal(t, tr, py); got != pi {
		t.Fatalf("got %q", got)
	}
}

func TestFormatPreservation(t *testing.T) {
	pi := `
# นี่คือคอมเมนต์
จาก math นำเข้า sqrt

นิยาม test_func():
    x = 10  # นี่คือตัวแปร x

    ถ้า x > 5:
        คืนค่า True
    อื่น:
        คืนค่า False
`
	want := `
# นี่คือคอมเมนต์
from math import sqrt

def test_func():
    x = 10  # นี่คือตัวแปร x

    if x > 5:
        return True
    else:
        return False
`
	if got := mustCanonical(t, newTranslator(), pi); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestCommentAndLayoutPreservation(t *testing.T) {
	tr := newTranslator()
	src := "# comment\nx = 1  # trailing"
	if got := mustLocal(t, tr, src); got != src {
		t.Fatalf("got %q", got)
	}
	src = "def f():\n\tpass   # if else\n\n\n# for in\n"
	local := mustLocal(t, tr, src)
	if local != "นิยาม f():\n\tผ่าน   # if else\n\n\n# for in\n" {
		t.Fatalf("got %q", local)
	}
}

func TestRoundTrip(t *testing.T) {
	tr := newTranslator()
	sources := []string{
		"สำหรับ i ใน ช่วง(5):\n    พิมพ์(i)",
		"นิยาม ภาษาไทย():\n    คืนค่า 'This is a function named in Thai'",
		"\nนิยาม fibonacci(n):\n    ถ้า n <= 1:\n        คืนค่า n\n    อื่น:\n        คืนค่า fibonacci(n-1) + fibonacci(n-2)\n\nสำหรับ i ใน ช่วง(10):\n    พิมพ์(f\"fibonacci({i}) = {fibonacci(i)}\")\n",
		"ชั้น A:\n    นิยาม __เริ่มต้น__(self):\n        ผ่าน\n",
	}
	for _, pi := range sources {
		py := mustCanonical(t, tr, pi)
		if back := mustLocal(t, tr, py); back != pi {
			t.Errorf("local round trip\n got: %q\nwant: %q", back, pi)
		}
	}

	canon := []string{
		"import os\n\nclass Foo(object):\n    def bar(self, x):\n        while x:\n            x -= 1\n        return len(str(x))\n",
		"x = [a for a in b if a not in c]\r\ny = lambda: None\r\n",
		"async def main():\n    await f()\n    with open(p) as fh:\n        yield from fh\n",
		"try:\n    pass\nexcept ValueError as e:\n    raise\nfinally:\n    del e\n",
		"x = 1 + \\\n    2\n",
		"match cmd:\n    case 1:\n        pass\n",
		"s = f'{x!r:>{width}}' rf'\\d{{2}}'\n",
	}
	for _, py := range canon {
		pi := mustLocal(t, tr, py)
		if back := mustCanonical(t, tr, pi); back != py {
			t.Errorf("canonical round trip\n got: %q\nwant: %q", back, py)
		}
	}
}

func TestNestedStructures(t *testing.T) {
	pi := `
นิยาม nested_func(x):
    ถ้า x > 0:
        สำหรับ i ใน ช่วง(x):
            ถ้า i % 2 == 0:
                คืนค่า i
    คืนค่า None
`
	want := `
def nested_func(x):
    if x > 0:
        for i in range(x):
            if i % 2 == 0:
                return i
    return None
`
	if got := mustCanonical(t, newTranslator(), pi); got != want {
		t.Fatalf("got:\n%s", got)
	}
}

func TestIfElifElse(t *testing.T) {
	tr := newTranslator()
	pi := `
ถ้า x < 0:
    พิมพ์("ลบ")
อื่นถ้า x == 0:
    พิมพ์("ศูนย์")
อื่น:
    พิมพ์("บวก")
`
	py := `
if x < 0:
    print("ลบ")
elif x == 0:
    print("ศูนย์")
else:
    print("บวก")
`
	if got := mustCanonical(t, tr, pi); got != py {
		t.Fatalf("to canonical:\n%s", got)
	}
	if got := mustLocal(t, tr, py); got != pi {
		t.Fatalf("to local:\n%s", got)
	}
}

func TestElseAndElifStayDistinct(t *testing.T) {
	tr := newTranslator()
	plain := mustLocal(t, tr, "if x: pass\nelse: pass\n")
	chained := mustLocal(t, tr, "if x: pass\nelif y: pass\n")
	if plain == chained {
		t.Fatal("else and elif must translate differently")
	}
	if plain != "ถ้า x: ผ่าน\nอื่น: ผ่าน\n" || chained != "ถ้า x: ผ่าน\nอื่นถ้า y: ผ่าน\n" {
		t.Fatalf("got %q and %q", plain, chained)
	}
	if mustCanonical(t, tr, plain) != "if x: pass\nelse: pass\n" {
		t.Fatal("else did not round trip")
	}
	if mustCanonical(t, tr, chained) != "if x: pass\nelif y: pass\n" {
		t.Fatal("elif did not round trip")
	}
	// два слова в локальном тексте дают elif
	if got := mustCanonical(t, tr, "อื่น ถ้า y: ผ่าน\n"); got != "elif y: pass\n" {
		t.Fatalf("got %q", got)
	}
}

func TestForInBoundingKeepsIdentifiers(t *testing.T) {
	tr := newTranslator()
	py := "for index in indices:\n    print(index, inner)\n"
	pi := mustLocal(t, tr, py)
	if pi != "สำหรับ index ใน indices:\n    พิมพ์(index, inner)\n" {
		t.Fatalf("got %q", pi)
	}
	if back := mustCanonical(t, tr, pi); back != py {
		t.Fatalf("got %q", back)
	}

	pi = "\nสำหรับ ตัว ใน [1, 2, 3, 4, 5]:\n    พิมพ์(f\"ค่าปัจจุบัน: {ตัว}\")\n"
	py = "\nfor ตัว in [1, 2, 3, 4, 5]:\n    print(f\"ค่าปัจจุบัน: {ตัว}\")\n"
	if got := mustCanonical(t, tr, pi); got != py {
		t.Fatalf("got %q", got)
	}
	if got := mustLocal(t, tr, py); got != pi {
		t.Fatalf("got %q", got)
	}
}

func TestIdentifierPreservation(t *testing.T) {
	tr := newTranslator()
	src := "ผลลัพธ์ = 1\nπ = 3.14\n変数 = ผลลัพธ์ + π\nprint_ = if_\n"
	if got := mustLocal(t, tr, src); got != src {
		t.Fatalf("got %q", got)
	}
	if got := mustCanonical(t, tr, src); got != src {
		t.Fatalf("got %q", got)
	}

	// полноширинное написание не ключ таблицы, хотя NFKC свёл бы его к print
	wide := "ｐｒｉｎｔ(1)\nｉｆ_ = 2\n"
	local := mustLocal(t, tr, wide)
	if local != wide {
		t.Fatalf("got %q", local)
	}
	if back := mustCanonical(t, tr, local); back != wide {
		t.Fatalf("round trip got %q", back)
	}
}

func TestAdjacentStringLiterals(t *testing.T) {
	tr := newTranslator()
	src := "s = 'a''b'\nt = f'{x}''y'\n"
	norm, err := tr.Normalize(src)
	if err != nil {
		t.Fatal(err)
	}
	if norm != "s = 'a' 'b'\nt = f'{x}' 'y'\n" {
		t.Fatalf("normalize got %q", norm)
	}
	back := mustCanonical(t, tr, mustLocal(t, tr, src))
	if back != norm {
		t.Fatalf("round trip got %q, want %q", back, norm)
	}
	if err := translate.CheckSyntax("s = 'a' 'b'\n"); err != nil {
		t.Fatalf("separated literals must stay valid: %v", err)
	}
}

func TestNormalizeKeepsKeywords(t *testing.T) {
	tr := newTranslator()
	src := "if x:\n    return 'a''b'\n"
	got, err := tr.Normalize(src)
	if err != nil {
		t.Fatal(err)
	}
	if got != "if x:\n    return 'a' 'b'\n" {
		t.Fatalf("got %q", got)
	}
}

func TestByteOrderMark(t *testing.T) {
	tr := newTranslator()
	src := "\ufeffx = 1\nprint(x)\n"
	local := mustLocal(t, tr, src)
	if local != "\ufeffx = 1\nพิมพ์(x)\n" {
		t.Fatalf("got %q", local)
	}
	if back := mustCanonical(t, tr, local); back != src {
		t.Fatalf("round trip got %q", back)
	}
	if norm, err := tr.Normalize(src); err != nil || norm != src {
		t.Fatalf("Normalize: %q, %v", norm, err)
	}
}

func TestLexicalError(t *testing.T) {
	tr := newTranslator()
	for _, dir := range []keywords.Direction{keywords.ToLocal, keywords.ToCanonical} {
		out, err := tr.Translate(dir, "x = 'abc\n")
		if out != "" {
			t.Fatalf("no partial output expected, got %q", out)
		}
		if !errors.Is(err, translate.ErrLexical) {
			t.Fatalf("expected ErrLexical, got %v", err)
		}
		var lexErr *translate.LexicalError
		if !errors.As(err, &lexErr) {
			t.Fatalf("expected *LexicalError, got %T", err)
		}
		if lexErr.Diagnostic.Code != diag.LexUnterminatedString || lexErr.Diagnostic.Primary.Start.Line != 1 {
			t.Fatalf("unexpected diagnostic %+v", lexErr.Diagnostic)
		}
		if len(lexErr.All) == 0 || lexErr.File == nil {
			t.Fatal("diagnostics and file must be attached")
		}
	}
}

func TestIndentationError(t *testing.T) {
	_, err := newTranslator().ToCanonical("ถ้า x:\n        y\n    z\n")
	if !errors.Is(err, translate.ErrLexical) {
		t.Fatalf("expected ErrLexical, got %v", err)
	}
}

func TestSyntaxCheck(t *testing.T) {
	checked := newTranslator(translate.WithSyntaxCheck(true))
	_, err := checked.ToLocal("def f(:\n    pass\n")
	if !errors.Is(err, translate.ErrSyntax) {
		t.Fatalf("expected ErrSyntax, got %v", err)
	}
	var synErr *translate.SyntaxValidationError
	if !errors.As(err, &synErr) || synErr.Err == nil {
		t.Fatalf("expected *SyntaxValidationError, got %T", err)
	}
	if _, err := checked.ToLocal("def f(x):\n    return x + 1\n"); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	// без проверки синтаксическая ошибка проходит, а незакрытую скобку ловит лексер
	unchecked := newTranslator()
	if got, err := unchecked.ToLocal("x = = 1\n"); err != nil || got != "x = = 1\n" {
		t.Fatalf("unchecked translation: %q, %v", got, err)
	}
	if _, err := unchecked.ToLocal("def f(:\n    pass\n"); !errors.Is(err, translate.ErrLexical) {
		t.Fatalf("expected ErrLexical, got %v", err)
	}
}

func TestCheckSyntax(t *testing.T) {
	if err := translate.CheckSyntax("x = 1\nprint(x)\n"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := translate.CheckSyntax("x = = 1\n"); !errors.Is(err, translate.ErrSyntax) {
		t.Fatalf("expected ErrSyntax, got %v", err)
	}
}

func TestFixtureTable(t *testing.T) {
	tbl, err := keywords.New("de", map[keywords.Class]map[string]string{
		keywords.ClassKeyword: {"if": "wenn", "else": "sonst", "elif": "sonstwenn", "for": "für", "in": "in_"},
	}, []keywords.Combined{{Parts: [2]string{"else", "if"}, Keyword: "elif"}})
	if err != nil {
		t.Fatal(err)
	}
	tr := translate.New(tbl)
	py := "if a: pass\nelif b: pass\nelse: pass\nfor x in y: pass\n"
	want := "wenn a: pass\nsonstwenn b: pass\nsonst: pass\nfür x in_ y: pass\n"
	if got := mustLocal(t, tr, py); got != want {
		t.Fatalf("got %q", got)
	}
	if got := mustCanonical(t, tr, want); got != py {
		t.Fatalf("got %q", got)
	}
	if tr.Table() != tbl {
		t.Fatal("Table must return the injected table")
	}
}

func TestTranslateTimed(t *testing.T) {
	timer := observ.NewTimer()
	if _, err := newTranslator().TranslateTimed(keywords.ToLocal, "x = 1\n", timer); err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, p := range timer.Report().Phases {
		names = append(names, p.Name)
	}
	if got := strings.Join(names, ","); got != "lex,rewrite,reassemble" {
		t.Fatalf("phases = %s", got)
	}
}

func TestTranslateContextEmitsSpans(t *testing.T) {
	var buf bytes.Buffer
	ctx := trace.WithTracer(context.Background(), trace.NewWriter(&buf, trace.LevelDebug, trace.FormatNDJSON))
	if _, err := newTranslator().TranslateContext(ctx, keywords.ToCanonical, "พิมพ์(1)\n"); err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var ev struct{ Kind, Name string }
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			t.Fatalf("bad trace line %q: %v", line, err)
		}
		if ev.Kind == "end" {
			seen[ev.Name] = true
		}
	}
	for _, name := range []string{"lex", "rewrite", "reassemble"} {
		if !seen[name] {
			t.Errorf("missing span %q", name)
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	tr := newTranslator()
	const src = "for i in range(3):\n    print(i)\n"
	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pi, err := tr.ToLocal(src)
			if err == nil {
				var back string
				back, err = tr.ToCanonical(pi)
				if err == nil && back != src {
					err = errors.New("round trip mismatch: " + back)
				}
			}
			errs[i] = err
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			t.Fatal(err)
		}
	}
}
