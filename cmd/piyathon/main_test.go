package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"piyathon/internal/diagfmt"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = execute(newRootCmd(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// chdir меняет рабочий каталог на время теста (замена t.Chdir из Go 1.24)
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

// изолируем тесты от piyathon.toml выше по дереву
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	return dir
}

func TestRunSuccess(t *testing.T) {
	dir := isolate(t)
	src := filepath.Join(dir, "ok.pi")
	writeFile(t, src, "นิยาม f(x):\n    คืนค่า x + 1\nถ้า f(1) != 2:\n    ยก ValueError(\"bad\")\n")

	for _, args := range [][]string{{"run", src}, {src}} {
		code, stdout, stderr := runCLI(t, args...)
		if code != 0 {
			t.Fatalf("%v: exit %d, stdout %q, stderr %q", args, code, stdout, stderr)
		}
	}
}

func TestRunMessages(t *testing.T) {
	dir := isolate(t)
	lexBad := filepath.Join(dir, "lex.pi")
	writeFile(t, lexBad, "x = 'abc\n")
	raises := filepath.Join(dir, "raise.pi")
	writeFile(t, raises, "ยก ValueError(\"boom\")\n")
	missing := filepath.Join(dir, "missing.pi")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"extension", []string{"run", "prog.py"}, "Error: The source file must have a .pi extension\n"},
		{"extension shorthand", []string{"prog.txt"}, "Error: The source file must have a .pi extension\n"},
		{"not found", []string{"run", missing}, "Error: Input file '" + missing + "' not found.\n"},
		{"lexical", []string{"--color", "off", "run", lexBad}, "Execution aborted due to errors in the Piyathon input file.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, _ := runCLI(t, tt.args...)
			if code != 1 {
				t.Fatalf("exit %d, want 1", code)
			}
			if stdout != tt.want {
				t.Fatalf("stdout %q, want %q", stdout, tt.want)
			}
		})
	}

	code, stdout, _ := runCLI(t, "run", raises)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.HasPrefix(stdout, "Error during execution: ") {
		t.Fatalf("stdout %q", stdout)
	}

	// исключение не в первом операторе тоже доходит до пользователя
	late := filepath.Join(dir, "late.pi")
	writeFile(t, late, "x = 1\ny = x + 1\nยก ValueError(\"late\")\n")
	code, stdout, _ = runCLI(t, "run", late)
	if code != 1 || !strings.Contains(stdout, "late") {
		t.Fatalf("exit %d, stdout %q", code, stdout)
	}
}

func TestRunLibDirs(t *testing.T) {
	dir := isolate(t)
	// не "lib": этот каталог относительно cwd gpython ищет сам
	lib := filepath.Join(dir, "bindings")
	writeFile(t, filepath.Join(lib, "helper.py"), "VALUE = 41\n")
	src := filepath.Join(dir, "main.pi")
	writeFile(t, src, "นำเข้า helper\nถ้า helper.VALUE != 41:\n    ยก ValueError(\"bad\")\n")

	if code, stdout, _ := runCLI(t, "run", src); code != 1 {
		t.Fatalf("without --lib the import should fail, exit %d, stdout %q", code, stdout)
	}
	if code, stdout, stderr := runCLI(t, "run", "--lib", lib, src); code != 0 {
		t.Fatalf("exit %d, stdout %q, stderr %q", code, stdout, stderr)
	}

	// тот же каталог из piyathon.toml
	writeFile(t, filepath.Join(dir, manifestName), "[run]\nlib = [\"bindings\"]\n")
	if code, stdout, stderr := runCLI(t, "run", src); code != 0 {
		t.Fatalf("manifest lib: exit %d, stdout %q, stderr %q", code, stdout, stderr)
	}
}

func TestConvertDirectory(t *testing.T) {
	dir := isolate(t)
	root := filepath.Join(dir, "src")
	writeFile(t, filepath.Join(root, "a.py"), "if x:\n    pass\n")
	writeFile(t, filepath.Join(root, "pkg", "b.py"), "for i in range(2):\n    print(i)\n")
	writeFile(t, filepath.Join(root, ".git", "c.py"), "pass\n")

	code, stdout, stderr := runCLI(t, "convert", root, "--ui", "off")
	if code != 0 {
		t.Fatalf("exit %d, stdout %q, stderr %q", code, stdout, stderr)
	}
	if !strings.Contains(stdout, "Python to Piyathon translation completed: 2 file(s), 0 failed.\n") {
		t.Fatalf("stdout %q", stdout)
	}
	if got := readFile(t, filepath.Join(root, "a.pi")); got != "ถ้า x:\n    ผ่าน\n" {
		t.Fatalf("a.pi = %q", got)
	}
	if got := readFile(t, filepath.Join(root, "pkg", "b.pi")); got != "สำหรับ i ใน ช่วง(2):\n    พิมพ์(i)\n" {
		t.Fatalf("b.pi = %q", got)
	}
	if _, err := os.Stat(filepath.Join(root, ".git", "c.pi")); !os.IsNotExist(err) {
		t.Fatalf("hidden directories must be skipped, stat err = %v", err)
	}

	// обратно в отдельный каталог
	out := filepath.Join(dir, "back")
	code, stdout, stderr = runCLI(t, "convert", root, "--to", "canonical", "--out", out, "--ui", "off", "--jobs", "1")
	if code != 0 {
		t.Fatalf("exit %d, stdout %q, stderr %q", code, stdout, stderr)
	}
	if got := readFile(t, filepath.Join(out, "pkg", "b.py")); got != "for i in range(2):\n    print(i)\n" {
		t.Fatalf("b.py = %q", got)
	}
}

func TestConvertFailures(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "good.pi"), "ผ่าน\n")
	writeFile(t, filepath.Join(dir, "bad.pi"), "x = 'abc\n")

	code, stdout, stderr := runCLI(t, "--color", "off", "convert", dir, "--to", "canonical", "--ui", "off")
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.Contains(stdout, "2 file(s), 1 failed.") {
		t.Fatalf("stdout %q", stdout)
	}
	if !strings.Contains(stderr, "bad.pi") || !strings.Contains(stderr, "ERROR") {
		t.Fatalf("stderr lacks the diagnostic: %q", stderr)
	}
	if got := readFile(t, filepath.Join(dir, "good.py")); got != "pass\n" {
		t.Fatalf("good.py = %q", got)
	}
}

func TestConvertShortDiagnostics(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "bad.pi"), "x = 'abc\n")

	code, _, stderr := runCLI(t, "convert", dir, "--to", "canonical", "--ui", "off", "--diagnostics", "short")
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.HasPrefix(stderr, "error LEX") || !strings.Contains(stderr, "bad.pi:1:") {
		t.Fatalf("stderr %q", stderr)
	}
}

func TestConvertMachineDiagnostics(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "bad.pi"), "x = 'abc\n")
	writeFile(t, filepath.Join(dir, "ok.pi"), "ผ่าน\n")

	code, _, stderr := runCLI(t, "convert", dir, "--to", "canonical", "--ui", "off", "--diagnostics", "json")
	if code != 1 {
		t.Fatalf("json: exit %d", code)
	}
	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal([]byte(stderr), &out); err != nil {
		t.Fatalf("json: %v\n%s", err, stderr)
	}
	if out.Count == 0 || out.Diagnostics[0].Code != "LEX1002" {
		t.Fatalf("json: %+v", out)
	}

	code, _, stderr = runCLI(t, "convert", dir, "--to", "canonical", "--ui", "off", "--diagnostics", "sarif")
	if code != 1 {
		t.Fatalf("sarif: exit %d", code)
	}
	var log struct {
		Version string `json:"version"`
		Runs    []struct {
			Results []struct {
				RuleID string `json:"ruleId"`
			} `json:"results"`
		} `json:"runs"`
	}
	if err := json.Unmarshal([]byte(stderr), &log); err != nil {
		t.Fatalf("sarif: %v\n%s", err, stderr)
	}
	if log.Version != "2.1.0" || len(log.Runs) != 1 || len(log.Runs[0].Results) == 0 || log.Runs[0].Results[0].RuleID != "LEX1002" {
		t.Fatalf("sarif: %+v", log)
	}
}

func TestConvertBadInput(t *testing.T) {
	dir := isolate(t)

	code, _, stderr := runCLI(t, "convert", dir, "--to", "klingon")
	if code != 1 || !strings.Contains(stderr, "invalid --to value") {
		t.Fatalf("exit %d, stderr %q", code, stderr)
	}
	code, _, stderr = runCLI(t, "convert", dir, "--ui", "sometimes")
	if code != 1 || !strings.Contains(stderr, "invalid --ui value") {
		t.Fatalf("exit %d, stderr %q", code, stderr)
	}
	missing := filepath.Join(dir, "nope")
	code, stdout, _ := runCLI(t, "convert", missing)
	if code != 1 || stdout != "Error: Input directory '"+missing+"' not found.\n" {
		t.Fatalf("exit %d, stdout %q", code, stdout)
	}
}

func TestConvertCache(t *testing.T) {
	dir := isolate(t)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	root := filepath.Join(dir, "src")
	writeFile(t, filepath.Join(root, "a.py"), "return True\n")

	if code, stdout, stderr := runCLI(t, "convert", root, "--ui", "off", "--cache"); code != 0 {
		t.Fatalf("exit %d, stdout %q, stderr %q", code, stdout, stderr)
	}
	code, stdout, _ := runCLI(t, "convert", root, "--ui", "off", "--cache")
	if code != 0 || !strings.Contains(stdout, "cached    ") {
		t.Fatalf("second run should hit the cache, exit %d, stdout %q", code, stdout)
	}
	code, stdout, _ = runCLI(t, "convert", root, "--ui", "off", "--cache", "--clear-cache")
	if code != 0 || strings.Contains(stdout, "cached    ") {
		t.Fatalf("cleared cache should miss, exit %d, stdout %q", code, stdout)
	}
	if got := readFile(t, filepath.Join(root, "a.pi")); got != "คืนค่า จริง\n" {
		t.Fatalf("a.pi = %q", got)
	}
}

func TestConvertTrace(t *testing.T) {
	dir := isolate(t)
	root := filepath.Join(dir, "src")
	writeFile(t, filepath.Join(root, "a.py"), "pass\n")
	traceFile := filepath.Join(dir, "trace.ndjson")

	code, stdout, stderr := runCLI(t, "--trace", traceFile, "--trace-level", "file", "--timings", "convert", root, "--ui", "off")
	if code != 0 {
		t.Fatalf("exit %d, stdout %q, stderr %q", code, stdout, stderr)
	}
	if !strings.Contains(stderr, "timings:") || !strings.Contains(stderr, "a.py") {
		t.Fatalf("--timings output lacks the per-file phase: %q", stderr)
	}
	data := readFile(t, traceFile)
	if !strings.Contains(data, "convert-dir") || !strings.Contains(data, `"scope":"file"`) {
		t.Fatalf("trace lacks convert-dir or file spans:\n%s", data)
	}
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		if !json.Valid([]byte(line)) {
			t.Fatalf("not ndjson: %q", line)
		}
	}
}

func TestConvertProfiles(t *testing.T) {
	dir := isolate(t)
	root := filepath.Join(dir, "src")
	writeFile(t, filepath.Join(root, "a.py"), "x = 1\n")
	cpu := filepath.Join(dir, "cpu.pprof")
	mem := filepath.Join(dir, "mem.pprof")

	code, stdout, stderr := runCLI(t, "--cpu-profile", cpu, "--mem-profile", mem, "convert", root, "--ui", "off")
	if code != 0 {
		t.Fatalf("exit %d, stdout %q, stderr %q", code, stdout, stderr)
	}
	for _, path := range []string{cpu, mem} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("profile not written: %v", err)
		}
	}
}

func TestTokenizeFormats(t *testing.T) {
	dir := isolate(t)
	src := filepath.Join(dir, "a.py")
	writeFile(t, src, "x = 1  # note\n")

	code, stdout, _ := runCLI(t, "tokenize", src)
	if code != 0 || !strings.Contains(stdout, "COMMENT") || !strings.Contains(stdout, "ENDMARKER") {
		t.Fatalf("pretty: exit %d, stdout %q", code, stdout)
	}

	code, stdout, _ = runCLI(t, "tokenize", "--format", "json", src)
	if code != 0 {
		t.Fatalf("json: exit %d", code)
	}
	var toks []diagfmt.TokenOutput
	if err := json.Unmarshal([]byte(stdout), &toks); err != nil {
		t.Fatalf("json output: %v", err)
	}
	if len(toks) == 0 || toks[0].Kind != "NAME" || toks[0].Text != "x" {
		t.Fatalf("unexpected tokens %+v", toks)
	}

	code, stdout, _ = runCLI(t, "tokenize", "--format", "msgpack", src)
	if code != 0 {
		t.Fatalf("msgpack: exit %d", code)
	}
	decoded, err := diagfmt.DecodeTokensMsgpack(strings.NewReader(stdout))
	if err != nil {
		t.Fatalf("msgpack decode: %v", err)
	}
	if len(decoded) != len(toks) {
		t.Fatalf("msgpack has %d tokens, json %d", len(decoded), len(toks))
	}

	if code, _, stderr := runCLI(t, "tokenize", "--format", "xml", src); code != 1 || !strings.Contains(stderr, "unknown format") {
		t.Fatalf("xml: exit %d, stderr %q", code, stderr)
	}
}

func TestTokenizeReportsErrors(t *testing.T) {
	dir := isolate(t)
	src := filepath.Join(dir, "bad.pi")
	writeFile(t, src, "x = 'abc\n")

	code, stdout, stderr := runCLI(t, "--color", "off", "--timings", "tokenize", src)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.Contains(stderr, "ERROR") || !strings.Contains(stderr, "timings (tokenize)") {
		t.Fatalf("stderr %q", stderr)
	}
	if !strings.Contains(stdout, "ENDMARKER") {
		t.Fatalf("tokens should still be printed: %q", stdout)
	}
}

type exportedDoc struct {
	PiToPy map[string]string `json:"PI_TO_PY" yaml:"PI_TO_PY" toml:"PI_TO_PY"`
	PyToPi map[string]string `json:"PY_TO_PI" yaml:"PY_TO_PI" toml:"PY_TO_PI"`
}

func TestMappingsFormats(t *testing.T) {
	isolate(t)
	decoders := map[string]func([]byte, *exportedDoc) error{
		"json": func(b []byte, d *exportedDoc) error { return json.Unmarshal(b, d) },
		"yaml": func(b []byte, d *exportedDoc) error { return yaml.Unmarshal(b, d) },
		"toml": func(b []byte, d *exportedDoc) error { _, err := toml.Decode(string(b), d); return err },
	}
	for format, decode := range decoders {
		code, stdout, stderr := runCLI(t, "mappings", "--format", format)
		if code != 0 {
			t.Fatalf("%s: exit %d, stderr %q", format, code, stderr)
		}
		var doc exportedDoc
		if err := decode([]byte(stdout), &doc); err != nil {
			t.Fatalf("%s: decode: %v", format, err)
		}
		if doc.PyToPi["if"] != "ถ้า" || doc.PiToPy["ถ้า"] != "if" {
			t.Fatalf("%s: unexpected mapping %v", format, doc.PyToPi["if"])
		}
	}
}

func TestManifestTable(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "tables", "de.toml"), `name = "de"

[keywords]
if = "wenn"
`)
	writeFile(t, filepath.Join(dir, manifestName), "[mapping]\ntable = \"tables/de.toml\"\n")

	sub := filepath.Join(dir, "deep", "er")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	chdir(t, sub)

	code, stdout, stderr := runCLI(t, "mappings")
	if code != 0 {
		t.Fatalf("exit %d, stderr %q", code, stderr)
	}
	var doc exportedDoc
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.PyToPi) != 1 || doc.PyToPi["if"] != "wenn" {
		t.Fatalf("manifest table not used: %v", doc.PyToPi)
	}
}

func TestVersion(t *testing.T) {
	isolate(t)
	code, stdout, _ := runCLI(t, "--color", "off", "version", "--full")
	if code != 0 || !strings.HasPrefix(stdout, "Piyathon ") || !strings.Contains(stdout, "commit: ") {
		t.Fatalf("exit %d, stdout %q", code, stdout)
	}

	code, stdout, _ = runCLI(t, "version", "--format", "json")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Tool != "piyathon" || payload.Table != "thai" || payload.Entries == 0 || payload.GitCommit != "" {
		t.Fatalf("payload %+v", payload)
	}
}
