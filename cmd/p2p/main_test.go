package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runP2P(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
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

func TestUsageErrors(t *testing.T) {
	for _, args := range [][]string{nil, {"only.py"}, {"a.py", "b.pi", "c.pi"}} {
		code, stdout, stderr := runP2P(t, args...)
		if code != exitUsage {
			t.Errorf("args %v: exit %d, want %d", args, code, exitUsage)
		}
		if stdout != "" {
			t.Errorf("args %v: unexpected stdout %q", args, stdout)
		}
		if !strings.Contains(stderr, "usage: p2p") {
			t.Errorf("args %v: stderr lacks usage: %q", args, stderr)
		}
	}
}

func TestUnknownFlag(t *testing.T) {
	if code, _, _ := runP2P(t, "--bogus", "a.py", "b.pi"); code != exitUsage {
		t.Fatalf("exit %d, want %d", code, exitUsage)
	}
}

func TestExtensionErrors(t *testing.T) {
	tests := []struct {
		src, dst string
		want     string
	}{
		{"a.py", "b.py", "Error: Source and destination files must have different extensions (.py or .pi)\n"},
		{"a.pi", "b.pi", "Error: Source and destination files must have different extensions (.py or .pi)\n"},
		{"a.py", "b.txt", "Error: Both files must have either .py or .pi extensions\n"},
		{"a.txt", "b.pi", "Error: Both files must have either .py or .pi extensions\n"},
		// регистр имеет значение
		{"a.PY", "b.pi", "Error: Both files must have either .py or .pi extensions\n"},
	}
	for _, tt := range tests {
		code, stdout, _ := runP2P(t, tt.src, tt.dst)
		if code != exitFail {
			t.Errorf("%s -> %s: exit %d, want 1", tt.src, tt.dst, code)
		}
		if stdout != tt.want {
			t.Errorf("%s -> %s: stdout %q, want %q", tt.src, tt.dst, stdout, tt.want)
		}
	}
}

func TestMissingInput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "missing.py")
	code, stdout, _ := runP2P(t, src, filepath.Join(dir, "out.pi"))
	if code != exitFail {
		t.Fatalf("exit %d, want 1", code)
	}
	want := "Error: Input file '" + src + "' not found.\n"
	if stdout != want {
		t.Fatalf("stdout %q, want %q", stdout, want)
	}
}

func TestUnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.py")
	writeFile(t, src, "x = 1\n")
	dst := filepath.Join(dir, "no-such-dir", "out.pi")

	code, stdout, _ := runP2P(t, src, dst)
	if code != exitFail {
		t.Fatalf("exit %d, want 1", code)
	}
	want := "Error: Unable to write to output file '" + dst + "'.\n"
	if stdout != want {
		t.Fatalf("stdout %q, want %q", stdout, want)
	}
}

func TestPythonToPiyathon(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "hello.py")
	dst := filepath.Join(dir, "hello.pi")
	writeFile(t, src, "if x:\n    print(len(items))\nelse:\n    pass\n")

	code, stdout, _ := runP2P(t, src, dst)
	if code != exitOK {
		t.Fatalf("exit %d, stdout %q", code, stdout)
	}
	wantOut := "Python to Piyathon translation completed.\n" +
		"Translated code has been written to '" + dst + "'.\n"
	if stdout != wantOut {
		t.Fatalf("stdout %q, want %q", stdout, wantOut)
	}
	want := "ถ้า x:\n    พิมพ์(ความยาว(items))\nอื่น:\n    ผ่าน\n"
	if got := readFile(t, dst); got != want {
		t.Fatalf("output %q, want %q", got, want)
	}
}

func TestPiyathonToPython(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "loop.pi")
	dst := filepath.Join(dir, "loop.py")
	writeFile(t, src, "สำหรับ i ใน ช่วง(3):\n    พิมพ์(i)\n")

	code, stdout, _ := runP2P(t, src, dst)
	if code != exitOK {
		t.Fatalf("exit %d, stdout %q", code, stdout)
	}
	if !strings.HasPrefix(stdout, "Piyathon to Python translation completed.\n") {
		t.Fatalf("stdout %q", stdout)
	}
	if got, want := readFile(t, dst), "for i in range(3):\n    print(i)\n"; got != want {
		t.Fatalf("output %q, want %q", got, want)
	}
}

func TestBOMIsKept(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bom.py")
	dst := filepath.Join(dir, "bom.pi")
	writeFile(t, src, "\ufeffreturn None\n")

	if code, stdout, _ := runP2P(t, src, dst); code != exitOK {
		t.Fatalf("exit %d, stdout %q", code, stdout)
	}
	if got, want := readFile(t, dst), "\ufeffคืนค่า ไม่มีค่า\n"; got != want {
		t.Fatalf("output %q, want %q", got, want)
	}
}

func TestPiyathonLexicalError(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.pi")
	dst := filepath.Join(dir, "bad.py")
	writeFile(t, src, "x = \"unterminated\n")

	code, stdout, _ := runP2P(t, src, dst, "--color", "off")
	if code != exitFail {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.HasSuffix(stdout, "Translation aborted due to errors in the Piyathon input file.\n") {
		t.Fatalf("stdout %q", stdout)
	}
	if !strings.Contains(stdout, "ERROR") {
		t.Fatalf("diagnostic missing from %q", stdout)
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Fatalf("destination should not be written, stat err = %v", err)
	}
}

func TestPythonSyntaxCheck(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.py")
	dst := filepath.Join(dir, "bad.pi")
	writeFile(t, src, "x = = 1\n")

	code, stdout, _ := runP2P(t, "--check", src, dst)
	if code != exitFail {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.HasSuffix(stdout, "Translation aborted due to syntax errors in the Python input file.\n") {
		t.Fatalf("stdout %q", stdout)
	}

	// без --check проверки нет, токены переводятся как есть
	if code, stdout, _ := runP2P(t, src, dst); code != exitOK {
		t.Fatalf("without --check: exit %d, stdout %q", code, stdout)
	}
}

func TestCustomTable(t *testing.T) {
	dir := t.TempDir()
	table := filepath.Join(dir, "de.toml")
	writeFile(t, table, `name = "de"

[keywords]
if = "wenn"
else = "sonst"
elif = "sonstwenn"

[builtins]
print = "drucke"

[[combined]]
parts = ["else", "if"]
keyword = "elif"
`)
	src := filepath.Join(dir, "a.py")
	dst := filepath.Join(dir, "a.pi")
	writeFile(t, src, "if x:\n    print(x)\n")

	if code, stdout, _ := runP2P(t, "--table", table, src, dst); code != exitOK {
		t.Fatalf("exit %d, stdout %q", code, stdout)
	}
	if got, want := readFile(t, dst), "wenn x:\n    drucke(x)\n"; got != want {
		t.Fatalf("output %q, want %q", got, want)
	}
}
