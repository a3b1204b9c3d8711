package e2e

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// TestE2E runs the loxc binary over every .lox file in testdata/.
// Each file starts with comment lines stating what to expect:
//
//	// args: ast --format json
//	// exit: 2
//	// stdout: text that must appear on stdout
//	// stderr: text that must appear on stderr
//
// args defaults to "check". The file name is appended to args and the
// binary runs inside testdata/.
func TestE2E(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*.lox")
	if err != nil {
		t.Fatal(err)
	}
	if len(testFiles) == 0 {
		t.Fatal("no .lox test files found in testdata/")
	}

	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go not found, skipping E2E tests")
	}
	bin := buildLoxc(t)

	for _, testFile := range testFiles {
		name := strings.TrimSuffix(filepath.Base(testFile), ".lox")
		t.Run(name, func(t *testing.T) {
			runE2ETest(t, bin, testFile)
		})
	}
}

type expectation struct {
	args   []string
	exit   int
	stdout []string
	stderr []string
}

func runE2ETest(t *testing.T, bin, loxFile string) {
	t.Helper()

	want := readExpectation(t, loxFile)

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(bin, append(want.args, filepath.Base(loxFile))...)
	cmd.Dir = filepath.Dir(loxFile)
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	exit := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("running loxc: %v", err)
		}
		exit = exitErr.ExitCode()
	}

	if exit != want.exit {
		t.Errorf("exit code %d, want %d\nstderr:\n%s", exit, want.exit, stderr.String())
	}
	for _, s := range want.stdout {
		if !strings.Contains(stdout.String(), s) {
			t.Errorf("stdout missing %q:\n%s", s, stdout.String())
		}
	}
	for _, s := range want.stderr {
		if !strings.Contains(stderr.String(), s) {
			t.Errorf("stderr missing %q:\n%s", s, stderr.String())
		}
	}
}

// readExpectation parses the leading comment block of loxFile.
func readExpectation(t *testing.T, loxFile string) expectation {
	t.Helper()

	f, err := os.Open(loxFile)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	want := expectation{args: []string{"check"}}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line, ok := strings.CutPrefix(sc.Text(), "// ")
		if !ok {
			break
		}
		key, val, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		switch key {
		case "args":
			want.args = strings.Fields(val)
		case "exit":
			if want.exit, err = strconv.Atoi(val); err != nil {
				t.Fatalf("bad exit line %q", line)
			}
		case "stdout":
			want.stdout = append(want.stdout, val)
		case "stderr":
			want.stderr = append(want.stderr, val)
		}
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("reading %s: %v", loxFile, err)
	}
	return want
}

// buildLoxc compiles cmd/loxc into a temp directory.
func buildLoxc(t *testing.T) string {
	t.Helper()

	root := findModuleRoot(t)
	bin := filepath.Join(t.TempDir(), "loxc")
	cmd := exec.Command("go", "build", "-o", bin, "./cmd/loxc")
	cmd.Dir = root
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("go build failed:\n%s\n%v", out, err)
	}
	return bin
}

// findModuleRoot locates the directory holding go.mod relative to the test
// directory.
func findModuleRoot(t *testing.T) string {
	t.Helper()

	candidates := []string{"../..", "../../.."}
	for _, c := range candidates {
		if _, err := os.Stat(filepath.Join(c, "go.mod")); err == nil {
			abs, _ := filepath.Abs(c)
			return abs
		}
	}

	t.Fatal("cannot find go.mod")
	return ""
}
