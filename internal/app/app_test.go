package app

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/agbru/fareycalc/internal/errors"
	"github.com/agbru/fareycalc/internal/ui"
)

// runApp builds an Application from args and runs it, returning the exit
// code together with the captured stdout and stderr.
func runApp(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var out, errOut bytes.Buffer
	application, err := New(append([]string{"fareycalc"}, args...), &errOut)
	if err != nil {
		t.Fatalf("New(%v) returned unexpected error: %v", args, err)
	}
	code := application.Run(context.Background(), &out)
	return code, out.String(), errOut.String()
}

func TestNew_ParsesConfig(t *testing.T) {
	var errOut bytes.Buffer
	application, err := New([]string{"fareycalc", "-q", "0.5"}, &errOut)
	if err != nil {
		t.Fatalf("New returned unexpected error: %v", err)
	}

	if !application.Config.Quiet {
		t.Error("Quiet = false, want true")
	}
	if application.Config.Target != 0.5 {
		t.Errorf("Target = %v, want 0.5", application.Config.Target)
	}
}

func TestNew_HelpError(t *testing.T) {
	var errOut bytes.Buffer
	_, err := New([]string{"fareycalc", "--help"}, &errOut)
	if !IsHelpError(err) {
		t.Fatalf("error = %v, want flag.ErrHelp", err)
	}
}

func TestNew_ConfigError(t *testing.T) {
	var errOut bytes.Buffer
	_, err := New([]string{"fareycalc"}, &errOut)
	if err == nil {
		t.Fatal("expected an error for a missing target")
	}
	if IsHelpError(err) {
		t.Fatal("missing target should not map to a help error")
	}
	if apperrors.ExitCodeFor(err) != apperrors.ExitErrorConfig {
		t.Errorf("exit code = %d, want %d", apperrors.ExitCodeFor(err), apperrors.ExitErrorConfig)
	}
}

func TestRun_Approximate(t *testing.T) {
	defer ui.SetCurrentTheme(ui.GetCurrentTheme())

	t.Run("QuietPrintsBareFraction", func(t *testing.T) {
		code, out, _ := runApp(t, "-q", "0.5")
		if code != apperrors.ExitSuccess {
			t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
		}
		if out != "1/2\n" {
			t.Errorf("output = %q, want %q", out, "1/2\n")
		}
	})

	t.Run("DefaultShowsTraceAndDiagram", func(t *testing.T) {
		code, out, _ := runApp(t, "--no-color", "0.25")
		if code != apperrors.ExitSuccess {
			t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
		}
		if !strings.Contains(out, "$ frac(0,1) <- 0.5 -> frac(1,1) $") {
			t.Errorf("output missing first trace line:\n%s", out)
		}
		if !strings.Contains(out, "$ 0.25 ≈ frac(1,4) $") {
			t.Errorf("output missing diagram summary:\n%s", out)
		}
	})

	t.Run("NoTraceSuppressesSteps", func(t *testing.T) {
		code, out, _ := runApp(t, "--no-color", "--no-trace", "0.25")
		if code != apperrors.ExitSuccess {
			t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
		}
		if strings.Contains(out, "<-") {
			t.Errorf("output should not contain trace lines:\n%s", out)
		}
		if !strings.Contains(out, "frac(1,4)") {
			t.Errorf("output missing result:\n%s", out)
		}
	})

	t.Run("InvalidTargetExitCode", func(t *testing.T) {
		code, _, errOut := runApp(t, "--", "-1.5")
		if code != apperrors.ExitErrorInvalidInput {
			t.Fatalf("exit code = %d, want %d", code, apperrors.ExitErrorInvalidInput)
		}
		if !strings.Contains(errOut, "Error: ") {
			t.Errorf("stderr missing error report: %q", errOut)
		}
	})

	t.Run("IterationCeilingExitCode", func(t *testing.T) {
		code, _, _ := runApp(t, "-q", "--max-iterations", "8", "0.01")
		if code != apperrors.ExitErrorNonConvergence {
			t.Fatalf("exit code = %d, want %d", code, apperrors.ExitErrorNonConvergence)
		}
	})

	t.Run("OutputFileWritten", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "result.txt")
		code, out, _ := runApp(t, "--no-color", "-o", path, "0.5")
		if code != apperrors.ExitSuccess {
			t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
		}
		if !strings.Contains(out, "Result saved to: "+path) {
			t.Errorf("output missing save confirmation:\n%s", out)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading output file: %v", err)
		}
		if !strings.Contains(string(data), "$ 0.5 ≈ frac(1,2) $") {
			t.Errorf("output file missing diagram:\n%s", data)
		}
	})
}

func TestRun_Completion(t *testing.T) {
	code, out, _ := runApp(t, "--completion", "bash")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	if !strings.Contains(out, "complete -F _fareycalc_completions fareycalc") {
		t.Errorf("output missing completion registration:\n%s", out)
	}

	code, _, errOut := runApp(t, "--completion", "powershell")
	if code != apperrors.ExitErrorConfig {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitErrorConfig)
	}
	if !strings.Contains(errOut, "unsupported shell") {
		t.Errorf("stderr missing shell rejection: %q", errOut)
	}
}

func TestHasVersionFlag(t *testing.T) {
	testCases := []struct {
		args []string
		want bool
	}{
		{[]string{"-V"}, true},
		{[]string{"--version"}, true},
		{[]string{"-version"}, true},
		{[]string{"0.5"}, false},
		{[]string{}, false},
		{[]string{"-q", "--version", "0.5"}, true},
	}

	for _, tc := range testCases {
		if got := HasVersionFlag(tc.args); got != tc.want {
			t.Errorf("HasVersionFlag(%v) = %t, want %t", tc.args, got, tc.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf)
	if !strings.Contains(buf.String(), "fareycalc version "+Version) {
		t.Errorf("version banner = %q", buf.String())
	}
}

func TestIsHelpError(t *testing.T) {
	if !IsHelpError(flag.ErrHelp) {
		t.Error("flag.ErrHelp should be a help error")
	}
	if IsHelpError(errors.New("boom")) {
		t.Error("arbitrary errors are not help errors")
	}
	if IsHelpError(nil) {
		t.Error("nil is not a help error")
	}
}
