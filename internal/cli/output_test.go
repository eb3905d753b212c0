package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agbru/fareycalc/internal/cli"
	apperrors "github.com/agbru/fareycalc/internal/errors"
	"github.com/agbru/fareycalc/internal/farey"
)

// mustFraction builds a fraction or fails the test.
func mustFraction(t *testing.T, num, den uint64) farey.Fraction {
	t.Helper()
	f, err := farey.New(num, den)
	if err != nil {
		t.Fatalf("New(%d, %d) returned unexpected error: %v", num, den, err)
	}
	return f
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "WholeNumber", value: 4, want: "4"},
		{name: "Zero", value: 0, want: "0"},
		{name: "Half", value: 0.5, want: "0.5"},
		{name: "TwoFifths", value: 0.4, want: "0.4"},
		{name: "Quarter", value: 0.25, want: "0.25"},
		{name: "MixedNumber", value: 3.5, want: "3.5"},
		{name: "LargeInteger", value: 1e15, want: "1000000000000000"},
		{name: "RepeatingExpansionTruncated", value: 1.0 / 3.0, want: "0.333333333333333"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := cli.FormatValue(tc.value); got != tc.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestFormatDiagram(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		num  uint64
		den  uint64
		want string
	}{
		{
			name: "Half",
			num:  1,
			den:  2,
			want: "\n" +
				"        1\n" +
				"0.5 ≈ ---\n" +
				"        2\n" +
				"\n" +
				"$ 0.5 ≈ frac(1,2) $",
		},
		{
			name: "WholeNumber",
			num:  4,
			den:  1,
			want: "\n" +
				"      4\n" +
				"4 ≈ ---\n" +
				"      1\n" +
				"\n" +
				"$ 4 ≈ frac(4,1) $",
		},
		{
			name: "WideDenominator",
			num:  27450985,
			den:  82352941,
			want: "\n" +
				"               27450985\n" +
				"0.33333339 ≈ ----------\n" +
				"               82352941\n" +
				"\n" +
				"$ 0.33333339 ≈ frac(27450985,82352941) $",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := mustFraction(t, tc.num, tc.den)
			if got := cli.FormatDiagram(f); got != tc.want {
				t.Errorf("FormatDiagram(%s) mismatch.\ngot:\n%s\nwant:\n%s", f, got, tc.want)
			}
		})
	}
}

func TestDisplayResult(t *testing.T) {
	t.Parallel()

	result := farey.Result{Fraction: mustFraction(t, 2, 5), Iterations: 3}

	t.Run("QuietModePrintsBareFraction", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		cli.DisplayResult(&buf, result, cli.OutputConfig{Quiet: true})
		if got := buf.String(); got != "2/5\n" {
			t.Errorf("quiet output = %q, want %q", got, "2/5\n")
		}
	})

	t.Run("DefaultModePrintsDiagram", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		cli.DisplayResult(&buf, result, cli.OutputConfig{})
		got := buf.String()
		if !strings.Contains(got, "0.4 ≈ ---") {
			t.Errorf("diagram output missing separator line: %q", got)
		}
		if !strings.Contains(got, "$ 0.4 ≈ frac(2,5) $") {
			t.Errorf("diagram output missing summary line: %q", got)
		}
	})
}

func TestDisplayError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cli.DisplayError(&buf, apperrors.NewInputError("target", "must be finite"))
	got := buf.String()
	if !strings.Contains(got, "Error: ") {
		t.Errorf("error output missing prefix: %q", got)
	}
	if !strings.Contains(got, "must be finite") {
		t.Errorf("error output missing message: %q", got)
	}
}

func TestWriteResultToFile(t *testing.T) {
	t.Parallel()

	result := farey.Result{Fraction: mustFraction(t, 1, 2), Iterations: 1}

	t.Run("EmptyPathIsNoOp", func(t *testing.T) {
		t.Parallel()
		if err := cli.WriteResultToFile(result, 0.5, cli.OutputConfig{}); err != nil {
			t.Errorf("WriteResultToFile with empty path returned error: %v", err)
		}
	})

	t.Run("WritesHeaderAndDiagram", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "nested", "result.txt")
		err := cli.WriteResultToFile(result, 0.5, cli.OutputConfig{OutputFile: path})
		if err != nil {
			t.Fatalf("WriteResultToFile returned error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading output file: %v", err)
		}
		content := string(data)

		for _, want := range []string{
			"# Farey Approximation Result",
			"# Target: 0.5",
			"# Iterations: 1",
			"$ 0.5 ≈ frac(1,2) $",
		} {
			if !strings.Contains(content, want) {
				t.Errorf("output file missing %q.\ncontent:\n%s", want, content)
			}
		}
	})
}
