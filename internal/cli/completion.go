package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "help")
	Short     string   // short flag without "-" (e.g., "h")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "number", "duration")
	IsFile    bool     // true if the flag takes a file path
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "quiet", Short: "q", Help: "Quiet mode for scripts"},
	{Long: "verbose", Short: "v", Help: "Debug logging of each bisection step"},
	{Long: "no-trace", Help: "Suppress per-iteration trace lines"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "max-iterations", Help: "Iteration ceiling for the search", Values: []string{"64", "1024", "65536", "4194304"}, ValueName: "count"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"5s", "30s", "1m", "5m"}, ValueName: "duration"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Long: "repl", Help: "Start interactive mode"},
	{Long: "serve", Help: "Serve the HTTP approximation API", ValueName: "address"},
	{Long: "tui", Help: "Step-through bisection visualizer"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// GenerateCompletion generates a shell completion script for the specified shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish").
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out)
	case "zsh":
		return generateZshCompletion(out)
	case "fish":
		return generateFishCompletion(out)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
}

// generateBashCompletion generates a Bash completion script.
func generateBashCompletion(out io.Writer) error {
	var opts []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			opts = append(opts, "--"+f.Long)
		}
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
	}

	var caseBody strings.Builder
	for _, f := range flagRegistry {
		switch {
		case f.IsFile:
			fmt.Fprintf(&caseBody, "        --%s|-%s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n", f.Long, f.Short)
		case len(f.Values) > 0:
			fmt.Fprintf(&caseBody, "        --%s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n", f.Long, strings.Join(f.Values, " "))
		}
	}

	script := fmt.Sprintf(`# Bash completion script for fareycalc
# Add this to your ~/.bashrc or ~/.bash_completion

_fareycalc_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Main options
    opts="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _fareycalc_completions fareycalc
`, strings.Join(opts, " "), caseBody.String())

	_, err := fmt.Fprint(out, script)
	if err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

// generateZshCompletion generates a Zsh completion script.
func generateZshCompletion(out io.Writer) error {
	var args strings.Builder
	for _, f := range flagRegistry {
		var spec string
		switch {
		case f.IsFile:
			spec = fmt.Sprintf("'--%s[%s]:%s:_files'", f.Long, f.Help, f.ValueName)
		case len(f.Values) > 0:
			spec = fmt.Sprintf("'--%s[%s]:%s:(%s)'", f.Long, f.Help, f.ValueName, strings.Join(f.Values, " "))
		case f.ValueName != "":
			spec = fmt.Sprintf("'--%s[%s]:%s:'", f.Long, f.Help, f.ValueName)
		default:
			spec = fmt.Sprintf("'--%s[%s]'", f.Long, f.Help)
		}
		fmt.Fprintf(&args, "    %s \\\n", spec)
	}

	script := fmt.Sprintf(`#compdef fareycalc
# Zsh completion script for fareycalc

_fareycalc() {
    _arguments \
%s    '1:number to approximate:'
}

_fareycalc "$@"
`, args.String())

	_, err := fmt.Fprint(out, script)
	if err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

// generateFishCompletion generates a Fish completion script.
func generateFishCompletion(out io.Writer) error {
	var lines strings.Builder
	for _, f := range flagRegistry {
		var b strings.Builder
		b.WriteString("complete -c fareycalc")
		if f.Long != "" {
			fmt.Fprintf(&b, " -l %s", f.Long)
		}
		if f.Short != "" {
			fmt.Fprintf(&b, " -s %s", f.Short)
		}
		if len(f.Values) > 0 {
			fmt.Fprintf(&b, " -x -a \"%s\"", strings.Join(f.Values, " "))
		}
		if f.IsFile {
			b.WriteString(" -r")
		}
		fmt.Fprintf(&b, " -d \"%s\"", f.Help)
		lines.WriteString(b.String())
		lines.WriteString("\n")
	}

	script := fmt.Sprintf(`# Fish completion script for fareycalc

%s`, lines.String())

	_, err := fmt.Fprint(out, script)
	if err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}
