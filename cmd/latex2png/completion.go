package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-latex2png/internal/assets"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagEnum // has predefined values
	flagFile // file with extension filter
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long   string   // --config
	Short  string   // -c (empty if none)
	Type   flagType // completion type
	Desc   string   // help text
	Values []string // for enum flags
	Exts   []string // for file flags, without the dot
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values func() []string
	Exts   []string
	IsDir  bool
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"config":     {Exts: []string{"yaml", "yml"}},
	"assets":     {IsDir: true},
	"style":      {Values: builtinStyles},
	"completion": {Values: shellNames},
}

// builtinStyles lists the embedded presets. Custom presets depend on
// --assets and are not known when the script is generated.
func builtinStyles() []string {
	names, err := assets.ListStyles()
	if err != nil {
		return nil
	}
	return names
}

func shellNames() []string {
	return []string{string(ShellBash), string(ShellZsh), string(ShellFish), string(ShellPowerShell)}
}

// completionFlags extracts flag definitions from the CLI FlagSet and
// enriches them with flagCompletionMeta.
func completionFlags() []flagDef {
	var flags []flagDef

	newFlagSet(&cliFlags{}).VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}
		if f.Value.Type() == "bool" {
			fd.Type = flagBool
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case meta.Values != nil:
				fd.Type = flagEnum
				fd.Values = meta.Values()
			case len(meta.Exts) > 0:
				fd.Type = flagFile
				fd.Exts = meta.Exts
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// GenerateCompletion writes a shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	flags := completionFlags()

	var buf bytes.Buffer
	switch shell {
	case ShellBash:
		generateBash(&buf, flags)
	case ShellZsh:
		generateZsh(&buf, flags)
	case ShellFish:
		generateFish(&buf, flags)
	case ShellPowerShell:
		generatePowerShell(&buf, flags)
	default:
		return fmt.Errorf("%w: %w: %q (supported: %s)",
			ErrUsage, ErrUnsupportedShell, shell, strings.Join(shellNames(), ", "))
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// flagWords returns every spelling of every flag, long forms first.
func flagWords(flags []flagDef) []string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
	}
	for _, f := range flags {
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

func generateBash(w *bytes.Buffer, flags []flagDef) {
	fmt.Fprintln(w, "# bash completion for latex2png")
	fmt.Fprintln(w, "_latex2png_completions() {")
	fmt.Fprintln(w, "    local cur prev")
	fmt.Fprintln(w, `    cur="${COMP_WORDS[COMP_CWORD]}"`)
	fmt.Fprintln(w, `    prev="${COMP_WORDS[COMP_CWORD-1]}"`)
	fmt.Fprintln(w)
	fmt.Fprintln(w, `    case "$prev" in`)
	for _, f := range flags {
		var action string
		switch f.Type {
		case flagEnum:
			action = fmt.Sprintf(`COMPREPLY=($(compgen -W "%s" -- "$cur"))`, strings.Join(f.Values, " "))
		case flagFile:
			action = fmt.Sprintf(`COMPREPLY=($(compgen -f -X '!*.@(%s)' -- "$cur"))`, strings.Join(f.Exts, "|"))
		case flagDir:
			action = `COMPREPLY=($(compgen -d -- "$cur"))`
		case flagString:
			action = "COMPREPLY=()"
		default:
			continue
		}
		pattern := "--" + f.Long
		if f.Short != "" {
			pattern = "-" + f.Short + "|" + pattern
		}
		fmt.Fprintf(w, "        %s)\n            %s\n            return ;;\n", pattern, action)
	}
	fmt.Fprintln(w, "    esac")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "    COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(flagWords(flags), " "))
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w, "shopt -s extglob")
	fmt.Fprintln(w, "complete -o filenames -F _latex2png_completions latex2png")
}

func generateZsh(w *bytes.Buffer, flags []flagDef) {
	fmt.Fprintln(w, "#compdef latex2png")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "_latex2png() {")
	fmt.Fprintln(w, "    _arguments \\")
	for _, f := range flags {
		var action string
		switch f.Type {
		case flagEnum:
			action = fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
		case flagFile:
			action = fmt.Sprintf(`:file:_files -g "*.(%s)"`, strings.Join(f.Exts, "|"))
		case flagDir:
			action = ":directory:_files -/"
		case flagString:
			action = ":" + f.Long + ":"
		}
		spec := fmt.Sprintf("'--%s[%s]%s'", f.Long, f.Desc, action)
		if f.Short != "" {
			spec = fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, f.Desc, action)
		}
		fmt.Fprintf(w, "        %s \\\n", spec)
	}
	fmt.Fprintln(w, "        && return 0")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
	fmt.Fprintln(w, `_latex2png "$@"`)
}

func generateFish(w *bytes.Buffer, flags []flagDef) {
	fmt.Fprintln(w, "# fish completion for latex2png")
	fmt.Fprintln(w, "complete -c latex2png -f")
	for _, f := range flags {
		line := "complete -c latex2png"
		if f.Short != "" {
			line += " -s " + f.Short
		}
		line += " -l " + f.Long
		switch f.Type {
		case flagEnum:
			line += fmt.Sprintf(" -x -a '%s'", strings.Join(f.Values, " "))
		case flagFile:
			line += " -r -F"
		case flagDir:
			line += " -x -a '(__fish_complete_directories)'"
		case flagString:
			line += " -r"
		}
		line += fmt.Sprintf(" -d '%s'", f.Desc)
		fmt.Fprintln(w, line)
	}
}

func generatePowerShell(w *bytes.Buffer, flags []flagDef) {
	fmt.Fprintln(w, "# powershell completion for latex2png")
	fmt.Fprintln(w, "Register-ArgumentCompleter -Native -CommandName latex2png -ScriptBlock {")
	fmt.Fprintln(w, "    param($wordToComplete, $commandAst, $cursorPosition)")
	fmt.Fprintln(w, "    $flags = @{")
	for _, f := range flags {
		fmt.Fprintf(w, "        '--%s' = '%s'\n", f.Long, f.Desc)
	}
	fmt.Fprintln(w, "    }")
	fmt.Fprintln(w, "    $flags.Keys | Where-Object { $_ -like \"$wordToComplete*\" } | Sort-Object | ForEach-Object {")
	fmt.Fprintln(w, "        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterName', $flags[$_])")
	fmt.Fprintln(w, "    }")
	fmt.Fprintln(w, "}")
}
