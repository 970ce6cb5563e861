// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dirdiff/dirdiff/internal/meta"
)

const bashCompletionScript = `# bash completion for dirdiff
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_dirdiff()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "scan show view watch completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--color -c --filter -f --output -o --titles -t --tldr"
    local scanning="--threshold -r --ignore -i --workers -w"

    # The two tree roots are the first two non-flag args after the subcommand.
    local roots=0
    local idx=2
    while [[ $idx -lt ${#COMP_WORDS[@]} ]]; do
        local w=${COMP_WORDS[$idx]}
        if [[ $w != -* ]]; then
            ((roots++))
        fi
        ((idx++))
    done

    case "$cmd" in
        scan)
            local opts="$common $scanning"
            ;;
        show)
            local opts="--color -c --threshold -r --path -p --context -C --tldr"
            ;;
        view)
            local opts="$scanning --tldr"
            ;;
        watch)
            local opts="$common $scanning --debounce"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
        return 0
    fi

    # If current token starts with '-', or both roots are in, offer flags
    if [[ "$cur" == -* || $roots -ge 2 ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # Otherwise we're on a LEFT/RIGHT positional - complete directories
    COMPREPLY=( $(compgen -o dirnames -- "$cur") )
    return 0
}

complete -F _dirdiff dirdiff
`

const zshCompletionScript = `#compdef dirdiff

_dirdiff() {
  local -a cmds
  cmds=(
    'scan:compare two directory trees'
    'show:show the line diff of one file pair'
    'view:browse differing pairs side by side'
    'watch:rescan and report whenever either tree changes'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--tldr[show tldr page]'
  )

  local -a scanning
  scanning=(
  '(-r --threshold)'{-r,--threshold}'[significance threshold]:ratio'
  '(-i --ignore)'{-i,--ignore}'[directory names to prune]:names'
  '(-w --workers)'{-w,--workers}'[max concurrent comparisons]:count'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'dirdiff commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    scan)
      _arguments -C \
        $common \
        $scanning \
        '1:LEFT:_directories' \
        '2:RIGHT:_directories'
      ;;
    show)
      _arguments -C \
        '(-c --color)'{-c,--color}'[enable colored text]' \
        '--tldr[show tldr page]' \
        '(-r --threshold)'{-r,--threshold}'[significance threshold]:ratio' \
        '(-p --path)'{-p,--path}'[relative path to show]:path' \
        '(-C --context)'{-C,--context}'[context lines]:count' \
        '1:LEFT:_directories' \
        '2:RIGHT:_directories'
      ;;
    view)
      _arguments -C \
        $scanning \
        '--tldr[show tldr page]' \
        '1:LEFT:_directories' \
        '2:RIGHT:_directories'
      ;;
    watch)
      _arguments -C \
        $common \
        $scanning \
        '--debounce[quiet period in ms]:ms' \
        '1:LEFT:_directories' \
        '2:RIGHT:_directories'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common '*:directory:_directories'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _dirdiff dirdiff dirdiff
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(os.Stdout, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(os.Stdout, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: dirdiff completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "dirdiff completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
