package hook

import (
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
)

// posixHook serves bash and zsh, which share function syntax.
type posixHook struct {
	shell SupportedShell
}

func (h *posixHook) Shell() SupportedShell {
	return h.shell
}

func (h *posixHook) GenerateFunction(stateFile string) string {
	return heredoc.Docf(`
		# raph shell hook (%s)
		raph() {
		  command raph "$@"
		  local rc=$?
		  if [ "$rc" -eq %d ]; then
		    local profile
		    profile="$(cat %s 2>/dev/null)"
		    if [ -n "$profile" ]; then
		      export AWS_PROFILE="$profile"
		    else
		      unset AWS_PROFILE
		    fi
		    return 0
		  fi
		  return "$rc"
		}
	`, h.shell, SwitchedExitCode, posixQuote(stateFile))
}

type fishHook struct{}

func (h *fishHook) Shell() SupportedShell {
	return ShellFish
}

func (h *fishHook) GenerateFunction(stateFile string) string {
	return heredoc.Docf(`
		# raph shell hook (fish)
		function raph
		    command raph $argv
		    set -l rc $status
		    if test $rc -eq %d
		        set -l profile (cat %s 2>/dev/null)
		        if test -n "$profile"
		            set -gx AWS_PROFILE $profile
		        else
		            set -e AWS_PROFILE
		        end
		        return 0
		    end
		    return $rc
		end
	`, SwitchedExitCode, fishQuote(stateFile))
}

// posixQuote single-quotes s for sh-compatible shells.
func posixQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// fishQuote single-quotes s for fish, where only \ and ' are special.
func fishQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
