package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvs are environment variables set by common CI/CD systems.
var ciEnvs = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"CIRCLECI",
	"BUILDKITE",
	"JENKINS_HOME",
	"TF_BUILD",
}

// IsInteractive reports whether prompts and spinners can be shown: both
// stdin and stdout must be terminals, no CI system may be detected, and
// KOPEN_NO_INTERACTIVE must be unset.
func IsInteractive() bool {
	if os.Getenv("KOPEN_NO_INTERACTIVE") != "" {
		return false
	}
	for _, env := range ciEnvs {
		if os.Getenv(env) != "" {
			return false
		}
	}
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
}
