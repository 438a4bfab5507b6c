package harness

import (
	"os"
	"strings"
	"testing"
)

// Variables that git exports to hooks and that would point child git commands at the wrong repository
var gitLocationVars = map[string]bool{
	"GIT_DIR":        true,
	"GIT_INDEX_FILE": true,
	"GIT_WORK_TREE":  true,
}

// TestEnvironment provides an isolated environment with its own HOME and git repository.
type TestEnvironment struct {
	Home     string
	Repo     *TestRepo
	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates an isolated environment with a fresh repository holding
// one staged file. Temp directories are automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	env := &TestEnvironment{
		Home:     tb.TempDir(),
		extraEnv: make(map[string]string),
		tb:       tb,
	}
	env.Repo = NewTestRepo(tb, env)
	return env
}

// Environ returns environment variables configured for test isolation.
// It filters out QUICKHOOK_*, NO_COLOR and git location variables and sets:
//   - HOME to the temp directory
//   - GIT_CONFIG_NOSYSTEM to 1 (ignore machine-wide git config)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "QUICKHOOK_") || key == "NO_COLOR" || key == "HOME" || key == "GIT_CONFIG_NOSYSTEM" {
			continue
		}
		if gitLocationVars[key] {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"HOME="+e.Home,
		"GIT_CONFIG_NOSYSTEM=1",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
