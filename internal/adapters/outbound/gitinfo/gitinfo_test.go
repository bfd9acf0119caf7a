package gitinfo_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakebuild/bakecheck/internal/adapters/outbound/gitinfo"
)

func TestDescribe_NotAGitRepo(t *testing.T) {
	dir := t.TempDir()
	_, ok := gitinfo.New().Describe(dir)
	assert.False(t, ok)
}

func TestDescribe_EmptyRepoHasNoHead(t *testing.T) {
	dir := t.TempDir()
	runGit(t, dir, "init")

	_, ok := gitinfo.New().Describe(dir)
	assert.False(t, ok)
}

func TestDescribe_ReturnsBranchAndShortCommit(t *testing.T) {
	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test")

	f := filepath.Join(dir, "bake.yml")
	require.NoError(t, os.WriteFile(f, []byte("name: test\n"), 0644))
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "init")

	info, ok := gitinfo.New().Describe(dir)
	require.True(t, ok)
	assert.Len(t, info.Commit, 7, "should be a short hash")
	assert.NotEmpty(t, info.Branch)
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, string(out))
}
