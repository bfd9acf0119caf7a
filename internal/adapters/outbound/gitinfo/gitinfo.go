// Package gitinfo resolves repository metadata with go-git.
package gitinfo

import (
	"github.com/go-git/go-git/v5"

	"github.com/bakebuild/bakecheck/internal/domain"
)

// GitInfoAdapter implements domain.GitInfo using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

// Describe returns the branch name and short commit hash of HEAD.
// The second return is false when projectPath is not a git repository
// or HEAD cannot be resolved, which is not an error for reporting.
func (g *GitInfoAdapter) Describe(projectPath string) (domain.RepoInfo, bool) {
	repo, err := git.PlainOpenWithOptions(projectPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return domain.RepoInfo{}, false
	}

	head, err := repo.Head()
	if err != nil {
		return domain.RepoInfo{}, false
	}

	info := domain.RepoInfo{Commit: head.Hash().String()[:7]}
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}
	return info, true
}
