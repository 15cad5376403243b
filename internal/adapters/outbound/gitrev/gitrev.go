package gitrev

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GitRevAdapter implements domain.RevisionDiffer using go-git.
type GitRevAdapter struct{}

func New() *GitRevAdapter {
	return &GitRevAdapter{}
}

func (g *GitRevAdapter) IsGitRepo(repoPath string) bool {
	_, err := openRepo(repoPath)
	return err == nil
}

// RevisionDiff returns the unified diff between rev and its first parent.
// Root commits are diffed against the empty tree.
func (g *GitRevAdapter) RevisionDiff(repoPath, rev string) (string, error) {
	repo, err := openRepo(repoPath)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", rev, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return "", fmt.Errorf("reading commit %s: %w", hash, err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return "", fmt.Errorf("reading tree of %s: %w", hash, err)
	}

	var parentTree *object.Tree
	if commit.NumParents() > 0 {
		parent, err := commit.Parent(0)
		if err != nil {
			return "", fmt.Errorf("reading parent of %s: %w", hash, err)
		}
		if parentTree, err = parent.Tree(); err != nil {
			return "", fmt.Errorf("reading tree of %s: %w", parent.Hash, err)
		}
	}

	changes, err := object.DiffTree(parentTree, tree)
	if err != nil {
		return "", fmt.Errorf("diffing %s: %w", hash, err)
	}

	patch, err := changes.Patch()
	if err != nil {
		return "", fmt.Errorf("building patch for %s: %w", hash, err)
	}

	return patch.String(), nil
}

func openRepo(repoPath string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
}
