package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// fixtureRepo is a temporary repository driven through go-git.
type fixtureRepo struct {
	t    *testing.T
	dir  string
	repo *gogit.Repository
	wt   *gogit.Worktree
	base time.Time
	tick int

	// frozen stamps every commit with the same committer second.
	frozen bool
}

func newFixtureRepo(t *testing.T) *fixtureRepo {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}

	return &fixtureRepo{
		t:    t,
		dir:  dir,
		repo: repo,
		wt:   wt,
		base: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// commit writes a file and commits it one minute after the previous commit
// (or at the base time when frozen). Extra parents turn the commit into a merge.
func (f *fixtureRepo) commit(msg string, extraParents ...plumbing.Hash) plumbing.Hash {
	f.t.Helper()
	if !f.frozen {
		f.tick++
	}

	rel := "file.txt"
	full := filepath.Join(f.dir, rel)
	if err := os.WriteFile(full, []byte(msg+"\n"), 0o644); err != nil {
		f.t.Fatalf("WriteFile: %v", err)
	}
	if _, err := f.wt.Add(rel); err != nil {
		f.t.Fatalf("Add: %v", err)
	}

	sig := &object.Signature{
		Name:  "Test",
		Email: "test@example.com",
		When:  f.base.Add(time.Duration(f.tick) * time.Minute),
	}
	opts := &gogit.CommitOptions{Author: sig, Committer: sig}
	if len(extraParents) > 0 {
		head, err := f.repo.Head()
		if err != nil {
			f.t.Fatalf("Head: %v", err)
		}
		opts.Parents = append([]plumbing.Hash{head.Hash()}, extraParents...)
	}

	hash, err := f.wt.Commit(msg, opts)
	if err != nil {
		f.t.Fatalf("Commit: %v", err)
	}
	return hash
}

func (f *fixtureRepo) checkout(branch string, create bool) {
	f.t.Helper()
	err := f.wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(branch),
		Create: create,
		Force:  true,
	})
	if err != nil {
		f.t.Fatalf("Checkout(%s): %v", branch, err)
	}
}

// buildMergeFixture creates master: c1 - c2 - c4 - m, feature: c2 - c3, m merges c3.
func buildMergeFixture(t *testing.T) (*fixtureRepo, map[string]plumbing.Hash) {
	t.Helper()
	return buildMergeFixtureAt(t, false)
}

// buildMergeFixtureAt builds the merge fixture, optionally with every
// commit sharing one timestamp.
func buildMergeFixtureAt(t *testing.T, frozen bool) (*fixtureRepo, map[string]plumbing.Hash) {
	t.Helper()
	f := newFixtureRepo(t)
	f.frozen = frozen
	hashes := map[string]plumbing.Hash{}

	hashes["c1"] = f.commit("c1")
	hashes["c2"] = f.commit("c2")

	f.checkout("feature", true)
	hashes["c3"] = f.commit("c3")

	f.checkout("master", false)
	hashes["c4"] = f.commit("c4")
	hashes["m"] = f.commit("merge feature", hashes["c3"])

	return f, hashes
}

// makeShallow marks boundary as a shallow root and removes the loose object
// of dropped, mimicking what a depth-limited clone leaves on disk.
func (f *fixtureRepo) makeShallow(boundary, dropped plumbing.Hash) {
	f.t.Helper()
	gitDir := filepath.Join(f.dir, ".git")
	if err := os.WriteFile(filepath.Join(gitDir, "shallow"), []byte(boundary.String()+"\n"), 0o644); err != nil {
		f.t.Fatalf("write shallow: %v", err)
	}
	h := dropped.String()
	if err := os.Remove(filepath.Join(gitDir, "objects", h[:2], h[2:])); err != nil {
		f.t.Fatalf("remove object %s: %v", h, err)
	}
}
