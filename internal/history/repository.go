package history

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// startPoint is a revision the history walk begins from.
type startPoint struct {
	Name string // Revision as understood by git log
	Hash plumbing.Hash
}

// openRepository opens the repository at path, which must be its top level.
func openRepository(path string) (*git.Repository, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, &QueryError{Op: OpOpenRepository, Err: fmt.Errorf("%s: %w", path, ErrNotRepository)}
		}
		return nil, &QueryError{Op: OpOpenRepository, Err: err}
	}
	return repo, nil
}

// resolveStartPoints returns the revisions a walk should start from.
// An unborn HEAD yields no start points and no error.
func resolveStartPoints(repo *git.Repository, opts Options) ([]startPoint, error) {
	if opts.All {
		return resolveAllRefs(repo, opts)
	}

	rev := strings.TrimSpace(opts.Branch)
	if rev == "" || strings.EqualFold(rev, "HEAD") {
		head, err := repo.Head()
		if err != nil {
			if errors.Is(err, plumbing.ErrReferenceNotFound) {
				return nil, nil
			}
			return nil, &QueryError{Op: OpResolveRefs, Err: err}
		}
		return []startPoint{{Name: "HEAD", Hash: head.Hash()}}, nil
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, &QueryError{Op: OpResolveRefs, Err: fmt.Errorf("resolve %q: %w", rev, err)}
	}
	return []startPoint{{Name: rev, Hash: *hash}}, nil
}

func resolveAllRefs(repo *git.Repository, opts Options) ([]startPoint, error) {
	refs, err := repo.References()
	if err != nil {
		return nil, &QueryError{Op: OpResolveRefs, Err: err}
	}
	defer refs.Close()

	var points []startPoint
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if ref.Type() != plumbing.HashReference {
			return nil
		}
		name := ref.Name()
		if !name.IsBranch() && !name.IsTag() && !name.IsRemote() {
			return nil
		}

		ok, err := matchesFilters(name.Short(), opts.Include, opts.Exclude)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		hash, ok := peelToCommit(repo, ref.Hash())
		if !ok {
			return nil
		}
		points = append(points, startPoint{Name: name.String(), Hash: hash})
		return nil
	})
	if err != nil {
		return nil, &QueryError{Op: OpResolveRefs, Err: err}
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Name < points[j].Name
	})
	return points, nil
}

// peelToCommit follows annotated tags down to the commit they point at.
func peelToCommit(repo *git.Repository, h plumbing.Hash) (plumbing.Hash, bool) {
	if c, err := repo.CommitObject(h); err == nil {
		return c.Hash, true
	}
	tag, err := repo.TagObject(h)
	if err != nil {
		return plumbing.ZeroHash, false
	}
	c, err := tag.Commit()
	if err != nil {
		return plumbing.ZeroHash, false
	}
	return c.Hash, true
}

// matchesFilters checks a ref name against include/exclude glob patterns.
func matchesFilters(name string, include, exclude []string) (bool, error) {
	// Check exclude patterns first
	for _, pattern := range exclude {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		if matched {
			return false, nil
		}
	}

	if len(include) == 0 {
		return true, nil
	}

	for _, pattern := range include {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}

	return false, nil
}
