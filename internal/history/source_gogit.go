package history

import (
	"context"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// GoGitSource reads history with go-git, without a git executable.
// Commits are listed in git log --date-order: newest committer second
// first, never before any of their children, and ties resolved in the
// order commits became ready (first parent ahead of later parents).
type GoGitSource struct {
	repo *git.Repository
	opts Options
}

// NewGoGitSource creates a go-git backed source for the given repository.
func NewGoGitSource(opts Options) (*GoGitSource, error) {
	repo, err := openRepository(opts.RepoPath)
	if err != nil {
		return nil, err
	}
	return &GoGitSource{repo: repo, opts: opts}, nil
}

// walkCommit is the part of a commit the ordering needs.
// Parents is empty for shallow boundary commits.
type walkCommit struct {
	Hash    plumbing.Hash
	When    int64 // Committer time in whole seconds, as git compares it
	Parents []plumbing.Hash
}

// Load walks every start point and returns both listings from one walk.
func (s *GoGitSource) Load(ctx context.Context) (*History, error) {
	starts, err := resolveStartPoints(s.repo, s.opts)
	if err != nil {
		return nil, err
	}

	commits, err := s.collect(ctx, starts)
	if err != nil {
		return nil, err
	}

	ordered := dateOrder(commits, starts)
	records := make([]string, len(ordered))
	for i, c := range ordered {
		parents := make([]string, len(c.Parents))
		for j, p := range c.Parents {
			parents[j] = p.String()
		}
		records[i] = FormatRecord(c.Hash.String(), parents)
	}

	return &History{
		Identifiers: identifiersFromAncestry(records),
		Ancestry:    records,
	}, nil
}

// shallowSet returns the boundary commits of a shallow clone.
func (s *GoGitSource) shallowSet() (map[plumbing.Hash]bool, error) {
	hashes, err := s.repo.Storer.Shallow()
	if err != nil {
		return nil, err
	}
	set := make(map[plumbing.Hash]bool, len(hashes))
	for _, h := range hashes {
		set[h] = true
	}
	return set, nil
}

// collect gathers every commit reachable from the start points. The walk
// stops at shallow boundaries, whose parents are not in the object store.
func (s *GoGitSource) collect(ctx context.Context, starts []startPoint) (map[plumbing.Hash]*walkCommit, error) {
	shallow, err := s.shallowSet()
	if err != nil {
		return nil, &QueryError{Op: OpListHistory, Err: err}
	}

	commits := make(map[plumbing.Hash]*walkCommit)
	stack := make([]plumbing.Hash, 0, len(starts))
	for i := len(starts) - 1; i >= 0; i-- {
		stack = append(stack, starts[i].Hash)
	}

	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := commits[h]; ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, &QueryError{Op: OpListHistory, Err: err}
		}

		c, err := s.repo.CommitObject(h)
		if err != nil {
			return nil, &QueryError{Op: OpListHistory, Err: err}
		}

		wc := &walkCommit{Hash: c.Hash, When: c.Committer.When.Unix()}
		if !shallow[c.Hash] {
			wc.Parents = c.ParentHashes
			for i := len(c.ParentHashes) - 1; i >= 0; i-- {
				stack = append(stack, c.ParentHashes[i])
			}
		}
		commits[h] = wc
	}

	return commits, nil
}

// queued is a heap entry; seq records insertion order for tie breaking.
type queued struct {
	commit *walkCommit
	seq    int
}

// dateOrder sorts commits newest-first while keeping every child ahead of
// its parents. Tips enter the queue in start point order and parents in
// parent order; equal committer seconds pop in insertion order.
func dateOrder(commits map[plumbing.Hash]*walkCommit, starts []startPoint) []*walkCommit {
	pending := make(map[plumbing.Hash]int, len(commits))
	for _, c := range commits {
		for _, p := range c.Parents {
			if _, ok := commits[p]; ok {
				pending[p]++
			}
		}
	}

	ready := binaryheap.NewWith(func(a, b interface{}) int {
		qa, qb := a.(queued), b.(queued)
		switch {
		case qa.commit.When > qb.commit.When:
			return -1
		case qa.commit.When < qb.commit.When:
			return 1
		}
		return qa.seq - qb.seq
	})
	seq := 0
	push := func(c *walkCommit) {
		ready.Push(queued{commit: c, seq: seq})
		seq++
	}

	queuedTip := make(map[plumbing.Hash]bool, len(starts))
	for _, sp := range starts {
		c, ok := commits[sp.Hash]
		if !ok || queuedTip[sp.Hash] || pending[sp.Hash] > 0 {
			continue
		}
		queuedTip[sp.Hash] = true
		push(c)
	}

	ordered := make([]*walkCommit, 0, len(commits))
	for !ready.Empty() {
		v, _ := ready.Pop()
		c := v.(queued).commit
		ordered = append(ordered, c)
		for _, p := range c.Parents {
			parent, ok := commits[p]
			if !ok {
				continue
			}
			pending[p]--
			if pending[p] == 0 {
				push(parent)
			}
		}
	}

	return ordered
}
