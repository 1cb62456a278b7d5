package history

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/go-git/go-git/v5"
)

const (
	identifierFormat = "%H"
	ancestryFormat   = "%H %P"
)

// CLISource reads history by running the git executable.
type CLISource struct {
	repo *git.Repository
	opts Options
}

// NewCLISource creates a git CLI backed source for the given repository.
// The repository location is validated up front.
func NewCLISource(opts Options) (*CLISource, error) {
	repo, err := openRepository(opts.RepoPath)
	if err != nil {
		return nil, err
	}
	return &CLISource{repo: repo, opts: opts}, nil
}

// Load runs git log and returns both listings.
func (s *CLISource) Load(ctx context.Context) (*History, error) {
	starts, err := resolveStartPoints(s.repo, s.opts)
	if err != nil {
		return nil, err
	}
	if len(starts) == 0 {
		return &History{}, nil
	}

	revs := make([]string, len(starts))
	for i, sp := range starts {
		revs[i] = sp.Name
	}

	if s.opts.Combined {
		records, err := s.runLog(ctx, OpListHistory, ancestryFormat, revs)
		if err != nil {
			return nil, err
		}
		records = trimRecords(records)
		return &History{
			Identifiers: identifiersFromAncestry(records),
			Ancestry:    records,
		}, nil
	}

	ids, err := s.runLog(ctx, OpListIdentifiers, identifierFormat, revs)
	if err != nil {
		return nil, err
	}
	records, err := s.runLog(ctx, OpListAncestry, ancestryFormat, revs)
	if err != nil {
		return nil, err
	}
	return &History{Identifiers: ids, Ancestry: trimRecords(records)}, nil
}

func (s *CLISource) gitPath() string {
	if s.opts.GitPath != "" {
		return s.opts.GitPath
	}
	return "git"
}

func (s *CLISource) runLog(ctx context.Context, op, format string, revs []string) ([]string, error) {
	args := []string{
		"-C", s.opts.RepoPath,
		"log",
		"--no-color",
		"--date-order",
		"--pretty=format:" + format,
	}
	args = append(args, revs...)
	args = append(args, "--")

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.gitPath(), args...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return nil, &QueryError{Op: op, Output: strings.TrimSpace(stderr.String()), Err: err}
	}

	return SplitListing(string(out)), nil
}

// trimRecords drops the trailing space git prints after %P for root commits.
func trimRecords(records []string) []string {
	for i, rec := range records {
		records[i] = strings.TrimRight(rec, " ")
	}
	return records
}
