package grelly

// Test fixtures are built with go-git's in-memory storage so no git binary
// or on-disk state is needed.

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
)

func testSignature() *object.Signature {
	return &object.Signature{
		Name:  "Test User",
		Email: "test@example.com",
		When:  time.Now(),
	}
}

// newTestRepo builds an empty in-memory repository. The initial branch is
// "master".
func newTestRepo(t *testing.T) (*git.Repository, *git.Worktree) {
	t.Helper()
	repo, err := git.Init(memory.NewStorage(), memfs.New())
	if err != nil {
		t.Fatalf("init repository: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}
	return repo, wt
}

var commitSeq int

// addCommit writes a uniquely-named file and commits it, so every commit
// has a distinct tree.
func addCommit(t *testing.T, wt *git.Worktree, message string) plumbing.Hash {
	t.Helper()
	commitSeq++
	name := fmt.Sprintf("file-%d.txt", commitSeq)
	if err := util.WriteFile(wt.Filesystem, name, []byte(message+"\n"), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	if _, err := wt.Add(name); err != nil {
		t.Fatalf("add %s: %v", name, err)
	}
	hash, err := wt.Commit(message, &git.CommitOptions{Author: testSignature(), Committer: testSignature()})
	if err != nil {
		t.Fatalf("commit %q: %v", message, err)
	}
	return hash
}

// lightTag creates a lightweight tag.
func lightTag(t *testing.T, repo *git.Repository, name string, target plumbing.Hash) {
	t.Helper()
	if _, err := repo.CreateTag(name, target, nil); err != nil {
		t.Fatalf("tag %s: %v", name, err)
	}
}

// annotatedTag creates an annotated tag, exercising the peel path of the
// tag index.
func annotatedTag(t *testing.T, repo *git.Repository, name string, target plumbing.Hash) {
	t.Helper()
	opts := &git.CreateTagOptions{Tagger: testSignature(), Message: name}
	if _, err := repo.CreateTag(name, target, opts); err != nil {
		t.Fatalf("tag %s: %v", name, err)
	}
}

// checkoutBranch creates a branch at the current HEAD and switches to it.
func checkoutBranch(t *testing.T, wt *git.Worktree, name string) {
	t.Helper()
	err := wt.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
		Create: true,
	})
	if err != nil {
		t.Fatalf("checkout %s: %v", name, err)
	}
}
