// Package session assigns output indices to successive visualizations.
//
// Every call that produces a document asks a [Store] for the next index and
// reports it back once the document exists. Artifacts are named
// Prefix<index>Ext (BINTREE1.html, BINTREE2.html, ...), so repeated runs
// append new files instead of overwriting earlier ones.
//
// Backends:
//   - [MemoryStore]: an injectable counter for tests and embedding
//   - [DirStore]: derives the starting index from files already on disk
//   - [RedisStore]: shares one counter between processes and machines
//
// # Usage
//
//	store := session.NewDirStore(".", session.DefaultNaming)
//	n, err := store.NextIndex(ctx)      // 8 if BINTREE7.html is the newest file
//	path := session.DefaultNaming.FileName(n)
//	// ... write path ...
//	err = store.RecordUsed(ctx, n)      // the next call returns 9
package session

import (
	"context"
	"regexp"
	"strconv"

	"github.com/matzehuels/treeview/pkg/errors"
)

// FirstIndex is the index handed out when nothing has been recorded yet.
const FirstIndex = 1

// Store tracks the next free output index.
type Store interface {
	// NextIndex returns the index the next artifact should use. Calling it
	// repeatedly without RecordUsed returns the same value.
	NextIndex(ctx context.Context) (int, error)

	// RecordUsed marks n as taken. Later NextIndex calls return a value
	// greater than n. Recording an index below the current one is a no-op.
	RecordUsed(ctx context.Context, n int) error
}

// Naming describes how artifact file names are built.
type Naming struct {
	Prefix string
	Ext    string
}

// DefaultNaming matches the files produced by earlier versions of the tool.
var DefaultNaming = Naming{Prefix: "BINTREE", Ext: ".html"}

// Validate checks that the naming yields plain, parseable file names.
func (n Naming) Validate() error {
	if err := errors.ValidateFilePrefix(n.Prefix); err != nil {
		return err
	}
	return errors.ValidateExtension(n.Ext)
}

// WithExt returns a copy of n using a different extension.
func (n Naming) WithExt(ext string) Naming {
	n.Ext = ext
	return n
}

// FileName returns the artifact name for index i.
func (n Naming) FileName(i int) string {
	return n.Prefix + strconv.Itoa(i) + n.Ext
}

// ParseIndex extracts the index from an artifact name produced by FileName.
// It reports false for names that do not match exactly.
func (n Naming) ParseIndex(name string) (int, bool) {
	m := n.pattern().FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	i, err := strconv.Atoi(m[1])
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

func (n Naming) pattern() *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(n.Prefix) + `(\d+)` + regexp.QuoteMeta(n.Ext) + `$`)
}
