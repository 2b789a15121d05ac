// File: resolver.go
// Title: Include Resolvers
// Description: Defines the IncludeResolver collaborator contract and the
//              two bundled implementations: DirResolver searches ordered
//              directory roots on disk, MapResolver serves in-memory text
//              for tests and embedding.
// Version: v0.1.0
// Created: 2025-11-19
// Modified: 2025-11-19
//
// Change History:
// - 2025-11-19 v0.1.0: Initial resolver implementations

package scene

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	slerror "github.com/candela-render/scenelang/core/error"
	slfilex "github.com/candela-render/scenelang/utils/filex"
)

// IncludeResolver loads the text of an included file by the name written
// in the Include directive. Implementations must be safe for concurrent
// use; expansion may resolve includes from several goroutines.
type IncludeResolver interface {
	// Resolve returns the scene text for the given include name
	Resolve(ctx context.Context, name string) (string, error)
}

// DirResolver resolves include names against an ordered list of directory
// roots on disk. The first root containing the file wins. Relative names
// never escape their root.
type DirResolver struct {
	roots []string
}

// NewDirResolver creates a resolver searching the given roots in order.
// With no roots the current directory is searched.
func NewDirResolver(roots ...string) *DirResolver {
	if len(roots) == 0 {
		roots = []string{"."}
	}
	return &DirResolver{roots: roots}
}

// Roots returns the search roots in order
func (r *DirResolver) Roots() []string {
	out := make([]string, len(r.roots))
	copy(out, r.roots)
	return out
}

// Resolve searches the roots in order and returns the first match
func (r *DirResolver) Resolve(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	cleaned := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") {
		return "", slerror.New(fmt.Sprintf("include name %q escapes the search roots", name)).
			WithCode(slerror.CodeInvalidInput).
			WithOperation("DirResolver.Resolve")
	}

	for _, root := range r.roots {
		path := slfilex.Join(root, cleaned)
		if !slfilex.IsFile(path) {
			continue
		}
		text, err := slfilex.ReadString(path)
		if err != nil {
			return "", slerror.Wrap(err, fmt.Sprintf("failed to read include %q", name)).
				WithCode(slerror.CodeIOError).
				WithOperation("DirResolver.Resolve").
				WithDetail("path", path)
		}
		return text, nil
	}

	return "", slerror.New(fmt.Sprintf("include %q not found", name)).
		WithCode(slerror.CodeIncludeNotFound).
		WithOperation("DirResolver.Resolve").
		WithDetail("roots", strings.Join(r.roots, string(filepath.ListSeparator)))
}

// MapResolver resolves include names from an in-memory map. Useful for
// tests and for embedding scene libraries in a binary.
type MapResolver struct {
	files map[string]string
}

// NewMapResolver creates a resolver over the given name-to-text map
func NewMapResolver(files map[string]string) *MapResolver {
	copied := make(map[string]string, len(files))
	for name, text := range files {
		copied[name] = text
	}
	return &MapResolver{files: copied}
}

// Resolve looks the name up in the map
func (r *MapResolver) Resolve(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text, ok := r.files[name]
	if !ok {
		return "", slerror.New(fmt.Sprintf("include %q not found", name)).
			WithCode(slerror.CodeIncludeNotFound).
			WithOperation("MapResolver.Resolve")
	}
	return text, nil
}

// Len returns the number of entries the resolver serves
func (r *MapResolver) Len() int {
	return len(r.files)
}
