// Package fsops implements the filesystem engine behind the dendra shell.
//
// It turns raw command arguments into canonical paths relative to a
// caller-owned cursor and performs the listing, tree-walking and single-file
// operations the shell exposes. Every operation goes through an afero.Fs so
// the engine can run against the real disk or an in-memory filesystem.
//
// Key Components:
//
// Path Resolution:
//   - Resolver classifies arguments as absolute, parent-relative or plain-relative
//   - Canonicalization cleans "." and ".." segments and follows symbolic links
//     along the existing prefix of a path
//   - Missing targets are never a resolution error
//
// Listing:
//   - List and ListReverse return immediate children in ordinal name order
//   - ListRecursive lazily yields a pre-order walk, children in descending order
//
// Tree Mutation:
//   - PruneEmpty removes empty child directories one level deep
//   - CopyTree mirrors a directory tree, failing fast on the first I/O error
//
// File Operations:
//   - CreateIfAbsent, Delete, CopyFile, Concatenate, Count and Mkdir
//
// Errors are *PathError values wrapping the sentinels in errors.go.
package fsops
