// Package main provides the dsh command-line interface.
//
// dsh is an interactive shell over the local filesystem. It tracks its own
// current directory, resolves every path argument against it and offers a
// small fixed command set: cd, pwd, ls, mkdir, touch, rm, rmdir, cp, cat,
// wc, echo, history and exit.
//
// The binary supports several subcommands:
//   - shell: Start the interactive prompt (also the default action)
//   - run: Execute a script of shell lines
//   - exec: Execute shell lines given as arguments
//   - count: Count the entries of a directory tree
//   - seed: Generate a practice directory tree
package main
