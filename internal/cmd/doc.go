// Package cmd provides the command-line interface implementation for dsh.
//
// It uses the Cobra library for command structure and Fang for styling.
// The bare root command starts the interactive shell; the other commands
// are:
//   - shell: Interactive prompt over standard input
//   - run: Non-interactive execution of a script file
//   - exec: Non-interactive execution of lines given as arguments
//   - count: Entry counting over a directory tree
//   - seed: Practice tree generation
//
// Each command lives in its own file with a constructor returning a
// *cobra.Command. Persistent flags are shared through globalFlags and
// merged over the TOML config by loadConfig.
package cmd
