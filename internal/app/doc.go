// Package app wires application dependencies for the CLI.
//
// It loads Config through viper (defaults, optional config.yaml in the home
// directory, ECIES_* environment variables and bound flags), builds the
// zerolog logger, the file stores and the high-level services, and exposes
// them via the Wire struct for commands to use.
package app
