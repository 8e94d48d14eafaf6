// Package commands defines the ecies CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init          Create the local secp256k1 identity
//   - pubkey        Print the identity public key (hex, 64-byte x || y)
//   - fingerprint   Print the identity fingerprint
//   - contact       Manage recipient keys (add, rm, ls)
//   - seal          Encrypt stdin or --in to a contact or hex public key
//   - open          Decrypt a message addressed to the local identity
//
// # Implementation
//
// The root command loads configuration through viper before any subcommand
// runs and builds the dependency graph (stores, services, logger), so
// handlers share one app context. Logs go to stderr; payloads go to stdout or
// --out.
package commands
