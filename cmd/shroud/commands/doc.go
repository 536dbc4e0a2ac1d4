// Package commands defines the shroud CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - ciphers   List the available cipher suites
//   - keygen    Derive and print the datagram key for a passphrase
//   - seal      Encrypt files, each as a single datagram
//   - open      Decrypt files sealed by this tool
//   - bench     Measure encryption throughput
//   - resolve   Parse a host:port string into an IPv4 endpoint
//
// # Implementation
//
// Commands that use a cipher resolve the suite from the registry and
// stretch the passphrase into a key exactly once, then share that state
// across workers through an app context.
package commands
