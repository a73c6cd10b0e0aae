// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - StarSource: Fetches every starred repository of an account
//   - ListSource: Discovers an account's star lists
//   - MembershipSource: Resolves a list to the repositories in it
//   - SnapshotStore: Persists the raw fetched metadata
//   - DocumentStore: Reads the template and writes the rendered document
//   - TokenProvider: Supplies the API token for authenticated requests
//   - ConfigSource: One layer of configuration (file, environment)
//
// # Optional Interfaces
//
//   - CredentialValidator: Checks a source's credentials before a run
//
// The GitHub connector implements the three sources against the live site.
// The memory storage adapter implements them from local data.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
