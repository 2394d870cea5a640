// Package cli provides the interactive neatdog terminal client.
//
// NewApp wires configuration, the credential store, the session manager,
// the API transport and the domain services. App.Run restores any stored
// session and then runs a read–eval–print loop until the user exits.
//
// Commands:
//   - signup / login / logout / status
//   - packs, pack <id>, newpack, invite, accept
//   - dog, setdog
//   - types, newtype, log, quicklog <type>, history [type=..] [from=..] [to=..]
//
// Commands that need a pack act on the one selected with "pack <id>".
package cli
