// Package adapter implements inventory sources.
//
// An adapter pulls hosts from an external system and returns them as a
// domain.Inventory. Adapters are oneshot: each Sync is a complete,
// independent pull and nothing is cached between runs.
//
// # GLPI
//
// GLPIAdapter reads the Computer collection of a GLPI server through its
// legacy REST API. A run opens a session with the app and user tokens,
// lists computers, registers every named computer as a host carrying its
// asset identifier in the glpi_id variable, and closes the session.
//
// The session is closed on every exit path once it has been opened, so a
// failed listing never leaves a dangling session on the server. Computers
// without a name are skipped; any other failure aborts the run and no
// partial inventory is returned.
package adapter
