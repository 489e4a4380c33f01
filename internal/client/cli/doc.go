// Package cli provides the interactive E-Waste Portal command-line client.
//
// It wires configuration, the local credential database, the API gateway,
// the session manager, and the per-role dashboards into an interactive REPL.
// Typical flow: restore the previous session from the stored credential,
// show the prompt, and execute user commands.
//
// Commands are gated by role: anonymous users can log in, register, and
// browse centers; submitters upload items and review their history;
// recyclers work their assigned queue; admins approve centers and view
// analytics.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
