// Package script models the executable units the orchestrator runs: opaque,
// independently runnable script files. It resolves each unit's repeat count
// (explicit configuration first, filename suffix as the legacy fallback)
// and checks that a unit exists, is a regular file and is readable before
// anything tries to execute it.
package script
