package script

// Unit is one executable script plus its run policy. Units are built once
// from configuration and are immutable for the duration of a run.
type Unit struct {
	// Path is the filesystem path of the script.
	Path string

	// Repetitions is the explicitly configured repeat count. Zero means
	// "not configured": the count is derived from the filename suffix.
	Repetitions int

	// Interpreter is the program used to execute the script, e.g.
	// "python3". Empty means the script is executed directly.
	Interpreter string
}

// Argv returns the argument vector used to spawn one attempt of the unit.
func (u Unit) Argv() []string {
	if u.Interpreter == "" {
		return []string{u.Path}
	}
	return []string{u.Interpreter, u.Path}
}
