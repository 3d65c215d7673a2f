package port

// PathExpander turns command-line arguments into header paths.
type PathExpander interface {
	Expand(args []string) ([]string, error)
}

type TextFiles interface {
	ReadLines(path string) ([]string, error)

	WriteIfChanged(path, content string) (bool, error)

	ReadFile(path string) (string, error)
}
