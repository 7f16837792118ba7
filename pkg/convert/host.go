package convert

import "context"

// Host is the environment a conversion runs in: it chooses the source file
// and shows the generated document. An editor plugin, a CLI or a service can
// each provide one.
type Host interface {
	// PickSource returns the file to convert, or "" if the user cancelled.
	PickSource(ctx context.Context) (string, error)

	// Reveal displays the document at path positioned at the zero-based line.
	Reveal(ctx context.Context, path string, line int) error
}
