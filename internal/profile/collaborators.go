package profile

import "context"

// Collaborator contracts. The engine hands profiles out through these
// interfaces and never depends on how they are implemented: rendering,
// enrichment fetches, and their failure handling live entirely on the
// other side.

// Renderer consumes one assembled profile per user selection.
type Renderer interface {
	Render(p *PersonProfile) error
}

// VerseTextProvider fetches the text of a verse reference from an
// external API. Best effort: a failure or timeout decorates nothing
// and must never block the base profile.
type VerseTextProvider interface {
	VerseText(ctx context.Context, referenceID string) (string, error)
}

// ArticleProvider fetches an encyclopedia summary for a person name.
// Same best-effort contract as VerseTextProvider.
type ArticleProvider interface {
	ArticleSummary(ctx context.Context, name string) (string, error)
}
