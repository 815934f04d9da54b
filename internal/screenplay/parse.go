package screenplay

// Result is the outcome of parsing a screenplay.
type Result struct {
	Scenes []Scene
	Stats  LineStats
	// Silent counts characters added by silent-character inference.
	Silent int
}

// Parser runs normalization, segmentation, and silent-character inference.
type Parser struct {
	classifier *Classifier
}

// NewParser returns a parser whose cue test also rejects extraBlacklist terms.
func NewParser(extraBlacklist ...string) *Parser {
	return &Parser{classifier: NewClassifier(extraBlacklist...)}
}

// Parse segments text into scenes. Action buffers are left populated for
// enrichment; call DiscardActions once they are no longer needed. Empty text
// yields an empty, non-nil scene list.
func (p *Parser) Parse(text string) Result {
	seg := NewSegmenter(p.classifier)
	for _, line := range NormalizeLines(text) {
		seg.Feed(line)
	}
	scenes := seg.Finish()
	silent := InferSilentCharacters(scenes)
	return Result{Scenes: scenes, Stats: seg.Stats(), Silent: silent}
}

// Parse is a convenience wrapper using the default blacklist.
func Parse(text string) []Scene {
	return NewParser().Parse(text).Scenes
}
