package screenplay

type segmentState int

const (
	stateNoActiveScene segmentState = iota
	stateInScene
)

// LineStats counts how the segmenter disposed of its input lines.
type LineStats struct {
	Lines     int `json:"lines" yaml:"lines"`
	Headings  int `json:"headings" yaml:"headings"`
	Cues      int `json:"cues" yaml:"cues"`
	Actions   int `json:"actions" yaml:"actions"`
	Discarded int `json:"discarded" yaml:"discarded"`
}

// Segmenter is the scene state machine. Feed lines in order, then call Finish.
// A Segmenter is single-use and not safe for concurrent use.
type Segmenter struct {
	classifier *Classifier
	state      segmentState
	current    Scene
	scenes     []Scene
	stats      LineStats
}

// NewSegmenter returns a segmenter in the NoActiveScene state. A nil
// classifier uses the default blacklist.
func NewSegmenter(classifier *Classifier) *Segmenter {
	if classifier == nil {
		classifier = NewClassifier()
	}
	return &Segmenter{classifier: classifier, scenes: []Scene{}}
}

// Feed consumes one normalized, non-empty line.
func (s *Segmenter) Feed(line string) {
	s.stats.Lines++
	c := s.classifier.Classify(line, s.state == stateInScene)

	switch {
	case c.Kind == KindHeading:
		s.stats.Headings++
		s.flush()
		s.current = Scene{
			Number:     len(s.scenes) + 1,
			Heading:    c.Heading.Text,
			Location:   c.Heading.Location,
			TimeOfDay:  c.Heading.TimeOfDay,
			Characters: []string{},
		}
		s.state = stateInScene
	case s.state == stateNoActiveScene:
		s.stats.Discarded++
	case c.Kind == KindCue:
		s.stats.Cues++
		s.current.AddCharacter(c.Name)
	default:
		s.stats.Actions++
		s.current.Actions = append(s.current.Actions, line)
	}
}

// Finish flushes the open scene, if any, and returns every scene in parse
// order. The result is never nil.
func (s *Segmenter) Finish() []Scene {
	s.flush()
	s.state = stateNoActiveScene
	return s.scenes
}

// Stats reports line dispositions so far.
func (s *Segmenter) Stats() LineStats {
	return s.stats
}

func (s *Segmenter) flush() {
	if s.state != stateInScene {
		return
	}
	s.scenes = append(s.scenes, s.current)
	s.current = Scene{}
}
