package search

import (
	"fmt"
	"sort"
	"strings"

	"reelplan/internal/schedule"
	"reelplan/internal/screenplay"
	"reelplan/internal/textutil"
)

// Kind identifies what an indexed line describes.
type Kind string

const (
	KindScene    Kind = "scene"
	KindSchedule Kind = "schedule"
)

// Document is one indexed line.
type Document struct {
	Kind Kind   `json:"kind" yaml:"kind"`
	Text string `json:"text" yaml:"text"`
	// SceneNumber is set for scene lines.
	SceneNumber int `json:"scene_number,omitempty" yaml:"scene_number,omitempty"`
	// Day is set for schedule lines.
	Day int `json:"day,omitempty" yaml:"day,omitempty"`
}

// Hit is a ranked search result.
type Hit struct {
	Document `yaml:",inline"`
	Score    float64 `json:"score" yaml:"score"`
}

// Index is an immutable TF-IDF index over scene and schedule lines.
type Index struct {
	docs []Document
	fps  []*textutil.Fingerprint
	idf  map[string]float64
}

// SceneText renders the indexed line for a scene.
func SceneText(scene screenplay.Scene) string {
	return fmt.Sprintf("Scene: %s | Characters: %s | Location: %s",
		scene.Heading, strings.Join(scene.Characters, ", "), scene.Location)
}

// EntryText renders the indexed line for a schedule entry.
func EntryText(entry schedule.Entry) string {
	return fmt.Sprintf("Day %d | %s | Location: %s | Characters: %s | Time: %s",
		entry.Day, entry.SceneHeading, entry.Location, strings.Join(entry.Characters, ", "), entry.StartTime)
}

// NewIndex indexes every scene followed by every schedule entry.
func NewIndex(scenes []screenplay.Scene, entries []schedule.Entry) *Index {
	idx := &Index{docs: make([]Document, 0, len(scenes)+len(entries))}
	for _, scene := range scenes {
		idx.docs = append(idx.docs, Document{Kind: KindScene, Text: SceneText(scene), SceneNumber: scene.Number})
	}
	for _, entry := range entries {
		idx.docs = append(idx.docs, Document{Kind: KindSchedule, Text: EntryText(entry), Day: entry.Day})
	}

	raw := make([]*textutil.Fingerprint, len(idx.docs))
	corpus := textutil.NewCorpus()
	for i, doc := range idx.docs {
		raw[i] = textutil.NewFingerprint(doc.Text)
		corpus.Add(raw[i])
	}
	idx.idf = corpus.IDF()
	idx.fps = make([]*textutil.Fingerprint, len(raw))
	for i, fp := range raw {
		idx.fps[i] = fp.WithIDF(idx.idf)
	}
	return idx
}

// Len returns the number of indexed lines.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.docs)
}

// Documents returns the indexed lines in index order.
func (idx *Index) Documents() []Document {
	if idx == nil {
		return nil
	}
	return append([]Document(nil), idx.docs...)
}

// Search returns up to k lines with a positive similarity to query, best
// first. Equal scores keep index order.
func (idx *Index) Search(query string, k int) []Hit {
	if idx == nil || k <= 0 {
		return nil
	}
	q := textutil.NewFingerprint(query).WithIDF(idx.idf)
	if q == nil {
		return nil
	}
	hits := make([]Hit, 0, len(idx.docs))
	for i, fp := range idx.fps {
		score := textutil.CosineSimilarity(q, fp)
		if score <= 0 {
			continue
		}
		hits = append(hits, Hit{Document: idx.docs[i], Score: score})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if len(hits) > k {
		hits = hits[:k]
	}
	return hits
}
