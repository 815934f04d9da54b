package schedule

import (
	"sort"
	"strings"

	"reelplan/internal/screenplay"
)

// GroupKey identifies scenes that are shot as one set-up.
type GroupKey struct {
	Root      string
	Location  string
	TimeOfDay screenplay.TimeOfDay
}

// Group is an ordered run of scenes sharing a GroupKey.
type Group struct {
	Key    GroupKey
	Scenes []screenplay.Scene
}

// SceneRoot returns the leading digit run of heading with leading zeros
// removed, or "0" when the heading does not start with a digit.
func SceneRoot(heading string) string {
	end := 0
	for end < len(heading) && heading[end] >= '0' && heading[end] <= '9' {
		end++
	}
	root := strings.TrimLeft(heading[:end], "0")
	if root == "" {
		return "0"
	}
	return root
}

// KeyFor derives the grouping key of a scene.
func KeyFor(scene screenplay.Scene) GroupKey {
	return GroupKey{
		Root:      SceneRoot(scene.Heading),
		Location:  scene.Location,
		TimeOfDay: scene.TimeOfDay,
	}
}

// GroupScenes buckets scenes by GroupKey and sorts the buckets by numeric
// root, then location, then time of day. Scenes keep their parse order within
// a bucket.
func GroupScenes(scenes []screenplay.Scene) []Group {
	index := make(map[GroupKey]int)
	groups := make([]Group, 0)
	for _, scene := range scenes {
		key := KeyFor(scene)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Scenes = append(groups[i].Scenes, scene)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Key.less(groups[j].Key)
	})
	return groups
}

// Flatten concatenates group scenes in group order.
func Flatten(groups []Group) []screenplay.Scene {
	total := 0
	for _, g := range groups {
		total += len(g.Scenes)
	}
	out := make([]screenplay.Scene, 0, total)
	for _, g := range groups {
		out = append(out, g.Scenes...)
	}
	return out
}

func (k GroupKey) less(other GroupKey) bool {
	if c := compareRoots(k.Root, other.Root); c != 0 {
		return c < 0
	}
	if k.Location != other.Location {
		return k.Location < other.Location
	}
	return k.TimeOfDay < other.TimeOfDay
}

// compareRoots compares two canonical digit strings numerically without
// overflowing on very long scene numbers.
func compareRoots(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
