package screenplay

import "reelplan/internal/textutil"

// KnownCharacters returns every distinct character name across scenes in
// first-discovery order.
func KnownCharacters(scenes []Scene) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, scene := range scenes {
		for _, name := range scene.Characters {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// InferSilentCharacters appends to each scene the known characters that are
// mentioned as whole words in its action text but never cued there. Names are
// appended in global discovery order after the scene's cued characters. It
// returns the number of names added across all scenes.
func InferSilentCharacters(scenes []Scene) int {
	known := KnownCharacters(scenes)
	if len(known) == 0 {
		return 0
	}
	added := 0
	for i := range scenes {
		scene := &scenes[i]
		if len(scene.Actions) == 0 {
			continue
		}
		text := scene.ActionText()
		for _, name := range known {
			if scene.HasCharacter(name) {
				continue
			}
			if textutil.ContainsWord(text, name) && scene.AddCharacter(name) {
				added++
			}
		}
	}
	return added
}
