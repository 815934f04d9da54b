// Package screenplay turns free-form screenplay text into an ordered list of
// scenes.
//
// Parsing is a strictly forward pipeline: every raw line is normalized
// (NormalizeLine), classified as a scene heading, a character cue, or action
// text (Classifier), and fed to a two-state Segmenter that opens a new Scene on
// each heading and flushes the last open scene at end of input. A final pass
// (InferSilentCharacters) adds characters that are mentioned in a scene's
// action text without ever receiving a cue there.
//
// Nothing in this package fails: unparseable lines degrade to action text or
// are dropped when no scene is open, and empty input yields no scenes. Action
// lines are working state kept only until enrichment is done; they never
// appear in serialized output.
package screenplay
