// Package export writes pipeline artifacts into the output directory.
//
// A Writer serializes scenes, the shooting schedule, call sheets, and scene
// props as JSON or YAML. Each file is replaced atomically, and the whole set
// is written while holding an exclusive lock on <output_dir>/.reelplan.lock so
// two concurrent runs cannot interleave their files.
package export
