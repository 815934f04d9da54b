// Package textutil provides text processing utilities for fingerprinting, similarity,
// and whole-word matching.
//
// The primary use cases are:
//   - Creating token-based fingerprints of scene and schedule lines for search
//   - Computing cosine similarity between fingerprints
//   - Finding names and prop terms as whole words inside upper-cased action text
//
// Fingerprints use term frequency vectors normalized for efficient comparison.
// The tokenization process lowercases text, splits on non-alphanumeric characters,
// and filters alphabetic tokens shorter than 3 characters. Numeric tokens are kept
// regardless of length so day and scene numbers stay searchable.
package textutil
