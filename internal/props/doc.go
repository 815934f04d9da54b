// Package props tags scenes with the props and equipment their action lines
// mention.
//
// Tagging is lexicon based: a built-in list of common physical props plus any
// terms supplied by configuration, matched as whole words (singular or simple
// plural) against the upper-cased action text of each scene. It must run
// before the parser's action buffers are discarded.
package props
