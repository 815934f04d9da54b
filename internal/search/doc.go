// Package search answers questions about a parsed screenplay and its shooting
// schedule.
//
// NewIndex renders one line of text per scene and per schedule entry and
// fingerprints each line with TF-IDF weights. Index.Search ranks lines by
// cosine similarity to the question. Engine.Ask retrieves the top lines and,
// when an Answerer is configured, asks it to compose a grounded answer;
// otherwise the retrieved lines are the answer.
package search
