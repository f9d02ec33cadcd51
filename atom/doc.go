// Package atom prepares raw query strings and splits them into atoms.
//
// A query is first normalized (width folding, NFC composition, whitespace
// collapsing) and then split on the AND operator "&". Under the KanjiDict
// style, stroke, frequency, grade and JLPT filters are pulled out as their
// own atoms before the generic split.
package atom
