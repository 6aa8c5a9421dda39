// Package wikidot implements a parser for a Wikidot-flavored lightweight
// markup language (the syntax used by SCP-style wikis), transforming a
// line-normalized textual source into a structured document tree
// suitable for a downstream renderer.
//
// The work happens in three independent passes: package tokenizer turns
// source text into a flat token stream, package block groups that stream
// into a shallow tree of block-level attributes (paragraphs, blockquotes,
// tables, tabviews), and package inline resolves each paragraph's and
// cell's tokens into the final, richly nested tree.Element tree. Parse
// wires the three together.
//
// Callers are responsible for normalizing line endings to a single "\n"
// before calling Parse. This package does not read input, perform I/O,
// or render the resulting tree (those are callers' concerns).
package wikidot

import (
	"github.com/nowf41/wikidot-parser/block"
	"github.com/nowf41/wikidot-parser/inline"
	"github.com/nowf41/wikidot-parser/token"
	"github.com/nowf41/wikidot-parser/tokenizer"
	"github.com/nowf41/wikidot-parser/tree"
)

// Parse converts line-normalized Wikidot source text into the final
// document tree. It never fails: malformed or overlapping markup
// degrades to literal text or is dropped rather than producing an error,
// by design (see tokenizer, block, and inline for the per-stage recovery
// rules). Only a genuine internal invariant violation (a token type
// that should never survive block parsing reaching the inline resolver)
// can panic.
func Parse(source string) []tree.Element {
	tokens := tokenizer.Tokenize(source)
	blocks := block.Parse(tokens)
	return inline.Parse(blocks)
}

// Tokenize exposes stage 1 directly, for callers or tests that want the
// raw token stream without running the rest of the pipeline.
func Tokenize(source string) []token.Token {
	return tokenizer.Tokenize(source)
}
