// Package deck renders slide chunks into documents: a PowerPoint deck with
// one styled slide per chunk, and a Word lyric sheet for printing.
package deck
