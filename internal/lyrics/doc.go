// Package lyrics splits lyric text into slide-sized chunks.
//
// The pipeline has three stages, each a pure function over an ordered
// slice of lines: RemoveAnnotations drops section markers, WrapLongLines
// breaks over-long lines in two, and Batch groups lines into fixed-size
// slides. Chunk composes them.
package lyrics
