package processor

import "context"

// Processor converts lyric text into slide decks
type Processor interface {
	// Process converts one lyric file from the input folder and archives it
	Process(ctx context.Context, lyricPath string) error
	// Convert renders already-collected lyric text
	Convert(ctx context.Context, req Request) (Result, error)
	// ProcessAll converts every pending lyric file in dir
	ProcessAll(ctx context.Context, dir string) error
}

// Request carries the parameters of one conversion. GroupSize and FontSize
// are used as given; callers fill them from config when the user is silent.
type Request struct {
	Text       string
	Name       string
	GroupSize  int
	FontSize   int
	OutputDir  string
	LyricSheet bool
	PDF        bool
}

// Result lists the slide chunks and the files written for a Request
type Result struct {
	Chunks []string
	Deck   string
	Sheet  string
	PDF    string
}
