package processor

import (
	"context"
	"testing"
)

func TestParseDirective(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		want     int
		wantText string
		wantErr  bool
	}{
		{"no directive", "Hello\nWorld", 2, "Hello\nWorld", false},
		{"directive consumed", "# group: 3\nHello", 3, "Hello", false},
		{"case and spacing", "#GROUP :  4  \nHello", 4, "Hello", false},
		{"directive only", "# group: 1", 1, "", false},
		{"directive not on first line", "Hello\n# group: 3", 2, "Hello\n# group: 3", false},
		{"ordinary comment kept", "# chorus twice\nHello", 2, "# chorus twice\nHello", false},
		{"out of range", "# group: 0\nHello", 0, "", true},
		{"not a number", "# group: many\nHello", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, text, err := parseDirective(tt.text, 2)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDirective() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want || text != tt.wantText {
				t.Errorf("parseDirective() = %d, %q; want %d, %q", got, text, tt.want, tt.wantText)
			}
		})
	}
}

func TestSemaphore(t *testing.T) {
	sem := newSemaphore(1)
	ctx := context.Background()

	if err := sem.acquire(ctx); err != nil {
		t.Fatalf("acquire() error = %v", err)
	}
	if sem.inUse() != 1 {
		t.Errorf("inUse() = %d, want 1", sem.inUse())
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if err := sem.acquire(cancelled); err != context.Canceled {
		t.Errorf("acquire() on full semaphore with cancelled ctx = %v", err)
	}

	sem.release()
	if sem.inUse() != 0 {
		t.Errorf("inUse() = %d after release, want 0", sem.inUse())
	}
}
