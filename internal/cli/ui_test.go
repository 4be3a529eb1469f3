package cli

import (
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"
	"github.com/golang/mock/gomock"

	"github.com/agbru/blcheck/internal/cli/mocks"
	"github.com/agbru/blcheck/internal/orchestration"
)

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(io.Discard))
	rs := &realSpinner{s}

	rs.Start()
	rs.UpdateSuffix(" test")
	rs.Stop()
	if s.Suffix != " test" {
		t.Errorf("suffix = %q, want %q", s.Suffix, " test")
	}
}

func TestRealSpinner_ConcurrentSuffixUpdates(t *testing.T) {
	t.Parallel()
	s := spinner.New(spinner.CharSets[11], time.Millisecond, spinner.WithWriter(io.Discard))
	rs := &realSpinner{s}
	rs.Start()
	defer rs.Stop()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 50 {
				rs.UpdateSuffix(strings.Repeat(".", (i+j)%5))
			}
		}()
	}
	wg.Wait()

	s.Lock()
	defer s.Unlock()
	if len(s.Suffix) > 4 {
		t.Errorf("suffix = %q, want one of the written values", s.Suffix)
	}
}

func TestDisplayProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockS := mocks.NewMockSpinner(ctrl)

	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()
	newSpinner = func(io.Writer) Spinner { return mockS }

	var (
		mu       sync.Mutex
		suffixes []string
	)
	mockS.EXPECT().UpdateSuffix(gomock.Any()).Do(func(s string) {
		mu.Lock()
		suffixes = append(suffixes, s)
		mu.Unlock()
	}).MinTimes(1)
	gomock.InOrder(
		mockS.EXPECT().Start(),
		mockS.EXPECT().Stop(),
	)

	progressChan := make(chan orchestration.ProgressUpdate, 2)
	progressChan <- orchestration.ProgressUpdate{Index: 0, Threads: 4, Run: 1, Value: 0.5}
	progressChan <- orchestration.ProgressUpdate{Index: 1, Threads: 8, Run: 2, Value: 1}
	close(progressChan)

	var wg sync.WaitGroup
	wg.Add(1)
	done := make(chan struct{})
	go func() {
		DisplayProgress(&wg, progressChan, 2, io.Discard)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("DisplayProgress did not return after the channel was closed")
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if len(suffixes) != 3 {
		t.Fatalf("got %d suffix updates, want 3", len(suffixes))
	}
	last := suffixes[len(suffixes)-1]
	if !strings.Contains(last, "threads=8") || !strings.Contains(last, "run=2") {
		t.Errorf("last suffix %q should name the latest track", last)
	}
}

func TestDisplayProgress_ZeroTracks(t *testing.T) {
	t.Parallel()
	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan orchestration.ProgressUpdate, 1)
	progressChan <- orchestration.ProgressUpdate{}
	close(progressChan)

	DisplayProgress(&wg, progressChan, 0, io.Discard)
	wg.Wait()

	if _, ok := <-progressChan; ok {
		t.Error("channel should have been drained")
	}
}
