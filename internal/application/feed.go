package application

import (
	"sync"

	"github.com/civichub/community-go/internal/domain/form"
)

// SubmissionFeed fans incoming submissions out to admin live viewers, one
// channel set per notice. Slow subscribers are skipped rather than blocking
// the submit path.
type SubmissionFeed struct {
	mu   sync.RWMutex
	subs map[uint]map[chan form.Submission]struct{}
}

func NewSubmissionFeed() *SubmissionFeed {
	return &SubmissionFeed{
		subs: make(map[uint]map[chan form.Submission]struct{}),
	}
}

// Subscribe registers a buffered channel for a notice's submissions. The
// caller must Unsubscribe when done.
func (f *SubmissionFeed) Subscribe(noticeID uint) chan form.Submission {
	ch := make(chan form.Submission, 16)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subs[noticeID] == nil {
		f.subs[noticeID] = make(map[chan form.Submission]struct{})
	}
	f.subs[noticeID][ch] = struct{}{}
	return ch
}

func (f *SubmissionFeed) Unsubscribe(noticeID uint, ch chan form.Submission) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if set, ok := f.subs[noticeID]; ok {
		delete(set, ch)
		if len(set) == 0 {
			delete(f.subs, noticeID)
		}
	}
	close(ch)
}

func (f *SubmissionFeed) Publish(sub form.Submission) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for ch := range f.subs[sub.NoticeID] {
		select {
		case ch <- sub:
		default:
		}
	}
}
