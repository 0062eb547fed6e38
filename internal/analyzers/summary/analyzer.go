// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package summary

import (
	"container/heap"
	"sort"
	"strings"

	"lexiscan/internal/observability"
	"lexiscan/internal/textproc"
)

// DefaultSentenceCount is the number of sentences a summary keeps
// when the caller does not ask for a specific count.
const DefaultSentenceCount = 5

// Analyzer produces a frequency-weighted extractive summary of a
// document. Sentences are scored by the document-wide frequency of
// their alphabetic, non-stopword tokens and the top scorers are kept.
type Analyzer struct {
	engine   textproc.Engine
	observer *observability.StandardObserver
}

// NewAnalyzer creates a summarizer backed by the given text engine
func NewAnalyzer(engine textproc.Engine) *Analyzer {
	return &Analyzer{engine: engine}
}

// SetObserver sets the observability component
func (a *Analyzer) SetObserver(observer *observability.StandardObserver) {
	a.observer = observer
}

// Summarize returns up to count sentences' worth of summary text.
// Fewer qualifying sentences than count is not an error; whatever
// exists is returned. A count below 1 falls back to the default.
func (a *Analyzer) Summarize(text string, count int) string {
	if count < 1 {
		count = DefaultSentenceCount
	}

	var finishTiming func(bool, map[string]interface{})
	if a.observer != nil {
		finishTiming = a.observer.StartTiming("summary_analyzer", "summarize", "")
	}

	var result string
	if a.engine.Mode() == textproc.ModeFallback {
		result = a.summarizeFallback(text, count)
	} else {
		result = a.summarizeWeighted(text, count)
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"text_length":    len(text),
			"sentence_count": count,
			"engine_mode":    a.engine.Mode().String(),
		})
	}
	return result
}

// summarizeWeighted scores every sentence by the summed document
// frequency of its tokens and keeps the count highest scorers. Ties
// keep document order; the output order is selection order (highest
// score first), not document order.
func (a *Analyzer) summarizeWeighted(text string, count int) string {
	sentences := a.engine.Segment(text)
	if len(sentences) == 0 {
		return ""
	}

	frequencies := make(map[string]int)
	for _, tok := range a.engine.WordTokens(text) {
		if tok.Alphabetic && !tok.Stopword {
			frequencies[tok.Lower]++
		}
	}

	scored := make([]scoredSentence, len(sentences))
	for i, s := range sentences {
		score := 0
		for _, tok := range s.Tokens {
			score += frequencies[tok.Lower]
		}
		scored[i] = scoredSentence{index: i, score: score, text: s.Text}
	}

	selected := selectTop(scored, count)
	parts := make([]string, len(selected))
	for i, s := range selected {
		parts[i] = s.text
	}
	return strings.Join(parts, " ")
}

// summarizeFallback keeps the first count sentences in document order.
func (a *Analyzer) summarizeFallback(text string, count int) string {
	sentences := a.engine.Segment(text)
	if len(sentences) > count {
		sentences = sentences[:count]
	}
	parts := make([]string, len(sentences))
	for i, s := range sentences {
		parts[i] = s.Text
	}
	return strings.Join(parts, ". ")
}

type scoredSentence struct {
	index int
	score int
	text  string
}

// sentenceHeap is a min-heap over sentence scores so the lowest of
// the kept candidates is always on top and cheap to evict.
type sentenceHeap []scoredSentence

func (h sentenceHeap) Len() int { return len(h) }

func (h sentenceHeap) Less(i, j int) bool { return h[i].less(h[j]) }

func (h sentenceHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *sentenceHeap) Push(x interface{}) {
	*h = append(*h, x.(scoredSentence))
}

func (h *sentenceHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// selectTop performs a partial top-K selection without sorting the
// whole candidate set, then orders the winners by descending score
// with document order breaking ties.
func selectTop(candidates []scoredSentence, k int) []scoredSentence {
	h := &sentenceHeap{}
	heap.Init(h)
	for _, c := range candidates {
		if h.Len() < k {
			heap.Push(h, c)
			continue
		}
		if (*h)[0].less(c) {
			heap.Pop(h)
			heap.Push(h, c)
		}
	}

	selected := make([]scoredSentence, h.Len())
	copy(selected, *h)
	sort.Slice(selected, func(i, j int) bool {
		if selected[i].score != selected[j].score {
			return selected[i].score > selected[j].score
		}
		return selected[i].index < selected[j].index
	})
	return selected
}

// less reports whether s ranks below other in the top-K ordering.
// Later sentences lose ties so earlier ones survive eviction.
func (s scoredSentence) less(other scoredSentence) bool {
	if s.score != other.score {
		return s.score < other.score
	}
	return s.index > other.index
}
