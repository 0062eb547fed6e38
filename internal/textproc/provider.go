// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package textproc

import (
	"fmt"
	"sync"
)

// Provider owns the process-wide engine selection. The load is attempted
// exactly once: a failure permanently downgrades the process to the
// fallback engine and is surfaced as a notice, never as an error.
// Construct one Provider at startup and pass it (or its Engine) into
// every component that needs segmentation.
type Provider struct {
	lexiconDir    string
	forceFallback bool

	once   sync.Once
	engine Engine
	notice string
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithLexiconDir overrides the embedded lexicons with files from dir.
func WithLexiconDir(dir string) ProviderOption {
	return func(p *Provider) { p.lexiconDir = dir }
}

// WithForcedFallback skips the lexicon engine entirely. Used for
// regression comparisons and by tests.
func WithForcedFallback() ProviderOption {
	return func(p *Provider) { p.forceFallback = true }
}

// NewProvider creates an engine provider. No loading happens until the
// first Engine call.
func NewProvider(opts ...ProviderOption) *Provider {
	p := &Provider{}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Engine returns the process engine, loading it on first use.
func (p *Provider) Engine() Engine {
	p.once.Do(p.load)
	return p.engine
}

// Notice returns the degraded-mode notice, or "" when the lexicon
// engine loaded cleanly. Valid after the first Engine call.
func (p *Provider) Notice() string {
	p.once.Do(p.load)
	return p.notice
}

func (p *Provider) load() {
	if p.forceFallback {
		p.engine = NewFallbackEngine()
		p.notice = "fallback mode forced; using basic text processing"
		return
	}

	var lex *Lexicon
	var err error
	if p.lexiconDir != "" {
		lex, err = LoadLexiconDir(p.lexiconDir)
	} else {
		lex, err = LoadEmbeddedLexicon()
	}
	if err != nil {
		p.engine = NewFallbackEngine()
		p.notice = fmt.Sprintf("lexicon engine unavailable (%v); using basic text processing", err)
		return
	}
	p.engine = NewLexiconEngine(lex)
}
