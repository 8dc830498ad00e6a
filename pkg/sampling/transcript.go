//
// Copyright Coinbase, Inc. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

package sampling

import (
	"github.com/gtank/merlin"
)

// TranscriptReader is a deterministic randomness source built on a
// merlin transcript. Two readers created with the same label and seed
// produce the same byte stream, which makes sampling runs reproducible;
// distinct labels yield independent streams from the same seed.
type TranscriptReader struct {
	transcript *merlin.Transcript
}

// NewTranscriptReader builds a reader whose stream is a pure function of
// label and seed.
func NewTranscriptReader(label string, seed []byte) *TranscriptReader {
	transcript := merlin.NewTranscript(label)
	transcript.AppendMessage([]byte("seed"), seed)
	return &TranscriptReader{transcript: transcript}
}

// Read fills p with the next bytes of the stream. It never fails.
func (r *TranscriptReader) Read(p []byte) (int, error) {
	out := r.transcript.ExtractBytes([]byte("prng"), len(p))
	copy(p, out)
	return len(p), nil
}
