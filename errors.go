package deckbuild

import "errors"

// Sentinel errors for library operations.
var (
	ErrSlideNotFound = errors.New("missing slide file")
	ErrSlideRead     = errors.New("cannot read slide")
	ErrSlideWrite    = errors.New("cannot write slide")
	ErrArtifactWrite = errors.New("cannot write generated page")
)
