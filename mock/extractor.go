// Package mock provides function-field mock implementations of the
// farmdocs domain interfaces for use in tests.
package mock

import "github.com/fwojciec/farmdocs"

var _ farmdocs.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of farmdocs.Extractor.
type Extractor struct {
	ExtractFn func(html, baseName string) (*farmdocs.ExtractResult, error)
}

func (e *Extractor) Extract(html, baseName string) (*farmdocs.ExtractResult, error) {
	return e.ExtractFn(html, baseName)
}
