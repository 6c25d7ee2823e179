package builder

import (
	"github.com/joeydtaylor/hrvkit/pkg/internal/subject"
	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
)

type SubjectKey = types.SubjectKey

type SubjectMapping = types.SubjectMapping

// ErrSubjectNotFound is returned when a recording's parent folder matches no
// configured mapping.
var ErrSubjectNotFound = subject.ErrSubjectNotFound

// NewSubjectResolver creates a resolver over an ordered substring mapping table.
func NewSubjectResolver(options ...types.Option[types.SubjectResolver]) types.SubjectResolver {
	return subject.NewResolver(options...)
}

// SubjectResolverWithMapping appends entries to the resolver's mapping table.
func SubjectResolverWithMapping(mappings ...types.SubjectMapping) types.Option[types.SubjectResolver] {
	return subject.WithMapping(mappings...)
}

// SubjectResolverWithLogger attaches loggers to the resolver.
func SubjectResolverWithLogger(loggers ...types.Logger) types.Option[types.SubjectResolver] {
	return subject.WithLogger(loggers...)
}
