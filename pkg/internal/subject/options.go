package subject

import "github.com/joeydtaylor/hrvkit/pkg/internal/types"

// WithMapping appends entries to the resolver's ordered substring table.
// Entry order is significant: the first match wins.
func WithMapping(mappings ...types.SubjectMapping) types.Option[types.SubjectResolver] {
	return func(r types.SubjectResolver) {
		if res, ok := r.(*Resolver); ok {
			res.mappings = append(res.mappings, mappings...)
		}
	}
}

// WithLogger attaches one or more loggers to the resolver.
func WithLogger(loggers ...types.Logger) types.Option[types.SubjectResolver] {
	return func(r types.SubjectResolver) {
		r.ConnectLogger(loggers...)
	}
}

// WithComponentMetadata overrides the resolver's name and id.
func WithComponentMetadata(name string, id string) types.Option[types.SubjectResolver] {
	return func(r types.SubjectResolver) {
		r.SetComponentMetadata(name, id)
	}
}
