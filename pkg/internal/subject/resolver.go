// Package subject resolves recording file paths to subject/session keys.
//
// A recording's session label is the name of the file's grandparent
// directory; its subject identifier is found by scanning an ordered table of
// folder-substring to subject-id mappings against the parent directory name.
// The first matching entry wins, so table order is part of the configuration
// contract. Paths that match no entry are rejected with ErrSubjectNotFound,
// which callers treat as a recoverable per-file failure.
package subject

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
	"github.com/joeydtaylor/hrvkit/pkg/internal/utils"
)

// ErrSubjectNotFound marks a path whose parent directory matches no
// configured folder substring.
var ErrSubjectNotFound = errors.New("subject not found")

// Resolver implements types.SubjectResolver over an ordered mapping table.
type Resolver struct {
	componentMetadata types.ComponentMetadata
	mappings          []types.SubjectMapping
	loggers           []types.Logger
	loggersLock       sync.Mutex
}

// NewResolver creates a Resolver configured with the provided options.
func NewResolver(options ...types.Option[types.SubjectResolver]) types.SubjectResolver {
	r := &Resolver{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "SUBJECT_RESOLVER",
		},
	}

	for _, opt := range options {
		opt(r)
	}

	return r
}

// Resolve maps a recording path to its SubjectKey. The session label is the
// grandparent directory name; the subject id is the first table entry whose
// folder substring occurs in the parent directory name.
func (r *Resolver) Resolve(path string) (types.SubjectKey, error) {
	parentDir := filepath.Base(filepath.Dir(path))
	sessionDir := filepath.Base(filepath.Dir(filepath.Dir(path)))

	for _, m := range r.mappings {
		if strings.Contains(parentDir, m.FolderSubstring) {
			key := types.SubjectKey{Session: sessionDir, Subject: m.SubjectID}
			r.NotifyLoggers(
				types.DebugLevel,
				"Resolved recording subject",
				"component", r.componentMetadata,
				"event", "Resolve",
				"result", "SUCCESS",
				"recording", path,
				"column", key.Label(),
			)
			return key, nil
		}
	}

	return types.SubjectKey{}, fmt.Errorf("%w: no folder substring matches %q", ErrSubjectNotFound, parentDir)
}

// ConnectLogger attaches one or more loggers to the resolver.
func (r *Resolver) ConnectLogger(loggers ...types.Logger) {
	r.loggersLock.Lock()
	defer r.loggersLock.Unlock()
	r.loggers = append(r.loggers, loggers...)
}

// NotifyLoggers sends a log message to all attached loggers at the given level.
func (r *Resolver) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	r.loggersLock.Lock()
	loggers := make([]types.Logger, len(r.loggers))
	copy(loggers, r.loggers)
	r.loggersLock.Unlock()

	for _, logger := range loggers {
		if logger == nil {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}

// GetComponentMetadata returns the resolver's metadata.
func (r *Resolver) GetComponentMetadata() types.ComponentMetadata {
	return r.componentMetadata
}

// SetComponentMetadata overrides the resolver's name and id.
func (r *Resolver) SetComponentMetadata(name string, id string) {
	r.componentMetadata.Name = name
	r.componentMetadata.ID = id
}
