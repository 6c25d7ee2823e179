package types

// SubjectKey identifies one recording: the session label taken from the
// grandparent directory of the file and the subject identifier resolved from
// the parent directory name.
type SubjectKey struct {
	Session string // Session label, e.g. "baseline-day1".
	Subject string // Subject identifier, e.g. "02".
}

// Label renders the key as the column heading used in the results table.
func (k SubjectKey) Label() string {
	return k.Session + "_" + k.Subject
}

// SubjectMapping is one ordered entry of the folder-substring to subject-id
// table. Resolution scans entries in order and the first substring contained
// in the parent directory name wins.
type SubjectMapping struct {
	FolderSubstring string
	SubjectID       string
}

// SubjectResolver maps a recording file path to its SubjectKey. A path whose
// parent directory matches no configured substring must be rejected with an
// error wrapping the resolver's not-found sentinel.
type SubjectResolver interface {
	Resolve(path string) (SubjectKey, error)

	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
