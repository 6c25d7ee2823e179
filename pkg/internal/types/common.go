package types

// ComponentMetadata defines the essential identifying information for components within the system.
// It includes identifiers and descriptive information to help manage and differentiate components dynamically.
type ComponentMetadata struct {
	ID   string // Unique identifier for the component.
	Type string // Type of the component, used to distinguish between different classes of components.
	Name string // Human-readable name for the component.
}

// Option defines a configuration option function applicable to any component T. This generic approach
// allows for flexible configuration mechanisms across different types of components.
type Option[T any] func(T)

// WindowConfig holds the sliding-window parameters applied to every recording in a run.
// Stride between consecutive window starts is Size - Overlap and must be positive.
type WindowConfig struct {
	Size    int // Number of samples per window.
	Overlap int // Number of samples shared between consecutive windows; 0 <= Overlap < Size.
}

// Stride returns the step between consecutive window start indices.
func (w WindowConfig) Stride() int {
	return w.Size - w.Overlap
}
