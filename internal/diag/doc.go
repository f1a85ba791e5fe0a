// Package diag implements the compiler's diagnostic sink. Diagnostics carry a
// severity, the source file they concern, and an optional position. The sink
// is shared by every unit compiled in a session; each unit records through a
// unit-scoped view that tracks its own failed flag.
package diag
