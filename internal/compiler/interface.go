package compiler

import "github.com/zclconf/go-cty/cty"

// FS is the filesystem collaborator. Existence checks and reads are
// synchronous; they may block the calling unit's compilation but never
// another unit's.
type FS interface {
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
}

// ElementContext identifies the included element a configuration section
// belongs to, when it does not belong to the unit itself.
type ElementContext struct {
	Name string
	Path string
}

// ConfigSink is the external aggregation collaborator that receives
// normalized configuration sections and writes the composite descriptor
// file. target identifies the output artifact the section belongs to.
type ConfigSink interface {
	CompileJSON(target, section string, value cty.Value, element *ElementContext) error
}
