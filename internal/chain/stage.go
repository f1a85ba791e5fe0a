package chain

import (
	"fmt"
	"strings"
)

// Kind classifies the asset a chain is resolved for.
type Kind int

const (
	KindMain Kind = iota
	KindElement
	KindTemplate
	KindStyle
	KindScript
	KindConfig
	KindData
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindMain:
		return "main"
	case KindElement:
		return "element"
	case KindTemplate:
		return "template"
	case KindStyle:
		return "style"
	case KindScript:
		return "script"
	case KindConfig:
		return "config"
	case KindData:
		return "data"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Param is a single query parameter on a stage. Value must be a string, a
// bool, or a []string; a nil value renders nothing.
type Param struct {
	Key   string
	Value any
}

// Stage is one transform applied to an asset. Query order is significant and
// preserved through serialization.
type Stage struct {
	Name  string
	Query []Param
}

// Descriptor is an ordered transform stage list.
type Descriptor struct {
	Stages []Stage
}

// StageSeparator joins serialized stages in a descriptor.
const StageSeparator = "!"

// String serializes the descriptor: stage names joined by the stage
// separator, each with an optional ?-introduced, &-joined query suffix.
// Boolean-true parameters render as bare keys, lists as key[]=v1,v2 and nil
// or boolean-false values are omitted.
func (d Descriptor) String() string {
	parts := make([]string, 0, len(d.Stages))
	for _, s := range d.Stages {
		parts = append(parts, s.serialize())
	}
	return strings.Join(parts, StageSeparator)
}

func (s Stage) serialize() string {
	var pairs []string
	for _, p := range s.Query {
		switch v := p.Value.(type) {
		case nil:
			continue
		case bool:
			if v {
				pairs = append(pairs, p.Key)
			}
		case string:
			pairs = append(pairs, p.Key+"="+v)
		case []string:
			pairs = append(pairs, p.Key+"[]="+strings.Join(v, ","))
		default:
			pairs = append(pairs, fmt.Sprintf("%s=%v", p.Key, v))
		}
	}
	if len(pairs) == 0 {
		return s.Name
	}
	return s.Name + "?" + strings.Join(pairs, "&")
}
