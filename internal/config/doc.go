// Package config defines the format-agnostic model of a component project's
// build configuration and the HCL loader that produces it. The model names
// the build-target mode, the ability type, the entry set, and any custom
// per-dialect script transforms.
package config
