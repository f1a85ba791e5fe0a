package config

import "github.com/hashicorp/hcl/v2"

// projectBlock mirrors the `project` block of a project.hcl file.
type projectBlock struct {
	Mode       string `hcl:"mode,optional"`
	Ability    string `hcl:"ability,optional"`
	LogLevel   string `hcl:"log_level,optional"`
	SourceRoot string `hcl:"source_root,optional"`
	OutputDir  string `hcl:"output_dir,optional"`
	Manifest   string `hcl:"manifest,optional"`
}

// entryBlock mirrors an `entry` block: a logical entry name and its root
// source file.
type entryBlock struct {
	Name   string `hcl:"name,label"`
	Source string `hcl:"source"`
}

// transformBlock mirrors a `transform` block: a script dialect and the
// custom stage list that compiles it.
type transformBlock struct {
	Dialect string   `hcl:"dialect,label"`
	Stages  []string `hcl:"stages"`
}

// projectFile is the top-level structure of a project.hcl file.
type projectFile struct {
	Project    *projectBlock     `hcl:"project,block"`
	Entries    []*entryBlock     `hcl:"entry,block"`
	Transforms []*transformBlock `hcl:"transform,block"`
	Body       hcl.Body          `hcl:",remain"`
}
