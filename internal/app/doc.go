// Package app contains the application lifecycle: loading the project
// configuration, wiring the build session and compiler, compiling the entry
// set, and writing generated output. It is decoupled from any specific
// entrypoint like the CLI.
package app
