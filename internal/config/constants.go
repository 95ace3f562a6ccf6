// Package config holds process-wide constants: recognized source file
// extensions, built-in class names, and test/CLI mode flags, mirroring the
// teacher repo's own internal/config/constants.go.
package config

// Version is the current Saha interpreter version.
var Version = "0.1.0"

// SourceFileExt is the canonical Saha source extension.
const SourceFileExt = ".saha"

// IsTestMode marks a test run. Nothing in this repository sets it or reads
// it; it stays false unless a caller assigns it.
var IsTestMode = false

// Built-in core class names (spec §4.4, core_classes).
const (
	ListClassName = "List"
	DictClassName = "Dict"
)

// Built-in value-bound method names (spec §4.6).
const (
	ToStringMethodName = "toString"
	ToFloatMethodName  = "toFloat"
)

// SelfParamName is the reserved parameter name bound to the receiver of an
// instance method call.
const SelfParamName = "self"

// UnnamedArgKey is the map key a positional call argument is stored under
// before argument validation rewrites it to the declared parameter name.
const UnnamedArgKey = ""

// ManifestFileName is the optional per-project configuration file, parsed
// with gopkg.in/yaml.v3 (see internal/config/manifest.go), mirroring the
// teacher's own funxy.yaml / ext.Config convention.
const ManifestFileName = "saha.yaml"
