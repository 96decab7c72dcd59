// SPDX-License-Identifier: MPL-2.0

package tags

// Options selects what to compute tags for. Every field is independently
// optional; zero values mean "use the environment".
type Options struct {
	// Version is a compact interpreter version such as "38" or "310".
	Version string
	// Platform pins the exact platform instead of detecting the local
	// one. Explicit platforms are expanded by static family rules only,
	// never by probing the running system.
	Platform string
	// Impl is the interpreter implementation short code ("cp", "pp").
	Impl string
	// ABI pins the exact ABI tag.
	ABI string
}

// Supported returns every compatibility tag the environment can consume,
// in strict best-match-first order with no duplicates. It never fails:
// malformed overrides degrade to opaque values and unknown interpreter
// families take the generic path, so an installer always receives a
// ranked list to walk.
func Supported(env *Environment, opts Options) []Tag {
	if env == nil {
		env = Host()
	}

	var version VersionInfo
	if opts.Version != "" {
		version = ParseVersion(opts.Version)
	}

	interpreter := customInterpreter(env, opts.Impl, opts.Version)

	var abis []string
	if opts.ABI != "" {
		abis = []string{opts.ABI}
	}

	var platforms []string
	if opts.Platform != "" {
		platforms = env.customPlatforms(opts.Platform, true)
	} else {
		platforms = env.customPlatforms(env.Platform(), false)
	}

	impl := opts.Impl
	if impl == "" {
		impl = env.InterpreterName()
	}

	var supported []Tag
	if impl == ImplCPython {
		supported = append(supported, CPythonTags(env, version, abis, platforms)...)
	} else {
		supported = append(supported, GenericTags(env, interpreter, abis, platforms)...)
	}
	supported = append(supported, CompatibleTags(env, version, interpreter, platforms)...)

	return uniqueTags(supported)
}

// customInterpreter joins the implementation short code and compact
// version into the interpreter tag component, e.g. "cp38".
func customInterpreter(e *Environment, impl, version string) string {
	if impl == "" {
		impl = e.InterpreterName()
	}
	if version == "" {
		version = e.InterpreterVersion()
	}
	return impl + version
}
