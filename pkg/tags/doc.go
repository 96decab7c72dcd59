// SPDX-License-Identifier: MPL-2.0

// Package tags computes the ordered set of binary compatibility tags a
// package installer uses to match prebuilt wheel artifacts against an
// interpreter environment.
//
// A tag is an (interpreter, abi, platform) triple such as
// "cp38-cp38-manylinux2014_x86_64". Supported returns every tag an
// environment can consume, best match first, with no duplicates. The
// environment is an explicit value so callers (and tests) can describe
// any interpreter/OS combination without touching the host; Host builds
// one from live introspection.
package tags
