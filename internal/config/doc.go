// SPDX-License-Identifier: MPL-2.0

// Package config loads wheeltag CLI configuration.
//
// Configuration supplies the interpreter facts a Go process cannot
// introspect from a foreign Python installation: implementation code,
// version, ABI, and build-configuration variables such as SOABI. Every
// value is optional and every value can be overridden by a flag.
package config
