// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for wheeltag.
//
// This package implements the Cobra command hierarchy: the root command,
// the tags command that prints the supported-tag sequence, the platform
// command that explains platform detection and expansion, and config
// helpers.
package cmd
