// SPDX-License-Identifier: MPL-2.0

package main

import cmd "wheeltag/cmd/wheeltag"

func main() {
	cmd.Execute()
}
