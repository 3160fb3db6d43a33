// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/invowk/porter/cmd/porter"

func main() {
	cmd.Execute()
}
