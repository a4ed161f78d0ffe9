// SPDX-License-Identifier: MIT

// Command linsolve solves small linear systems from the command line.
package main

func main() {
	Execute()
}
