// Command qsim is the dispatcher front-end over the simulation kernel:
// one subcommand per core operation (run, optimize, map, unitary,
// grad, mitigate, snapshot, shots, view).
package main

import "os"

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		return exitCodeFor(err)
	}
	return 0
}
