package main

import "relato/cmd/relato-cli/cmd"

func main() {
	cmd.Execute()
}
