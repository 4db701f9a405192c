package main

import "ivr-server/cmd/sessionctl/cmd"

func main() {
	cmd.Execute()
}
