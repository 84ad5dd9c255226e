package main

import "tagvault/cmd/tagvault-cli/cmd"

func main() {
	cmd.Execute()
}
