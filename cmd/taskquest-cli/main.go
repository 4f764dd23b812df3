package main

import "taskquest/cmd/taskquest-cli/cmd"

func main() {
	cmd.Execute()
}
