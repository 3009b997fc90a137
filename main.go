package main

import "gorel/cmd"

func main() {
	cmd.Execute()
}
