package main

import "japmic/cmd"

func main() {
	cmd.Execute()
}
