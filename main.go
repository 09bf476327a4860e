package main

import "github.com/matkov/wtt/cmd"

func main() {
	cmd.Execute()
}
