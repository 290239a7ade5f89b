package main

import "github.com/goalplan/goalplan/cmd"

func main() {
	cmd.Execute()
}
