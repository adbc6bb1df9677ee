package main

import "github.com/margru/togglbill/cmd"

func main() {
	cmd.Execute()
}
