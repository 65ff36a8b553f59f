package main

import "github.com/chukul/credctl/cmd"

func main() {
	cmd.Execute()
}
