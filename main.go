package main

import "github.com/zbiljic/lee/cmd"

func main() {
	cmd.Execute()
}
