package main

import "github.com/oshkit/osh/cmd"

func main() {
	cmd.Execute()
}
