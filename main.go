package main

import "github.com/douhashi/logira/cmd"

func main() {
	cmd.Execute()
}
