package main

import (
	"github.com/jjtimmons/moclo/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
