package main

import (
	"github.com/condensate/gotdgl/cmd"
)

func main() {
	cmd.Execute()
}
