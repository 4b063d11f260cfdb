package main

import (
	"github.com/mj1618/jiggle-cli/cmd"
	_ "github.com/mj1618/jiggle-cli/internal/platform/robot"
)

func main() {
	cmd.Execute()
}
