package main

import (
	"github.com/millworks/millwright/pkg/cli"
)

func main() {
	cli.Execute()
}
