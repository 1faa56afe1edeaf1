package main

import (
	"github.com/commonsapp/commons/internal/cli"
)

func main() {
	cli.Execute()
}
