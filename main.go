package main

import (
	"os"

	"github.com/nemesisdb/siteconf/commands"
)

func main() {
	os.Exit(commands.Execute(os.Args[1:]))
}
