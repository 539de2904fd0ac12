package main

import (
	"os"

	"github.com/JonMunkholm/geoanla/cmd/geoanla/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
