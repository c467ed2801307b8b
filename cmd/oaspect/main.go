package main

import (
	"fmt"
	"os"

	"github.com/oaspect/oaspect/internal/cli"
)

func main() {
	cmd := cli.InspectCmd()
	err := cmd.Execute()
	if err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
