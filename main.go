package main

import "github.com/jdlms/flexheader/cmd"

func main() {
	cmd.Execute()
}
