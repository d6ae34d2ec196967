package main

import "github.com/itsmostafa/ralphw/cmd"

func main() {
	cmd.Execute()
}
