package main

import "github.com/wismer/packedit/cmd"

func main() {
	cmd.Execute()
}
