package main

import "github.com/chiselstrike/termtris/internal/cmd"

func main() {
	cmd.Execute()
}
