package main

import "movie-grid/cmd"

func main() {
	cmd.Execute()
}
