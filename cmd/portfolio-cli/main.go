package main

import "github.com/divyank00/portfolio/cmd/portfolio-cli/cmd"

func main() {
	cmd.Execute()
}
