package main

import "github.com/mvp-joe/project-prism/internal/cli"

func main() {
	cli.Execute()
}
