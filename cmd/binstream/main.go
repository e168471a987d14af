package main

import "github.com/pagewise/binstream/cmd/binstream/cmd"

func main() {
	cmd.Execute()
}
