package main

import "github.com/agentkb/memoria/cmd"

func main() {
	cmd.Execute()
}
