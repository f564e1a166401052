package main

import "github.com/neurmill/toolrec/cmd/toolrecd/cmd"

func main() {
	cmd.Execute()
}
