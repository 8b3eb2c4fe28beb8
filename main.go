package main

import "github.com/adisakb/e-sarabun/cmd"

func main() {
	cmd.Execute()
}
