package main

import "afish/cmd/afish/root"

func main() {
	root.Execute()
}
