package main

import "dungeonescape/cmd/descape/root"

func main() {
	root.Execute()
}
