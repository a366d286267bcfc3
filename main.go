package main

import "wordtree/cmd"

func main() {
	cmd.Execute()
}
