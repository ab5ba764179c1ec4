package main

import "github.com/dzjyyds666/microtoml/cmd"

func main() {
	cmd.Execute()
}
