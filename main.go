package main

import "github.com/voxphantom/voxphantom/cli"

func main() {
	cli.Launch()
}
