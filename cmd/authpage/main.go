package main

import "github.com/nfrund/authpage/cmd/authpage/cmd"

func main() {
	cmd.Execute()
}
