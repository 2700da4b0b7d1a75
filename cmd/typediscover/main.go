package main

import "github.com/gnolang/typediscover/cmd"

func main() {
	cmd.Execute()
}
