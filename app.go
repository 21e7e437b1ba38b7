package main

import "github.com/masmgr/gitpoll/cmd"

func main() {
	cmd.Run()
}
