package main

import "bookadmin/cmd/admin/command"

func main() {
	command.Execute()
}
