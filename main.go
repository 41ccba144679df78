package main

import "grip-attendance/cmd"

func main() {
	cmd.Execute()
}
