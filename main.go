// Copyright © 2024 The tracehook authors

package main

import "github.com/tracehook/tracehook/cmd"

func main() {
	cmd.Execute()
}
