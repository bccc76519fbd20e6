package main

import (
	"github.com/Sena-ops/payguard/cmd"
)

func main() {
	cmd.Execute()
}
