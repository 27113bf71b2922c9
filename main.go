package main

import (
	"github.com/DivyKalyani05/BBL-434-Assignment1/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
