package main

import (
	"evilboard/ui"
	"fmt"
)

func main() {
	if err := ui.RunEvilBoard(); err != nil {
		fmt.Println(err)
	}
}
