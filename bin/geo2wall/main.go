package main

import (
	"log"

	"github.com/rubenv/geo2wall/cmd"
)

func main() {
	err := cmd.Run()
	if err != nil {
		log.Fatal(err.Error())
	}
}
