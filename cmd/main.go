package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"fbnoi.com/uritemplate"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalln("usage: uritpl TEMPLATE [name=value ...]")
	}

	ps := uritemplate.Params{}
	for _, arg := range os.Args[2:] {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			log.Fatalf("bad argument %q, want name=value", arg)
		}
		ps.Add(name, value)
	}

	body, err := uritemplate.Expand(os.Args[1], ps)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println(body)
}
