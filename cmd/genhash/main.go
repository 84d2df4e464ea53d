package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	sifre := "hostpanel2026"
	if len(os.Args) > 1 {
		sifre = os.Args[1]
	}
	h, err := bcrypt.GenerateFromPassword([]byte(sifre), 12)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(h))
}
