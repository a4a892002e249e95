// Command adminpass prints a bcrypt hash for ADMIN_PASSWORD_HASH.
//
//	go run ./cmd/adminpass 'correct horse battery staple'
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"techtalks/internal/adapters/auth"
)

func main() {
	if len(os.Args) != 2 || os.Args[1] == "" {
		fmt.Fprintln(os.Stderr, "usage: adminpass <password>")
		os.Exit(2)
	}
	hash, err := auth.NewBcryptHasher(bcrypt.DefaultCost).Hash(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash password:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
