package main

import (
	"flag"
	"log"

	"github.com/Coder-Madaan/scholar-fee-nexus/app/config"
	"github.com/Coder-Madaan/scholar-fee-nexus/app/database"
	"github.com/Coder-Madaan/scholar-fee-nexus/app/models"
	"github.com/Coder-Madaan/scholar-fee-nexus/app/routes/auth"
)

func main() {
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "login password")
	name := flag.String("name", "", "display name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("usage: adduser -email <email> -password <password> [-name <name>]")
	}

	config.Init()
	db := config.GetDB()
	defer db.Close()

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password: ", err)
	}

	user := &models.User{Email: *email, Password: hash, Name: *name}
	if err := database.CreateUser(db, user); err != nil {
		log.Fatal("Error creating user: ", err)
	}

	log.Printf("User created successfully: %s (%s)", user.Name, user.Email)
}
