package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/owaisdotcom/madarsa-apiv2/app/config"
	"github.com/owaisdotcom/madarsa-apiv2/app/database"
	"github.com/owaisdotcom/madarsa-apiv2/app/models"
	"github.com/owaisdotcom/madarsa-apiv2/app/routes/auth"
)

func main() {
	username := flag.String("username", "", "admin username")
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *username == "" || *email == "" || *password == "" {
		log.Fatal("Usage: addadmin -username <name> -email <email> -password <password>")
	}

	config.Load()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{Username: *username, Email: *email, Password: hashed}
	if err := database.CreateUser(db, user); err != nil {
		log.Fatal("Error creating user: ", err)
	}

	fmt.Printf("User created successfully: %s (%s)\n", user.Username, user.Email)
}
