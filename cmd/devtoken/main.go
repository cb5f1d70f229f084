package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"sankhya-crm/internal/config"
	"sankhya-crm/pkg/utils"
)

// devtoken mints a signed JWT for calling the API locally.
func main() {
	userID := flag.String("user", "dev", "user id to embed in the token")
	roles := flag.String("roles", "admin", "comma separated roles")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	utils.SetSecret(cfg.JWTSecret)

	var roleList []string
	for _, r := range strings.Split(*roles, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roleList = append(roleList, r)
		}
	}

	token, err := utils.GenerateToken(*userID, roleList, *ttl)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}
	fmt.Println(token)
}
