// Command reset destructively drops and recreates the database schema.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/foodbridge/food-donation-api/internal/config"
	"github.com/foodbridge/food-donation-api/internal/database"
)

func main() {
	cfg := config.Load()

	fmt.Printf("This will DROP ALL TABLES in database %q. Type 'yes' to continue: ", cfg.DBName)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	if strings.TrimSpace(answer) != "yes" {
		log.Println("Aborted")
		return
	}

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Reset(database.GetDB()); err != nil {
		log.Fatalf("Failed to drop tables: %v", err)
	}
	log.Println("All tables dropped")

	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to recreate schema: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}

	log.Println("Schema recreated")
}
