package cmd

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"

	"github.com/gorilla/securecookie"
	"github.com/karnaval-obuv/shop/app/configs"
	"github.com/karnaval-obuv/shop/app/db/seeders"
	"github.com/karnaval-obuv/shop/app/models/migrations"
	"github.com/urfave/cli/v3"
)

func RunCli(env configs.ENV) {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env)
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Seed categories, subcategories, and demo catalog data",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env)
					if err != nil {
						return err
					}
					if err := seeders.Seed(db); err != nil {
						return err
					}
					log.Println("✅ Seed complete")
					return nil
				},
			},
			{
				Name:  "generate-key",
				Usage: "Generate a new session signing secret for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					key := securecookie.GenerateRandomKey(32)
					if key == nil {
						return fmt.Errorf("could not generate signing key")
					}
					fmt.Printf("SECRET_KEY=%s\n", base64.URLEncoding.EncodeToString(key))
					fmt.Println("Copy this line into your .env file. Regenerating invalidates existing admin sessions.")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
