package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/dangerclosesec/tenancy/internal/auth"
	"github.com/dangerclosesec/tenancy/internal/config"
	"github.com/dangerclosesec/tenancy/internal/database"
	"github.com/dangerclosesec/tenancy/internal/repository"
	"github.com/dangerclosesec/tenancy/internal/service"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	cfg        *config.Config
	verbose    bool
	userID     string
	onlyActive bool
)

func init() {
	cobra.OnInitialize(func() {
		cfg = config.Load()
	})

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	tokenCmd.Flags().StringVarP(&userID, "user", "u", "", "User id the token is issued to")
	tokenCmd.MarkFlagRequired("user")

	plansCmd.Flags().BoolVar(&onlyActive, "active", false, "Only list active plans")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(plansCmd)
}

var rootCmd = &cobra.Command{
	Use:   "billingctl",
	Short: "billingctl administers the tenancy database",
	Long:  `billingctl runs administrative tasks against the tenancy database.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := database.Open(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		if err := repository.Migrate(context.Background(), db); err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}

		fmt.Println("Schema migrated successfully")
		if verbose {
			for _, m := range repository.Models {
				fmt.Printf("  - %T\n", m)
			}
		}
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for a user",
	Run: func(cmd *cobra.Command, args []string) {
		id, err := uuid.Parse(userID)
		if err != nil {
			log.Fatalf("Invalid user id: %v", err)
		}

		tm := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)
		token, err := tm.Generate(id)
		if err != nil {
			log.Fatalf("Failed to generate token: %v", err)
		}

		fmt.Println(token)
	},
}

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List subscription plans",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := database.Open(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		var filter *bool
		if cmd.Flags().Changed("active") {
			filter = &onlyActive
		}

		plans, err := service.NewPlanService(repository.NewPlanRepository(db)).List(context.Background(), filter)
		if err != nil {
			log.Fatalf("Failed to list plans: %v", err)
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tPRICE\tDAYS\tACTIVE")
		for _, p := range plans {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%t\n", p.ID, p.Name, p.Price, p.DurationDays, p.IsActive != nil && *p.IsActive)
		}
		tw.Flush()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
