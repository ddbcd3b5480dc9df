package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// healthCmd represents the health command
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check connectivity to the Giphy API",
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, args []string) error {
	health := service.HealthCheck(context.Background())

	if health.AdapterHealthy {
		fmt.Printf("✓ %s is healthy (checked %s)\n", health.Service, health.Timestamp.Format("15:04:05"))
		return nil
	}

	fmt.Printf("✗ %s is unhealthy: %s\n", health.Service, health.Detail)
	return fmt.Errorf("health check failed")
}
