package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/margru/togglbill/internal/config"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List configured clients",
	Args:  cobra.NoArgs,
	RunE:  runClients,
}

func runClients(cmd *cobra.Command, args []string) error {
	path, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	names := cfg.ClientNames()
	if len(names) == 0 {
		fmt.Println("No clients configured.")
		fmt.Printf("Edit %s to add one.\n", path)
		return nil
	}

	for _, name := range names {
		c := cfg.Clients[name]
		lastBilled := c.LastBilledDate
		if lastBilled == "" {
			lastBilled = "never"
		}
		fmt.Printf("%-20s rate %.2f/h, last billed %s\n", name, c.HourlyRate, lastBilled)
	}
	return nil
}
